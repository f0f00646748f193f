package config

import (
	"log/slog"
	"os"
)

// LogLevel reads LOG_LEVEL ("debug", "info", "warn", "error"). Development
// builds default to debug, everything else to info.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if Development() {
		level = slog.LevelDebug
	}
	levelStr, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return level
	}
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		slog.Warn("ignoring invalid LOG_LEVEL", slog.String("value", levelStr))
	}
	return level
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
