package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/mines"
)

func newLogger() *slog.Logger {
	if config.Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: config.LogLevel()}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel(),
	}))
}

// scanLines feeds lines from r into lines and closes it at EOF.
func scanLines(r io.Reader, lines chan<- string, logger *slog.Logger) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		logger.Error("failed to read input", "error", err)
	}
}

func main() {
	flag.Parse()

	logger := newLogger()
	mines.Log = logger

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	game, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read game config", "error", err)
		os.Exit(1)
	}
	if err := applyFlags(game); err != nil {
		logger.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	app := &application{
		logger: logger,
		out:    os.Stdout,
		json:   jsonOutput,
	}

	width, height, mineCount := game.Params.Unpack()
	engine, err := mines.New(
		width, height, mineCount,
		mines.WithRand(game.Rand()),
		mines.WithLogger(logger),
		mines.OnWin(app.won),
		mines.OnLose(app.lost),
	)
	if err != nil {
		logger.Error("unable to create game", "error", err)
		os.Exit(1)
	}

	lines := make(chan string)
	go scanLines(os.Stdin, lines, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.play(engine, lines)
		close(errCh)
	}()

	logger.Debug(
		"minesweeper ready",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mines", mineCount),
	)

	select {
	case <-ctx.Done():
		logger.Info("interrupted")
	case err := <-errCh:
		if err != nil {
			logger.Error("game loop failed", "error", err)
			os.Exit(1)
		}
	}
}
