package main

import (
	"flag"
	"fmt"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/mines"
)

var (
	presetName string
	width      int
	height     int
	mineCount  int
	seed       uint64
	jsonOutput bool
)

func init() {
	const presetUsage = "field preset: beginner, intermediate or expert"
	flag.StringVar(&presetName, "preset", "", presetUsage)
	flag.StringVar(&presetName, "p", "", presetUsage+" (shorthand)")
	flag.IntVar(&width, "width", 0, "custom field width")
	flag.IntVar(&height, "height", 0, "custom field height")
	flag.IntVar(&mineCount, "mines", 0, "custom mine count")
	flag.Uint64Var(&seed, "seed", 0, "seed for a reproducible field")
	flag.BoolVar(&jsonOutput, "json", false, "print game states as JSON")
}

// applyFlags lets command-line flags override the environment config.
func applyFlags(game *config.Game) error {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if set["preset"] || set["p"] {
		preset, err := mines.ParsePreset(presetName)
		if err != nil {
			return err
		}
		game.Params = preset.Params()
	}

	custom := 0
	for _, name := range []string{"width", "height", "mines"} {
		if set[name] {
			custom++
		}
	}
	switch custom {
	case 0:
	case 3:
		game.Params = mines.GameParams{Width: width, Height: height, MineCount: mineCount}
	default:
		return fmt.Errorf("-width, -height and -mines must be given together")
	}

	if set["seed"] {
		game.Seed = &seed
	}

	return game.Params.Validate()
}
