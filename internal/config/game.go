package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-engine/mines"
)

type Game struct {
	Params mines.GameParams
	Seed   *uint64
}

func loadSize() (params mines.GameParams, ok bool, err error) {
	vars := []struct {
		name string
		dst  *int
	}{
		{"MINES_WIDTH", &params.Width},
		{"MINES_HEIGHT", &params.Height},
		{"MINES_COUNT", &params.MineCount},
	}

	set := 0
	for _, v := range vars {
		if _, found := os.LookupEnv(v.name); found {
			set++
		}
	}
	if set == 0 {
		return params, false, nil
	}
	if set != len(vars) {
		return params, false, fmt.Errorf(
			"MINES_WIDTH, MINES_HEIGHT and MINES_COUNT env variables must be set together",
		)
	}

	for _, v := range vars {
		n, err := strconv.Atoi(os.Getenv(v.name))
		if err != nil {
			return params, false, fmt.Errorf("unable to parse %s: %w", v.name, err)
		}
		*v.dst = n
	}
	return params, true, nil
}

// NewGame reads the field configuration from the environment. A custom size
// takes precedence over MINES_PRESET; without either the beginner preset is
// used.
func NewGame() (*Game, error) {
	preset := mines.Beginner
	if presetStr, ok := os.LookupEnv("MINES_PRESET"); ok {
		p, err := mines.ParsePreset(presetStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MINES_PRESET: %w", err)
		}
		preset = p
	}

	params, ok, err := loadSize()
	if err != nil {
		return nil, err
	}
	if !ok {
		params = preset.Params()
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field size: %w", err)
	}

	game := &Game{Params: params}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		game.Seed = &seed
	}

	return game, nil
}

func (g Game) Rand() *rand.Rand {
	if g.Seed != nil {
		return rand.New(rand.NewPCG(*g.Seed, *g.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
