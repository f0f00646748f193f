package mines

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize   = errors.New("the size of the board is invalid")
	ErrTooManyMines  = errors.New("there are too many mines for the size of the board")
	ErrTooFewMines   = errors.New("there must be at least 1 mine")
	ErrUnknownPreset = errors.New("unknown preset")
)

type GameParams struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p GameParams) Unpack() (width, height, mineCount int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	width, height, mineCount := p.Unpack()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if mineCount >= width*height {
		return fmt.Errorf("%w: %d mines on %d cells", ErrTooManyMines, mineCount, width*height)
	}
	if mineCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrTooFewMines, mineCount)
	}
	return nil
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

type Preset uint8

const (
	Beginner Preset = iota
	Intermediate
	Expert
)

var presets = [...]struct {
	name   string
	params GameParams
}{
	Beginner:     {"beginner", GameParams{Width: 9, Height: 9, MineCount: 10}},
	Intermediate: {"intermediate", GameParams{Width: 16, Height: 16, MineCount: 40}},
	Expert:       {"expert", GameParams{Width: 30, Height: 16, MineCount: 99}},
}

// Params panics if p is not one of the declared presets.
func (p Preset) Params() GameParams {
	if int(p) >= len(presets) {
		panic(fmt.Sprintf("mines: %v: %d", ErrUnknownPreset, p))
	}
	return presets[p].params
}

func (p Preset) String() string {
	if int(p) >= len(presets) {
		return fmt.Sprintf("Preset(%d)", p)
	}
	return presets[p].name
}

func ParsePreset(s string) (Preset, error) {
	for i, preset := range presets {
		if strings.EqualFold(preset.name, s) {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPreset, s)
}
