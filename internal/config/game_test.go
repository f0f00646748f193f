package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/mines"
)

func TestNewGameDefaults(t *testing.T) {
	game, err := NewGame()
	require.NoError(t, err)

	assert.Equal(t, mines.Beginner.Params(), game.Params)
	assert.Nil(t, game.Seed)
}

func TestNewGamePreset(t *testing.T) {
	t.Setenv("MINES_PRESET", "expert")

	game, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Expert.Params(), game.Params)

	t.Setenv("MINES_PRESET", "impossible")
	_, err = NewGame()
	assert.ErrorIs(t, err, mines.ErrUnknownPreset)
}

func TestNewGameCustomSize(t *testing.T) {
	t.Setenv("MINES_PRESET", "expert")
	t.Setenv("MINES_WIDTH", "30")
	t.Setenv("MINES_HEIGHT", "30")
	t.Setenv("MINES_COUNT", "1")

	game, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 30, MineCount: 1}, game.Params)
}

func TestNewGameInvalidSize(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, count string
		err                  error
	}{
		{"too many mines", "3", "3", "9", mines.ErrTooManyMines},
		{"no mines", "3", "3", "0", mines.ErrTooFewMines},
		{"zero width", "0", "3", "1", mines.ErrInvalidSize},
		{"not a number", "three", "3", "1", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("MINES_WIDTH", test.width)
			t.Setenv("MINES_HEIGHT", test.height)
			t.Setenv("MINES_COUNT", test.count)

			_, err := NewGame()
			require.Error(t, err)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestNewGamePartialSize(t *testing.T) {
	t.Setenv("MINES_WIDTH", "10")

	_, err := NewGame()
	assert.Error(t, err)
}

func TestNewGameSeed(t *testing.T) {
	t.Setenv("MINES_SEED", "42")

	game, err := NewGame()
	require.NoError(t, err)
	require.NotNil(t, game.Seed)
	assert.Equal(t, uint64(42), *game.Seed)
	assert.Equal(t, game.Rand().Uint64(), game.Rand().Uint64())

	t.Setenv("MINES_SEED", "-1")
	_, err = NewGame()
	assert.Error(t, err)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())

	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}
