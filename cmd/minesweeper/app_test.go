package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/console"
	"github.com/vancomm/minesweeper-engine/mines"
)

func feed(lines ...string) <-chan string {
	ch := make(chan string, len(lines))
	for _, line := range lines {
		ch <- line
	}
	close(ch)
	return ch
}

func newTestApp(t *testing.T, jsonOutput bool) (*application, *mines.Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := &application{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    &out,
		json:   jsonOutput,
	}
	// with a single safe cell the first click always wins
	engine, err := mines.New(2, 1, 1,
		mines.WithRand(rand.New(rand.NewPCG(1, 2))),
		mines.OnWin(app.won),
		mines.OnLose(app.lost),
	)
	require.NoError(t, err)
	return app, engine, &out
}

func TestPlay(t *testing.T) {
	app, engine, out := newTestApp(t, false)

	err := app.play(engine, feed("", "nonsense", "0 0 l", "q", "n"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), console.ErrBadCommand.Error())
	assert.Contains(t, out.String(), "hooray, the field is clear")
	assert.Contains(t, out.String(), "status: won, mines: 1")
	assert.Equal(t, mines.Won, engine.State().Status, "commands after q must be ignored")
}

func TestPlayRestart(t *testing.T) {
	app, engine, out := newTestApp(t, false)

	err := app.play(engine, feed("1 0 l", "n"))
	require.NoError(t, err)

	assert.Equal(t, mines.Playing, engine.State().Status)
	assert.Equal(t, 2, strings.Count(out.String(), "status: playing"))
}

func TestPlayJSON(t *testing.T) {
	app, engine, out := newTestApp(t, true)

	err := app.play(engine, feed("0 0 r", "0 0 l"))
	require.NoError(t, err)

	assert.Equal(t, mines.Playing, engine.State().Status)
	assert.Contains(t, out.String(), `"status":"playing"`)
	assert.Contains(t, out.String(), `"kind":"marked_mine"`)
}
