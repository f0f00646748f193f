package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/console"
	"github.com/vancomm/minesweeper-engine/mines"
)

const help = `commands:
  x y l   left click the cell at column x, row y
  x y r   right click (flag) the cell
  n       new game
  q       quit
`

type application struct {
	logger *slog.Logger
	out    io.Writer
	json   bool
}

func (app *application) won() {
	fmt.Fprintln(app.out, "hooray, the field is clear")
}

func (app *application) lost() {
	fmt.Fprintln(app.out, "boom, that was a mine")
}

func (app *application) show(state mines.GameState) error {
	if app.json {
		return json.NewEncoder(app.out).Encode(state)
	}
	return console.Render(app.out, state)
}

// play starts a game and applies commands from lines until they run out or
// the player quits.
func (app *application) play(engine *mines.Engine, lines <-chan string) error {
	if err := app.show(engine.Start()); err != nil {
		return err
	}
	fmt.Fprint(app.out, help)

	for line := range lines {
		var state mines.GameState

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "q":
			return nil
		case "n":
			state = engine.Start()
		case "h", "?":
			fmt.Fprint(app.out, help)
			continue
		default:
			cmd, err := console.ParseCommand(line)
			if err != nil {
				app.logger.Debug("bad command", slog.String("line", line), slog.Any("error", err))
				fmt.Fprintln(app.out, err)
				continue
			}
			state = cmd.Apply(engine)
		}

		if err := app.show(state); err != nil {
			return err
		}
	}
	return nil
}
