package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-engine/mines"
)

type Button uint8

const (
	Left Button = iota + 1
	Right
	lastButton
)

func (b Button) String() string {
	switch b {
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return fmt.Sprintf("Button(%d)", b)
	}
}

var (
	ErrBadCommand = errors.New(`command must look like "x y button"`)
	ErrBadButton  error
)

func init() {
	var allowed []string
	for b := Left; b < lastButton; b++ {
		allowed = append(allowed, "'"+b.String()+"'")
	}
	ErrBadButton = fmt.Errorf("button must be one of %s", strings.Join(allowed, ", "))
}

func decodeButton(s string) (button Button, err error) {
	switch strings.ToLower(s) {
	case "l":
		button = Left
	case "r":
		button = Right
	default:
		err = ErrBadButton
	}
	return
}

type Command struct {
	X, Y   int
	Button Button
}

type rawCommand struct {
	X      int    `schema:"x,required"`
	Y      int    `schema:"y,required"`
	Button string `schema:"button,required"`
}

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

// ParseCommand reads a line of the form "x y l" or "x y r".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Command{}, ErrBadCommand
	}

	var raw rawCommand
	err := decoder.Decode(&raw, map[string][]string{
		"x":      {fields[0]},
		"y":      {fields[1]},
		"button": {fields[2]},
	})
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrBadCommand, err)
	}

	button, err := decodeButton(raw.Button)
	if err != nil {
		return Command{}, err
	}

	return Command{X: raw.X, Y: raw.Y, Button: button}, nil
}

func (c Command) Apply(e *mines.Engine) mines.GameState {
	switch c.Button {
	case Right:
		return e.RightClick(c.X, c.Y)
	default:
		return e.LeftClick(c.X, c.Y)
	}
}
