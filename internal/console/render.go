package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/mines"
)

// Render writes the board with column and row indices followed by a status
// line.
func Render(w io.Writer, s mines.GameState) error {
	var b strings.Builder
	board := s.Board

	pad := len(strconv.Itoa(max(board.Width, board.Height) - 1))

	fmt.Fprintf(&b, "%*s ", pad, "")
	for x := range board.Width {
		fmt.Fprintf(&b, " %*d", pad, x)
	}
	b.WriteString("\n")

	if len(board.Cells) == board.Width*board.Height {
		for y := range board.Height {
			fmt.Fprintf(&b, "%*d ", pad, y)
			for x := range board.Width {
				fmt.Fprintf(&b, " %*s", pad, board.At(x, y).String())
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "status: %s, mines: %d\n", s.Status, s.RemainingMines)

	_, err := io.WriteString(w, b.String())
	return err
}
