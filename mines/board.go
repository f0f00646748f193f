package mines

import (
	"fmt"
	"strings"
)

// Board is a row-major grid of cells; the cell at (x, y) lives at
// Cells[y*Width+x].
type Board struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`
}

func newBoard(width, height int) Board {
	return Board{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

func (b Board) Contains(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

// At returns the cell at (x, y). It panics if the point is off the board.
func (b Board) At(x, y int) Cell {
	return b.Cells[y*b.Width+x]
}

func (b Board) set(x, y int, c Cell) {
	b.Cells[y*b.Width+x] = c
}

// neighbours calls fn for every point of the Moore neighbourhood of (x, y),
// clipped at the board edges. The centre itself is skipped.
func (b Board) neighbours(x, y int, fn func(xx, yy int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.Contains(x+dx, y+dy) {
				fn(x+dx, y+dy)
			}
		}
	}
}

func (b Board) countKind(kinds ...CellKind) (count int) {
	for _, c := range b.Cells {
		for _, k := range kinds {
			if c.Kind == k {
				count++
				break
			}
		}
	}
	return
}

func (b Board) clone() Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return Board{Width: b.Width, Height: b.Height, Cells: cells}
}

// mask returns a copy of b with everything the player must not know hidden:
// unopened cells lose their kind and count, and flags no longer tell whether
// they were right.
func (b Board) mask() Board {
	masked := b.clone()
	for i, c := range masked.Cells {
		switch c.Kind {
		case Mine, Unknown:
			masked.Cells[i] = unknown(0)
		case FalseMine:
			masked.Cells[i] = Cell{Kind: MarkedMine}
		}
	}
	return masked
}

// won reports whether every safe cell has been opened.
func (b Board) won() bool {
	for _, c := range b.Cells {
		if c.Kind == Unknown || c.Kind == FalseMine {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			fmt.Fprint(&sb, b.At(x, y).String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
