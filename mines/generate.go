package mines

import (
	"log/slog"
	"math/rand/v2"
)

// placeMines drops count mines on distinct random cells of an empty board.
// Cells are drawn uniformly and redrawn when already mined; count is always
// below the number of cells so this terminates.
func (b Board) placeMines(count int, r *rand.Rand) {
	for placed := 0; placed < count; {
		x := r.IntN(b.Width)
		y := r.IntN(b.Height)
		if b.At(x, y).Kind == Unknown {
			b.set(x, y, Cell{Kind: Mine})
			placed++
		}
	}
}

// generateNumbers recomputes the neighbour mine count of every safe cell.
func (b Board) generateNumbers() {
	for i, c := range b.Cells {
		if !c.Kind.mined() {
			b.Cells[i].Count = 0
		}
	}
	for y := range b.Height {
		for x := range b.Width {
			if !b.At(x, y).Kind.mined() {
				continue
			}
			b.neighbours(x, y, func(xx, yy int) {
				i := yy*b.Width + xx
				if !b.Cells[i].Kind.mined() {
					b.Cells[i].Count++
				}
			})
		}
	}
}

// relocateMine moves the mine at (x, y) to another safe cell chosen
// uniformly at random and recomputes the counts. Unflagged cells are
// preferred; a wrongly flagged cell only receives the mine when nothing else
// is left, and keeps its flag.
func (e *Engine) relocateMine(x, y int) {
	b := e.board
	from := y*b.Width + x
	b.Cells[from] = unknown(0)

	candidates := make([]int, 0, len(b.Cells))
	for i, c := range b.Cells {
		if i != from && c.Kind == Unknown {
			candidates = append(candidates, i)
		}
	}
	replacement := Cell{Kind: Mine}
	if len(candidates) == 0 {
		for i, c := range b.Cells {
			if c.Kind == FalseMine {
				candidates = append(candidates, i)
			}
		}
		replacement = Cell{Kind: MarkedMine}
	}

	to := candidates[e.rnd.IntN(len(candidates))]
	b.Cells[to] = replacement
	b.generateNumbers()

	e.logger.Debug(
		"mine relocated",
		slog.String("game", e.id.String()),
		slog.Int("from", from),
		slog.Int("to", to),
	)
}
