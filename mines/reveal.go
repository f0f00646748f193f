package mines

import "github.com/gammazero/deque"

// openCell opens a single cell of the authoritative board and reports
// whether the player survived it. Cells that cannot be opened are left alone
// and count as survived.
func (e *Engine) openCell(x, y int) bool {
	c := e.board.At(x, y)
	switch c.Kind {
	case Unknown:
		if c.Count == 0 {
			e.revealEmpty(x, y)
		} else {
			e.board.set(x, y, revealed(c.Count))
		}
		e.first = false
		return true
	case Mine:
		if e.first {
			e.relocateMine(x, y)
			e.first = false
			return e.openCell(x, y)
		}
		e.board.set(x, y, Cell{Kind: ExplodedMine})
		return false
	default:
		return true
	}
}

// revealEmpty opens the zero cell at (x, y) together with every unknown cell
// connected to it through other zero cells. Numbered cells on the border are
// opened but not expanded.
func (e *Engine) revealEmpty(x, y int) {
	b := e.board
	var todo deque.Deque[int]

	b.set(x, y, revealed(0))
	todo.PushBack(y*b.Width + x)

	for todo.Len() > 0 {
		i := todo.PopFront()
		b.neighbours(i%b.Width, i/b.Width, func(xx, yy int) {
			c := b.At(xx, yy)
			if c.Kind != Unknown {
				return
			}
			b.set(xx, yy, revealed(c.Count))
			if c.Count == 0 {
				todo.PushBack(yy*b.Width + xx)
			}
		})
	}
}
