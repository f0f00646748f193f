package mines

import (
	"fmt"
	"strconv"
)

type CellKind uint8

const (
	Unknown      CellKind = iota // not opened, not a mine
	Revealed                     // opened
	Mine                         // not opened, mined
	MarkedMine                   // mine flagged by the player
	FalseMine                    // safe cell flagged by the player
	ExplodedMine                 // mine the player opened
)

var cellKindNames = [...]string{
	Unknown:      "unknown",
	Revealed:     "revealed",
	Mine:         "mine",
	MarkedMine:   "marked_mine",
	FalseMine:    "false_mine",
	ExplodedMine: "exploded_mine",
}

func (k CellKind) String() string {
	if int(k) < len(cellKindNames) {
		return cellKindNames[k]
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

func (k CellKind) MarshalText() ([]byte, error) {
	if int(k) >= len(cellKindNames) {
		return nil, fmt.Errorf("invalid cell kind %d", k)
	}
	return []byte(cellKindNames[k]), nil
}

func (k *CellKind) UnmarshalText(text []byte) error {
	for i, name := range cellKindNames {
		if name == string(text) {
			*k = CellKind(i)
			return nil
		}
	}
	return fmt.Errorf("invalid cell kind %q", text)
}

// mined reports whether a mine really sits under a cell of this kind.
func (k CellKind) mined() bool {
	return k == Mine || k == MarkedMine || k == ExplodedMine
}

func (k CellKind) flagged() bool {
	return k == MarkedMine || k == FalseMine
}

// Cell is a single square of a board. Count holds the number of mined
// neighbours and is only meaningful for Unknown, Revealed and FalseMine.
type Cell struct {
	Kind  CellKind `json:"kind"`
	Count int      `json:"count,omitempty"`
}

func unknown(n int) Cell  { return Cell{Kind: Unknown, Count: n} }
func revealed(n int) Cell { return Cell{Kind: Revealed, Count: n} }

func (c Cell) String() string {
	switch c.Kind {
	case Revealed:
		if c.Count == 0 {
			return " "
		}
		return strconv.Itoa(c.Count)
	case Unknown:
		if c.Count == 0 {
			return "O"
		}
		return strconv.Itoa(c.Count)
	case MarkedMine:
		return "!"
	case Mine:
		return "*"
	case FalseMine:
		return "Ø"
	case ExplodedMine:
		return "X"
	default:
		return "?"
	}
}
