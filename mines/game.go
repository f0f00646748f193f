package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

var Log *slog.Logger = slog.Default()

type GameStatus uint8

const (
	Never GameStatus = iota
	Playing
	Won
	Lost
)

var gameStatusNames = [...]string{
	Never:   "never",
	Playing: "playing",
	Won:     "won",
	Lost:    "lost",
}

func (s GameStatus) String() string {
	if int(s) < len(gameStatusNames) {
		return gameStatusNames[s]
	}
	return fmt.Sprintf("GameStatus(%d)", s)
}

func (s GameStatus) MarshalText() ([]byte, error) {
	if int(s) >= len(gameStatusNames) {
		return nil, fmt.Errorf("invalid game status %d", s)
	}
	return []byte(gameStatusNames[s]), nil
}

func (s GameStatus) Over() bool {
	return s == Won || s == Lost
}

// GameState is what the player gets to see after every action. While the
// game is being played the board is masked; once it is over the board is
// shown as it really is.
type GameState struct {
	Status         GameStatus `json:"status"`
	Board          Board      `json:"board"`
	RemainingMines int        `json:"remaining_mines"`
}

// Engine runs consecutive games of a fixed size. It is not safe for
// concurrent use.
type Engine struct {
	params GameParams
	logger *slog.Logger
	rnd    *rand.Rand
	onWin  []func()
	onLose []func()

	id             uuid.UUID
	status         GameStatus
	board          Board /* real field, never handed out */
	remainingMines int
	first          bool /* no cell has been opened yet */
}

func New(width, height, mines int, opts ...Option) (*Engine, error) {
	params := GameParams{Width: width, Height: height, MineCount: mines}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newEngine(params, opts...), nil
}

func NewFromPreset(preset Preset, opts ...Option) *Engine {
	return newEngine(preset.Params(), opts...)
}

func newEngine(params GameParams, opts ...Option) *Engine {
	e := &Engine{
		params:         params,
		logger:         Log,
		remainingMines: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = createRand()
	}
	return e
}

func (e *Engine) Params() GameParams {
	return e.params
}

// GameID identifies the current game; it changes on every Start.
func (e *Engine) GameID() uuid.UUID {
	return e.id
}

func (e *Engine) State() GameState {
	return e.snapshot()
}

// Start throws away the current game, if any, and begins a new one.
func (e *Engine) Start() GameState {
	return e.start(func(b Board) {
		b.placeMines(e.params.MineCount, e.rnd)
	})
}

func (e *Engine) start(seed func(b Board)) GameState {
	width, height, mineCount := e.params.Unpack()

	board := newBoard(width, height)
	seed(board)
	board.generateNumbers()

	e.id = uuid.New()
	e.board = board
	e.status = Playing
	e.remainingMines = mineCount
	e.first = true

	e.logger.Debug(
		"game started",
		slog.String("game", e.id.String()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mines", mineCount),
	)

	return e.snapshot()
}

func (e *Engine) playable(x, y int) bool {
	return e.status == Playing && e.board.Contains(x, y)
}

// Reveal opens the cell at (x, y). The first cell opened in a game is never
// a mine.
func (e *Engine) Reveal(x, y int) GameState {
	if !e.playable(x, y) {
		return e.snapshot()
	}
	return e.settle(e.openCell(x, y))
}

// ClearAround opens every neighbour of the revealed cell at (x, y) provided
// the number of flags around it matches its count.
func (e *Engine) ClearAround(x, y int) GameState {
	if !e.playable(x, y) {
		return e.snapshot()
	}
	c := e.board.At(x, y)
	if c.Kind != Revealed {
		return e.snapshot()
	}

	flags := 0
	e.board.neighbours(x, y, func(xx, yy int) {
		if e.board.At(xx, yy).Kind.flagged() {
			flags++
		}
	})
	if flags != c.Count {
		return e.snapshot()
	}

	ok := true
	e.board.neighbours(x, y, func(xx, yy int) {
		ok = e.openCell(xx, yy) && ok
	})
	return e.settle(ok)
}

func (e *Engine) ToggleFlag(x, y int) GameState {
	if !e.playable(x, y) {
		return e.snapshot()
	}
	c := e.board.At(x, y)
	switch c.Kind {
	case Mine:
		e.board.set(x, y, Cell{Kind: MarkedMine})
	case MarkedMine:
		e.board.set(x, y, Cell{Kind: Mine})
	case Unknown:
		e.board.set(x, y, Cell{Kind: FalseMine, Count: c.Count})
	case FalseMine:
		e.board.set(x, y, unknown(c.Count))
	}
	return e.snapshot()
}

// LeftClick acts the way a left click on the visible board would: it chords
// revealed cells, ignores flagged ones and reveals the rest.
func (e *Engine) LeftClick(x, y int) GameState {
	if !e.playable(x, y) {
		return e.snapshot()
	}
	switch k := e.board.At(x, y).Kind; {
	case k == Revealed:
		return e.ClearAround(x, y)
	case k.flagged():
		return e.snapshot()
	default:
		return e.Reveal(x, y)
	}
}

func (e *Engine) RightClick(x, y int) GameState {
	return e.ToggleFlag(x, y)
}

// settle moves the game to its terminal status when an action killed the
// player or left no safe cell closed.
func (e *Engine) settle(survived bool) GameState {
	switch {
	case !survived:
		e.status = Lost
		e.logger.Info("game lost", slog.String("game", e.id.String()))
		notify(e.onLose)
	case e.board.won():
		e.status = Won
		e.logger.Info("game won", slog.String("game", e.id.String()))
		notify(e.onWin)
	}
	return e.snapshot()
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}

func (e *Engine) snapshot() GameState {
	var board Board
	switch e.status {
	case Never:
		board = Board{Width: e.params.Width, Height: e.params.Height}
	case Playing:
		board = e.board.mask()
	default:
		board = e.board.clone()
	}
	return GameState{
		Status:         e.status,
		Board:          board,
		RemainingMines: e.remainingMines,
	}
}
