package mines

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
)

type Option func(e *Engine)

// WithRand sets the source used for mine placement and relocation.
// Use a seeded source to get reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = r
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// OnWin registers fn to be called once every time a game is won.
func OnWin(fn func()) Option {
	return func(e *Engine) {
		e.onWin = append(e.onWin, fn)
	}
}

// OnLose registers fn to be called once every time a game is lost.
func OnLose(fn func()) Option {
	return func(e *Engine) {
		e.onLose = append(e.onLose, fn)
	}
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
