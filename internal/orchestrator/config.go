package orchestrator

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// Random generation parameters.
const (
	// RandomLength is the number of values generated in random mode.
	RandomLength = 10

	// RandomMax is the inclusive upper bound of generated values. The lower
	// bound is 1.
	RandomMax = 40
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRand sets the source used for random generation.
func WithRand(r *rand.Rand) Option {
	return func(o *Orchestrator) { o.rand = r }
}

// WithSeed seeds random generation deterministically.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

func defaultRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1))
}
