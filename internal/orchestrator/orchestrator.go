package orchestrator

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/dusk-indust/sortdemo/internal/element"
	"github.com/dusk-indust/sortdemo/internal/sorting"
	"github.com/dusk-indust/sortdemo/internal/validate"
)

// Step identifies a phase of one run.
type Step int

const (
	StepMaterialize Step = iota
	StepSort
	StepReverse
)

func (s Step) String() string {
	names := [...]string{
		"materialize",
		"sort",
		"reverse",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// MissingInputError is returned when there is no 'v' list to sort and
// random generation was not requested.
type MissingInputError struct{}

func (e *MissingInputError) Error() string {
	return "array 'v' was not supplied and random input was not requested"
}

// InvalidAlgorithmError is returned when the configured algorithm has no
// strategy.
type InvalidAlgorithmError struct {
	Algorithm sorting.Algorithm
}

func (e *InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("invalid algorithm type: %d", int(e.Algorithm))
}

// Orchestrator materializes, sorts and orders the values of a validated
// configuration.
type Orchestrator struct {
	rand *rand.Rand
	log  *slog.Logger
}

// New creates an Orchestrator. Without options it draws random values from a
// time-seeded source and logs to slog.Default.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rand == nil {
		o.rand = defaultRand()
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}

// Run produces the final sequence for cfg. Random mode takes precedence over
// an explicit 'v' list. The configuration's own Values are never modified.
func (o *Orchestrator) Run(cfg *validate.Config) (element.Values, error) {
	values, err := o.materialize(cfg)
	if err != nil {
		return element.Values{}, fmt.Errorf("orchestrator: %s: %w", StepMaterialize, err)
	}

	descending := cfg.Order == validate.Descending
	switch values.Kind {
	case element.Character:
		err = sortAndOrder(o.log, cfg.Algorithm, values.Chars, descending)
	default:
		err = sortAndOrder(o.log, cfg.Algorithm, values.Ints, descending)
	}
	if err != nil {
		return element.Values{}, fmt.Errorf("orchestrator: %s: %w", StepSort, err)
	}

	return values, nil
}

func (o *Orchestrator) materialize(cfg *validate.Config) (element.Values, error) {
	if cfg.Random() {
		if cfg.Values != nil {
			o.log.Debug("random input overrides explicit values", "step", StepMaterialize)
		}
		values := o.Generate()
		o.log.Debug("generated random values", "step", StepMaterialize, "values", values.String())
		return values, nil
	}
	if cfg.Values == nil {
		return element.Values{}, &MissingInputError{}
	}
	return cfg.Values.Clone(), nil
}

// Generate returns RandomLength integers drawn uniformly from [1, RandomMax].
func (o *Orchestrator) Generate() element.Values {
	ints := make([]int64, RandomLength)
	for i := range ints {
		ints[i] = o.rand.Int64N(RandomMax) + 1
	}
	return element.IntValues(ints...)
}

func sortAndOrder[T cmp.Ordered](log *slog.Logger, alg sorting.Algorithm, s []T, descending bool) error {
	sortFn, err := sorting.For[T](alg)
	if err != nil {
		return &InvalidAlgorithmError{Algorithm: alg}
	}

	sortFn(s)
	log.Debug("sorted values", "step", StepSort, "algorithm", alg.String(), "count", len(s))

	if descending {
		sorting.Reverse(s)
		log.Debug("reversed values", "step", StepReverse)
	}
	return nil
}
