// Package validate turns raw key=value command-line tokens into an immutable
// run configuration, collecting every problem found along the way.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dusk-indust/sortdemo/internal/element"
	"github.com/dusk-indust/sortdemo/internal/sorting"
)

// Speed bounds, inclusive.
const (
	MinSpeed = 100
	MaxSpeed = 1000
)

// Order is the final presentation order of the sorted values.
type Order string

const (
	Ascending  Order = "AZ"
	Descending Order = "ZA"
)

// ParseOrder accepts AZ, az, ZA and za.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "AZ", "az":
		return Ascending, nil
	case "ZA", "za":
		return Descending, nil
	default:
		return "", fmt.Errorf("unknown order %q", s)
	}
}

// InputMode says where the values to sort come from.
type InputMode int

const (
	InputUnset InputMode = iota
	InputManual
	InputRandom
)

func (m InputMode) String() string {
	switch m {
	case InputManual:
		return "manual"
	case InputRandom:
		return "random"
	default:
		return "unset"
	}
}

// Argument is one key=value token.
type Argument struct {
	Key   string
	Value string
}

func (a Argument) String() string {
	return a.Key + "=" + a.Value
}

// ParseArgument splits tok around its single '='. Both sides must be
// non-empty.
func ParseArgument(tok string) (Argument, error) {
	parts := strings.Split(tok, "=")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Argument{}, &MalformedTokenError{Token: tok}
	}
	return Argument{Key: parts[0], Value: parts[1]}, nil
}

// Config is a fully validated run configuration. Values is nil unless a 'v'
// list was accepted; Speed and KindHint are nil unless supplied.
type Config struct {
	Algorithm sorting.Algorithm
	Order     Order
	Input     InputMode
	KindHint  *element.Kind
	Values    *element.Values
	Speed     *int
	Arguments []Argument
}

// Random reports whether values are to be generated rather than read from
// the 'v' list.
func (c *Config) Random() bool {
	return c.Input == InputRandom
}

// Defaults are applied before any argument is scanned.
type Defaults struct {
	Algorithm sorting.Algorithm
	Order     Order
}

// StandardDefaults selects selection sort in ascending order.
func StandardDefaults() Defaults {
	return Defaults{Algorithm: sorting.Selection, Order: Ascending}
}

// Validate scans args with StandardDefaults.
func Validate(args []string) (*Config, error) {
	return ValidateWith(args, StandardDefaults())
}

// ValidateWith scans every token in args. If any token is invalid, no Config
// is returned and the error is an Errors holding one entry per problem.
func ValidateWith(args []string, defaults Defaults) (*Config, error) {
	if len(args) == 0 {
		return nil, Errors{ErrEmptyArguments}
	}

	cfg := Config{
		Algorithm: defaults.Algorithm,
		Order:     defaults.Order,
	}
	if cfg.Order == "" {
		cfg.Order = Ascending
	}

	var errs Errors
	for _, tok := range args {
		arg, err := ParseArgument(tok)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := apply(&cfg, arg); err != nil {
			errs = append(errs, err)
			continue
		}
		cfg.Arguments = append(cfg.Arguments, arg)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// apply validates a single argument and records its effect on cfg.
func apply(cfg *Config, arg Argument) error {
	invalid := func(err error) error {
		return &InvalidValueError{Key: arg.Key, Value: arg.Value, Err: err}
	}

	switch arg.Key {
	case "a":
		alg, err := sorting.ParseAlgorithm(arg.Value)
		if err != nil {
			return invalid(nil)
		}
		cfg.Algorithm = alg

	case "o":
		order, err := ParseOrder(arg.Value)
		if err != nil {
			return invalid(nil)
		}
		cfg.Order = order

	case "in":
		switch arg.Value {
		case "M", "m":
			cfg.Input = InputManual
		case "r":
			cfg.Input = InputRandom
		default:
			return invalid(nil)
		}

	case "t":
		var kind element.Kind
		switch arg.Value {
		case "N", "n":
			kind = element.Integer
		case "C", "c":
			kind = element.Character
		default:
			return invalid(nil)
		}
		cfg.KindHint = &kind

	case "v":
		values, err := element.Parse(arg.Value)
		if err != nil {
			var mixed *element.MixedKindError
			if errors.As(err, &mixed) {
				return &TypeMismatchError{Value: arg.Value, Err: err}
			}
			return invalid(err)
		}
		cfg.Values = &values

	case "s":
		speed, err := strconv.Atoi(arg.Value)
		if err != nil || speed < MinSpeed || speed > MaxSpeed {
			return invalid(nil)
		}
		cfg.Speed = &speed

	default:
		return &UnrecognizedKeyError{Key: arg.Key}
	}
	return nil
}
