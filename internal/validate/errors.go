package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyArguments is returned when no arguments were supplied at all.
var ErrEmptyArguments = errors.New("no arguments supplied")

// MalformedTokenError reports a token that does not split into exactly one
// non-empty key and one non-empty value around a single '='.
type MalformedTokenError struct {
	Token string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Token)
}

// UnrecognizedKeyError reports a key outside the accepted set.
type UnrecognizedKeyError struct {
	Key string
}

func (e *UnrecognizedKeyError) Error() string {
	return fmt.Sprintf("unrecognized argument: %s", e.Key)
}

// InvalidValueError reports a value outside the range or enumeration of its
// key. Err carries the underlying cause when there is one.
type InvalidValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value for '%s': %s (%v)", e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid value for '%s': %s", e.Key, e.Value)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// TypeMismatchError reports a 'v' list whose values do not share one kind.
type TypeMismatchError struct {
	Value string
	Err   error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("array 'v' must contain only one data type: %v", e.Err)
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// Errors is every problem found during one validation scan, in argument
// order.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() []error { return e }
