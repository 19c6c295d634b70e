// Package element classifies textual tokens and holds homogeneous value
// sequences of integers or single characters.
package element

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies the type shared by every value in a sequence.
type Kind int

const (
	// Integer values parse fully as base-10 integers.
	Integer Kind = iota

	// Character values are exactly one character long.
	Character
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Character:
		return "character"
	default:
		return "unknown"
	}
}

// Infer returns Integer if tok parses as a base-10 integer, otherwise
// Character. Infer does not check that a Character token is one rune long;
// Parse does.
func Infer(tok string) Kind {
	if _, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Integer
	}
	return Character
}

// Values is a homogeneous sequence. Exactly one of Ints or Chars is used,
// selected by Kind.
type Values struct {
	Kind  Kind
	Ints  []int64
	Chars []rune
}

// IntValues wraps ints as an Integer sequence.
func IntValues(ints ...int64) Values {
	return Values{Kind: Integer, Ints: ints}
}

// CharValues wraps chars as a Character sequence.
func CharValues(chars ...rune) Values {
	return Values{Kind: Character, Chars: chars}
}

// Len returns the number of values in the sequence.
func (v Values) Len() int {
	if v.Kind == Character {
		return len(v.Chars)
	}
	return len(v.Ints)
}

// Clone returns a copy that does not share backing storage with v.
func (v Values) Clone() Values {
	out := Values{Kind: v.Kind}
	if v.Ints != nil {
		out.Ints = append([]int64(nil), v.Ints...)
	}
	if v.Chars != nil {
		out.Chars = append([]rune(nil), v.Chars...)
	}
	return out
}

// Strings renders each value for display.
func (v Values) Strings() []string {
	out := make([]string, 0, v.Len())
	if v.Kind == Character {
		for _, c := range v.Chars {
			out = append(out, string(c))
		}
		return out
	}
	for _, n := range v.Ints {
		out = append(out, strconv.FormatInt(n, 10))
	}
	return out
}

// String joins the values with single spaces.
func (v Values) String() string {
	return strings.Join(v.Strings(), " ")
}

// MixedKindError reports a token whose kind differs from the first token
// of the list.
type MixedKindError struct {
	Token    string
	Expected Kind
	Got      Kind
}

func (e *MixedKindError) Error() string {
	return fmt.Sprintf("value %q is %s, expected %s", e.Token, e.Got, e.Expected)
}

// InvalidTokenError reports a token that is neither an integer nor a single
// character.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	if e.Token == "" {
		return "empty value"
	}
	return fmt.Sprintf("value %q is neither an integer nor a single character", e.Token)
}

// Parse splits list on commas and converts every token into one homogeneous
// sequence. The kind of the first token decides the kind of the whole list.
func Parse(list string) (Values, error) {
	tokens := strings.Split(list, ",")
	for _, tok := range tokens {
		if tok == "" {
			return Values{}, &InvalidTokenError{}
		}
	}

	kind := Infer(tokens[0])
	for _, tok := range tokens[1:] {
		if got := Infer(tok); got != kind {
			return Values{}, &MixedKindError{Token: tok, Expected: kind, Got: got}
		}
	}

	if kind == Integer {
		ints := make([]int64, len(tokens))
		for i, tok := range tokens {
			// Infer already proved the token parses.
			ints[i], _ = strconv.ParseInt(tok, 10, 64)
		}
		return IntValues(ints...), nil
	}

	chars := make([]rune, len(tokens))
	for i, tok := range tokens {
		if utf8.RuneCountInString(tok) != 1 {
			return Values{}, &InvalidTokenError{Token: tok}
		}
		chars[i], _ = utf8.DecodeRuneInString(tok)
	}
	return CharValues(chars...), nil
}
