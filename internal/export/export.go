// Package export renders the result of a run for the console or as JSON.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dusk-indust/sortdemo/internal/element"
	"github.com/dusk-indust/sortdemo/internal/validate"
)

// Format selects how a run is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" and "json".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("export: unknown format %q (want text or json)", s)
	}
}

// RunExport is the top-level JSON structure for a completed run.
type RunExport struct {
	Algorithm string   `json:"algorithm"`
	Order     string   `json:"order"`
	Kind      string   `json:"kind"`
	Random    bool     `json:"random"`
	Speed     *int     `json:"speed,omitempty"`
	Arguments []string `json:"arguments"`
	Values    any      `json:"values"`
}

// NewRunExport builds the export for cfg and its final values. Integer
// values are emitted as JSON numbers, characters as one-character strings.
func NewRunExport(cfg *validate.Config, values element.Values) *RunExport {
	out := &RunExport{
		Algorithm: cfg.Algorithm.String(),
		Order:     string(cfg.Order),
		Kind:      values.Kind.String(),
		Random:    cfg.Random(),
		Speed:     cfg.Speed,
		Arguments: make([]string, 0, len(cfg.Arguments)),
	}
	for _, arg := range cfg.Arguments {
		out.Arguments = append(out.Arguments, arg.String())
	}

	if values.Kind == element.Character {
		out.Values = values.Strings()
	} else {
		ints := values.Ints
		if ints == nil {
			ints = []int64{}
		}
		out.Values = ints
	}
	return out
}

// WriteArguments echoes every accepted argument, one per line, under a
// header line.
func WriteArguments(w io.Writer, cfg *validate.Config) error {
	if _, err := fmt.Fprintln(w, "All arguments are valid:"); err != nil {
		return err
	}
	for _, arg := range cfg.Arguments {
		if _, err := fmt.Fprintln(w, arg.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteValues prints values space-separated followed by a newline.
func WriteValues(w io.Writer, values element.Values) error {
	_, err := fmt.Fprintln(w, values.String())
	return err
}

// WriteJSON writes the indented JSON export of a run.
func WriteJSON(w io.Writer, cfg *validate.Config, values element.Values) error {
	out, err := json.MarshalIndent(NewRunExport(cfg, values), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}

// WriteDiagnostics prints one "error: ..." line per problem in err. Joined
// errors and validate.Errors are expanded.
func WriteDiagnostics(w io.Writer, err error) {
	for _, e := range flatten(err) {
		fmt.Fprintf(w, "error: %v\n", e)
	}
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	var errs validate.Errors
	if errors.As(err, &errs) {
		return errs
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
