package table

import (
	"fmt"

	"github.com/tabmill/tabmill/errors"
)

const (
	// DefaultTruncateWidth is the per-field display cut applied to accepted
	// values. The overall table width ceiling belongs to the renderer, not
	// here.
	DefaultTruncateWidth = 40

	// Ellipsis marks a truncated display value.
	Ellipsis = "..."
)

// Presentation is the finalized header/value matrix handed to the renderer.
// Values are truncated copies for display only; the underlying validated
// rows in the Outcome are untouched.
type Presentation struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// DisplayHeaders derives unique column labels from the schema. The first
// column of a type gets the bare type name; each repeat gets the type name
// plus its occurrence count, so two Int columns come out as "Int" and
// "Int2". This only disambiguates the synthetic type-derived names, never
// header names from the source file.
func DisplayHeaders(schema Schema) []string {
	counts := make(map[ColumnType]int, len(schema))
	headers := make([]string, 0, len(schema))

	for _, t := range schema {
		counts[t]++
		if counts[t] == 1 {
			headers = append(headers, t.String())
		} else {
			headers = append(headers, fmt.Sprintf("%s%d", t, counts[t]))
		}
	}
	return headers
}

// TruncateValue cuts a value to width characters and appends the ellipsis
// marker when it is longer; shorter values pass through unchanged.
func TruncateValue(v string, width int) string {
	runes := []rune(v)
	if len(runes) <= width {
		return v
	}
	return string(runes[:width]) + Ellipsis
}

// BuildPresentation turns a clean validation outcome into a Presentation.
// It enforces the all-or-nothing gate: when the outcome has errors or zero
// accepted rows it returns ErrEmptyAcceptedSet and no presentation at all.
func BuildPresentation(schema Schema, outcome Outcome, truncateWidth int) (*Presentation, error) {
	if !outcome.Renderable() {
		return nil, errors.Wrapf(errors.ErrEmptyAcceptedSet,
			"%d accepted, errors=%t", len(outcome.Accepted), outcome.HasErrors)
	}
	if truncateWidth <= 0 {
		truncateWidth = DefaultTruncateWidth
	}

	rows := make([][]string, len(outcome.Accepted))
	for i, accepted := range outcome.Accepted {
		row := make([]string, len(accepted))
		for j, field := range accepted {
			row[j] = TruncateValue(field, truncateWidth)
		}
		rows[i] = row
	}

	return &Presentation{
		Headers: DisplayHeaders(schema),
		Rows:    rows,
	}, nil
}
