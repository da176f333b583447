package table

import (
	"fmt"
	"strings"

	"github.com/tabmill/tabmill/errors"
)

// ValidateRows checks every data row against the schema, independently, and
// folds the results into a single Outcome. A rejected row never aborts the
// pass; it records a warning, sets HasErrors, and processing moves to the
// next row. Accepted rows keep their input order.
func ValidateRows(schema Schema, lines []string, delimiter string) Outcome {
	var outcome Outcome

	for i, line := range lines {
		rowNum := i + 1
		fields := SplitFields(line, delimiter)

		if len(fields) != len(schema) {
			outcome.reject(Warning{
				Row: rowNum,
				Err: errors.ErrColumnCountMismatch,
				Message: fmt.Sprintf("row %d has %d fields, schema has %d columns",
					rowNum, len(fields), len(schema)),
			})
			continue
		}

		if w, ok := checkFields(schema, fields, rowNum); !ok {
			outcome.reject(w)
			continue
		}

		outcome.Accepted = append(outcome.Accepted, fields)
	}

	return outcome
}

// checkFields evaluates a row's fields left-to-right against the schema.
// Evaluation stops at the first failing field. A Null-column mismatch gets
// its own message; all other type failures share the generic one.
func checkFields(schema Schema, fields []string, rowNum int) (Warning, bool) {
	for i, columnType := range schema {
		if fieldMatches(fields[i], columnType) {
			continue
		}

		w := Warning{
			Row:    rowNum,
			Column: i + 1,
			Err:    errors.ErrFieldTypeMismatch,
		}
		if columnType == Null {
			w.Message = fmt.Sprintf("row %d column %d: value is not null-like", rowNum, i+1)
		} else {
			w.Message = fmt.Sprintf("row %d does not match schema at column %d", rowNum, i+1)
		}
		return w, false
	}
	return Warning{}, true
}

// fieldMatches reports whether a raw field conforms to the column type,
// mirroring the classification patterns used during inference.
func fieldMatches(field string, t ColumnType) bool {
	trimmed := strings.TrimSpace(field)
	switch t {
	case Null:
		return isNullLike(trimmed)
	case Int:
		return intPattern.MatchString(trimmed)
	case Float:
		return floatPattern.MatchString(trimmed)
	case Bool:
		return strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false")
	default: // String accepts anything
		return true
	}
}

func (o *Outcome) reject(w Warning) {
	o.Warnings = append(o.Warnings, w)
	o.HasErrors = true
}
