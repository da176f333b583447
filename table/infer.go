package table

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tabmill/tabmill/errors"
)

var (
	floatPattern = regexp.MustCompile(`^\d+\.\d+$`)
	intPattern   = regexp.MustCompile(`^\d+$`)
)

// Classify maps a token to its ColumnType through an ordered rule set; the
// first matching rule wins. The order is load-bearing: every Int-shaped
// token would also be rejected by the Float pattern, and null-like tokens
// must be caught before the String fallback. Do not reorder.
func Classify(token string) ColumnType {
	trimmed := strings.TrimSpace(token)
	switch {
	case floatPattern.MatchString(trimmed):
		return Float
	case intPattern.MatchString(trimmed):
		return Int
	case strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false"):
		return Bool
	case isNullLike(trimmed):
		return Null
	default:
		return String
	}
}

// isNullLike reports whether a trimmed token is empty or the literal "null"
// in any case.
func isNullLike(trimmed string) bool {
	return trimmed == "" || strings.EqualFold(trimmed, "null")
}

// headerTokenInvalid reports whether a header token is unusable for
// inference: empty after trimming, made up entirely of quote characters and
// whitespace, or the literal "null".
func headerTokenInvalid(token string) bool {
	stripped := strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\''
	})
	return stripped == "" || strings.EqualFold(strings.TrimSpace(token), "null")
}

// InferSchema derives the schema from the tokenized header row. It fails
// with ErrInvalidHeaderRow if any token is blank or null-like; otherwise it
// classifies each token independently and returns one ColumnType per column,
// in header order. The schema is authoritative for the run and is never
// re-derived from data rows.
func InferSchema(fields []string) (Schema, error) {
	for i, field := range fields {
		if headerTokenInvalid(field) {
			return nil, errors.NewInvalidHeaderRow("header token %d is blank or null-like", i+1)
		}
	}

	schema := make(Schema, len(fields))
	for i, field := range fields {
		schema[i] = Classify(field)
	}
	return schema, nil
}
