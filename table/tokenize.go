package table

import "strings"

// SplitFields splits a raw line into fields on every occurrence of the
// delimiter. No trimming and no quote interpretation: a field containing the
// delimiter inside quotation marks splits incorrectly. This is the inherited
// tokenizer contract, kept as-is so rejection behavior on such inputs stays
// faithful.
func SplitFields(line, delimiter string) []string {
	return strings.Split(line, delimiter)
}
