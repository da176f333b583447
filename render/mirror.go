package render

import (
	"os"
	"strings"

	"github.com/tabmill/tabmill/errors"
)

// Mirror persists a copy of the rendered table: one header line of display
// labels followed by the accepted rows, delimiter-joined. Values are the
// untruncated originals — truncation is display-only and never reaches the
// mirror.
func Mirror(path string, headers []string, accepted [][]string, delimiter string) error {
	var b strings.Builder
	b.WriteString(strings.Join(headers, delimiter))
	b.WriteByte('\n')
	for _, row := range accepted {
		b.WriteString(strings.Join(row, delimiter))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write mirror file %s", path)
	}
	return nil
}
