// Package loader reads delimited text input for a scan run. It owns the
// ingestion boundary: capping the number of lines read and excluding blank
// lines before the pipeline core ever sees data.
package loader

import (
	"bufio"
	"os"
	"strings"

	"github.com/tabmill/tabmill/config"
	"github.com/tabmill/tabmill/errors"
)

// ReadLines reads up to maxRows non-blank lines from the file at path, in
// order. The first returned line is the header row. maxRows is clamped into
// the hard range [1, 1000] regardless of what configuration produced it.
//
// Returns ErrFileNotFound when the file is missing or unreadable and
// ErrEmptyInput when it contains no non-blank lines; callers map these to
// distinct process outcomes.
func ReadLines(path string, maxRows int) ([]string, error) {
	if maxRows < config.MinMaxRows {
		maxRows = config.MinMaxRows
	}
	if maxRows > config.MaxMaxRows {
		maxRows = config.MaxMaxRows
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFileNotFound, "%s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= maxRows {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrFileNotFound, "%s: read failed: %v", path, err)
	}

	if len(lines) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyInput, "%s", path)
	}
	return lines, nil
}
