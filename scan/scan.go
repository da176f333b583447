// Package scan runs the full pipeline for one input file: load, infer the
// schema from the header row, validate data rows, and build the presentation
// when the run is clean.
package scan

import (
	"time"

	"go.uber.org/zap"

	"github.com/tabmill/tabmill/config"
	"github.com/tabmill/tabmill/loader"
	"github.com/tabmill/tabmill/table"
)

// Processor runs scan pipelines with a fixed configuration
type Processor struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// Result represents the outcome of a single scan run
type Result struct {
	File         string              `json:"file"`
	Delimiter    string              `json:"delimiter"`
	Schema       []string            `json:"schema,omitempty"` // inferred type per column, header order
	Headers      []string            `json:"headers,omitempty"`
	RowsRead     int                 `json:"rows_read"` // data rows, header excluded
	RowsAccepted int                 `json:"rows_accepted"`
	RowsRejected int                 `json:"rows_rejected"`
	Warnings     []string            `json:"warnings,omitempty"`
	Rendered     bool                `json:"rendered"`
	Presentation *table.Presentation `json:"presentation,omitempty"`
	Accepted     [][]string          `json:"-"` // untruncated rows for the mirror
	StartTime    time.Time           `json:"start_time"`
	EndTime      time.Time           `json:"end_time"`
}

// NewProcessor creates a scan processor
func NewProcessor(cfg *config.Config, logger *zap.SugaredLogger) *Processor {
	return &Processor{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes the pipeline over the file at path. Per-row validation
// failures are surfaced as warnings and a suppressed table, not as an error;
// the returned error is reserved for the run-aborting conditions (missing
// file, empty input, invalid header row).
func (p *Processor) Run(path string) (*Result, error) {
	result := &Result{
		File:      path,
		Delimiter: p.cfg.Scan.Delimiter,
		StartTime: time.Now(),
	}

	lines, err := loader.ReadLines(path, p.cfg.Scan.MaxRows)
	if err != nil {
		return nil, err
	}
	p.logger.Debugw("input loaded", "file", path, "lines", len(lines))

	headerFields := table.SplitFields(lines[0], p.cfg.Scan.Delimiter)
	schema, err := table.InferSchema(headerFields)
	if err != nil {
		return nil, err
	}

	result.Schema = make([]string, len(schema))
	for i, t := range schema {
		result.Schema[i] = t.String()
	}
	p.logger.Infow("schema inferred", "columns", len(schema), "types", result.Schema)

	dataRows := lines[1:]
	outcome := table.ValidateRows(schema, dataRows, p.cfg.Scan.Delimiter)

	result.RowsRead = len(dataRows)
	result.RowsAccepted = len(outcome.Accepted)
	result.RowsRejected = len(outcome.Warnings)
	for _, w := range outcome.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
		p.logger.Warnf("%s", w.Message)
	}

	if !outcome.Renderable() {
		p.logger.Infow("table output suppressed",
			"accepted", result.RowsAccepted,
			"rejected", result.RowsRejected)
		result.EndTime = time.Now()
		return result, nil
	}

	presentation, err := table.BuildPresentation(schema, outcome, p.cfg.Display.TruncateWidth)
	if err != nil {
		return nil, err
	}

	result.Headers = presentation.Headers
	result.Presentation = presentation
	result.Accepted = outcome.Accepted
	result.Rendered = true
	result.EndTime = time.Now()
	return result, nil
}
