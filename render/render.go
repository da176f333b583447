// Package render owns the output boundary of a scan run: console table
// rendering, the overall table width ceiling, and the persisted mirror copy.
// The pipeline core never enforces aggregate row width; that contract lives
// here.
package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/tabmill/tabmill/logger"
	"github.com/tabmill/tabmill/table"
)

// columnGap approximates pterm's default column separator width.
const columnGap = 3

// Table renders the presentation as a boxed console table. Rows wider than
// maxWidth display columns are still rendered (the terminal wraps them); the
// overflow is noted at debug level.
func Table(p *table.Presentation, maxWidth int) error {
	if width := widestLine(p); maxWidth > 0 && width > maxWidth {
		logger.Debugf("table width %d exceeds ceiling %d, relying on terminal wrapping", width, maxWidth)
	}

	data := make(pterm.TableData, 0, len(p.Rows)+1)
	data = append(data, p.Headers)
	for _, row := range p.Rows {
		data = append(data, row)
	}

	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

// widestLine returns the display width of the broadest rendered line: the
// widest cell of each column plus the separator gaps between columns.
func widestLine(p *table.Presentation) int {
	widths := make([]int, len(p.Headers))
	for i, h := range p.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range p.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += columnGap * (len(widths) - 1)
	}
	return total
}
