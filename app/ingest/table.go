package ingest

import "strings"

// Table is an in-memory tabular dataset. Every row has exactly len(Headers)
// cells; absent values are empty strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable pads or truncates each row to the header width so downstream code
// can index cells without bounds checks.
func NewTable(headers []string, rows [][]string) *Table {
	width := len(headers)
	normalized := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			cells[j] = row[j]
		}
		normalized[i] = cells
	}
	return &Table{Headers: headers, Rows: normalized}
}

func isBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

// populatedCount returns how many cells in the row are non-blank.
func populatedCount(row []string) int {
	n := 0
	for _, cell := range row {
		if !isBlank(cell) {
			n++
		}
	}
	return n
}
