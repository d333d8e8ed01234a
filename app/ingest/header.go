package ingest

import (
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

const (
	// headerScanWindow is how many leading rows are examined for the header.
	headerScanWindow = 20
	// headerBlankPrefix: a row whose first N cells are all empty is treated
	// as a banner/blank line and skipped.
	headerBlankPrefix = 10
	// headerMinMatches is the minimum number of expected column names a row
	// must contain to qualify as the header.
	headerMinMatches = 5
)

// LocateHeaderRow scans the first rows of a raw grid and returns the index of
// the first row whose sanitized cells match at least headerMinMatches of the
// mapping's expected source columns. Returns ErrHeaderNotFound when no row in
// the window qualifies.
func LocateHeaderRow(grid [][]string, m *schema.Mapping) (int, error) {
	expected := m.SanitizedSources()

	limit := len(grid)
	if limit > headerScanWindow {
		limit = headerScanWindow
	}

	for i := 0; i < limit; i++ {
		row := grid[i]

		blankPrefix := true
		for j := 0; j < headerBlankPrefix && j < len(row); j++ {
			if !isBlank(row[j]) {
				blankPrefix = false
				break
			}
		}
		if blankPrefix {
			continue
		}

		seen := make(map[string]bool)
		matches := 0
		for _, cell := range row {
			if isBlank(cell) {
				continue
			}
			key := schema.SanitizeHeader(cell)
			if expected[key] && !seen[key] {
				seen[key] = true
				matches++
			}
		}
		if matches >= headerMinMatches {
			return i, nil
		}
	}
	return 0, ErrHeaderNotFound
}
