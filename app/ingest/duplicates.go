package ingest

import "strings"

// FindDuplicateGroups scans the raw parsed table (before any filtering) for
// rows identical across every column and groups them. Row numbers are 1-based
// positions in the original file, offset past the header row, so the operator
// can locate them in the source spreadsheet.
func FindDuplicateGroups(t *Table, headerRowIndex int) []DuplicateGroup {
	byKey := make(map[string][]int)
	var order []string

	for i, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		// +2: one for the header row itself, one for 1-based numbering.
		byKey[key] = append(byKey[key], i+headerRowIndex+2)
	}

	var groups []DuplicateGroup
	for _, key := range order {
		rows := byKey[key]
		if len(rows) > 1 {
			groups = append(groups, DuplicateGroup{Count: len(rows), RowNumbers: rows})
		}
	}
	return groups
}

// HasDuplicateRows is the coarse commit-time safeguard: true when any row is
// identical to any other.
func HasDuplicateRows(t *Table) bool {
	seen := make(map[string]bool, len(t.Rows))
	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}
