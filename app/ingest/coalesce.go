package ingest

import (
	"strings"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

// Coalesce reshapes a parsed table onto the canonical field set of a mapping.
// Source columns are matched case-insensitively. When several source columns
// feed one canonical field, each row takes the first non-empty value in the
// mapping's declared priority order; later sources only fill gaps left by
// earlier ones. Canonical fields with no source column present come out
// entirely empty. Row order is preserved.
func Coalesce(t *Table, m *schema.Mapping) *Table {
	lowerIndex := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		lowerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	fields := m.CanonicalFields()
	rows := make([][]string, len(t.Rows))
	for i := range rows {
		rows[i] = make([]string, len(fields))
	}

	for col, field := range fields {
		var present []int
		for _, source := range m.SourcesFor(field) {
			if idx, ok := lowerIndex[source]; ok {
				present = append(present, idx)
			}
		}
		if len(present) == 0 {
			continue
		}
		for i, row := range t.Rows {
			for _, idx := range present {
				if !isBlank(row[idx]) {
					rows[i][col] = strings.TrimSpace(row[idx])
					break
				}
			}
		}
	}

	return &Table{Headers: fields, Rows: rows}
}
