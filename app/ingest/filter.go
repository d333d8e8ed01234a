package ingest

// MinPopulatedFields is the minimum number of non-empty canonical fields a
// row needs to count as data rather than structural noise.
const MinPopulatedFields = 7

// footerMaxPopulated: a trailing row with this many values or fewer is
// assumed to be a totals/footer line.
const footerMaxPopulated = 2

// DropSparseRows removes rows with fewer than MinPopulatedFields non-empty
// cells.
func DropSparseRows(t *Table) *Table {
	kept := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if populatedCount(row) >= MinPopulatedFields {
			kept = append(kept, row)
		}
	}
	return &Table{Headers: t.Headers, Rows: kept}
}

// DropEmptyColumns removes canonical columns that carry no value in any row.
// A file need not supply every possible canonical field.
func DropEmptyColumns(t *Table) *Table {
	if len(t.Rows) == 0 {
		return t
	}

	var keep []int
	for col := range t.Headers {
		for _, row := range t.Rows {
			if !isBlank(row[col]) {
				keep = append(keep, col)
				break
			}
		}
	}

	headers := make([]string, len(keep))
	for i, col := range keep {
		headers[i] = t.Headers[col]
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(keep))
		for j, col := range keep {
			cells[j] = row[col]
		}
		rows[i] = cells
	}
	return &Table{Headers: headers, Rows: rows}
}

// DropFooterRow removes a single trailing row that looks like a totals line.
// Runs once, only on the commit path, never at preview.
func DropFooterRow(t *Table) *Table {
	n := len(t.Rows)
	if n == 0 {
		return t
	}
	if populatedCount(t.Rows[n-1]) <= footerMaxPopulated {
		return &Table{Headers: t.Headers, Rows: t.Rows[:n-1]}
	}
	return t
}
