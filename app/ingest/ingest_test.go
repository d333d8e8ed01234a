package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

func feesMapping(t *testing.T) *schema.Mapping {
	t.Helper()
	m, err := schema.ForUpload(schema.DocFeesSummary, "SDCCE")
	require.NoError(t, err)
	return m
}

func TestLocateHeaderRowSkipsBannerRows(t *testing.T) {
	m := feesMapping(t)
	grid := [][]string{
		{"Fees Summary Report"},
		{"", "", "", "", "", "", "", "", "", "", "Generated 01/04/2025"},
		{"Institute", "Student", "Standard/Course", "Branch", "Fees ID", "Fee Head", "Due Date"},
		{"SDCCE", "Anita Naik", "B.Com", "Main", "101", "Installment I", "15/07/2025"},
	}

	idx, err := LocateHeaderRow(grid, m)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestLocateHeaderRowNotFound(t *testing.T) {
	m := feesMapping(t)
	grid := [][]string{
		{"one", "two", "three"},
		{"a", "b", "c"},
	}
	_, err := LocateHeaderRow(grid, m)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestCoalescePrefersEarlierSource(t *testing.T) {
	m := &schema.Mapping{Columns: []schema.ColumnMapping{
		{Source: "Email", Field: "email"},
		{Source: "E-Mail", Field: "email"},
		{Source: "Name", Field: "name"},
	}}
	table := NewTable(
		[]string{"E-Mail", "Name", "Email"},
		[][]string{
			{"fallback@example.com", "Anita", "primary@example.com"},
			{"only@example.com", "Ravi", ""},
			{"", "Maya", ""},
		},
	)

	out := Coalesce(table, m)
	require.Equal(t, []string{"email", "name"}, out.Headers)
	assert.Equal(t, []string{"primary@example.com", "Anita"}, out.Rows[0])
	assert.Equal(t, []string{"only@example.com", "Ravi"}, out.Rows[1])
	assert.Equal(t, []string{"", "Maya"}, out.Rows[2])
}

func TestCoalesceMissingSourceYieldsEmptyColumn(t *testing.T) {
	m := &schema.Mapping{Columns: []schema.ColumnMapping{
		{Source: "Name", Field: "name"},
		{Source: "Mobile", Field: "mobile"},
	}}
	table := NewTable([]string{"Name"}, [][]string{{"Anita"}})

	out := Coalesce(table, m)
	assert.Equal(t, []string{"Anita", ""}, out.Rows[0])
}

func TestFindDuplicateGroups(t *testing.T) {
	table := NewTable(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"2", "y"},
			{"1", "x"},
			{"3", "z"},
		},
	)

	groups := FindDuplicateGroups(table, 2)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count)
	// header at index 2, so data row i maps to file row i+4.
	assert.Equal(t, []int{4, 6}, groups[0].RowNumbers)
}

func TestHasDuplicateRows(t *testing.T) {
	clean := NewTable([]string{"a"}, [][]string{{"1"}, {"2"}})
	assert.False(t, HasDuplicateRows(clean))

	dirty := NewTable([]string{"a"}, [][]string{{"1"}, {"1"}})
	assert.True(t, HasDuplicateRows(dirty))
}

func TestDropSparseRows(t *testing.T) {
	full := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	sparse := []string{"a", "", "", "", "", "", "", ""}
	table := NewTable(make([]string, 8), [][]string{full, sparse})

	out := DropSparseRows(table)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, full, out.Rows[0])
}

func TestDropEmptyColumns(t *testing.T) {
	table := NewTable(
		[]string{"name", "mobile", "email"},
		[][]string{
			{"Anita", "", "a@example.com"},
			{"Ravi", "", ""},
		},
	)

	out := DropEmptyColumns(table)
	assert.Equal(t, []string{"name", "email"}, out.Headers)
	assert.Equal(t, []string{"Anita", "a@example.com"}, out.Rows[0])
}

func TestDropFooterRow(t *testing.T) {
	table := NewTable(
		[]string{"a", "b", "c"},
		[][]string{
			{"1", "2", "3"},
			{"Total", "99", ""},
		},
	)
	out := DropFooterRow(table)
	require.Len(t, out.Rows, 1)

	// A populated trailing row is real data and stays.
	table2 := NewTable(
		[]string{"a", "b", "c"},
		[][]string{
			{"1", "2", "3"},
			{"4", "5", "6"},
		},
	)
	assert.Len(t, DropFooterRow(table2).Rows, 2)
}

func TestNewTablePadsRaggedRows(t *testing.T) {
	table := NewTable([]string{"a", "b", "c"}, [][]string{{"1"}, {"1", "2", "3", "4"}})
	assert.Equal(t, []string{"1", "", ""}, table.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[1])
}
