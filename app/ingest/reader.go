package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

// ReadFile parses an uploaded spreadsheet or CSV, locates the true header row
// inside it and returns the data as a Table along with the header row index.
// The header index is needed later to report duplicate rows by their original
// file positions.
func ReadFile(data []byte, filename string, m *schema.Mapping) (*Table, int, error) {
	grid, err := parseGrid(data, filename)
	if err != nil {
		return nil, 0, err
	}

	headerRow, err := LocateHeaderRow(grid, m)
	if err != nil {
		return nil, 0, err
	}

	headers := make([]string, len(grid[headerRow]))
	for i, h := range grid[headerRow] {
		headers[i] = strings.TrimSpace(h)
	}

	return NewTable(headers, grid[headerRow+1:]), headerRow, nil
}

func parseGrid(data []byte, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		return parseExcel(data)
	case ".csv":
		return parseCSV(data)
	default:
		return nil, ErrUnsupportedFileType
	}
}

func parseExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Err: io.ErrUnexpectedEOF}
	}

	// Data always lives on the first sheet, matching the templates we hand out.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return rows, nil
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return rows, nil
}
