package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFileType is returned for extensions other than
	// .xlsx/.xls/.csv.
	ErrUnsupportedFileType = errors.New("unsupported file type: please upload an Excel (.xlsx, .xls) or CSV (.csv) file")

	// ErrHeaderNotFound means no row in the scanned window matched enough
	// expected column names.
	ErrHeaderNotFound = errors.New("could not find a suitable header row: the file does not contain enough matching columns to be processed")

	// ErrEmptyDataset means no data rows survived filtering.
	ErrEmptyDataset = errors.New("no matching rows found in the uploaded file")
)

// ParseError wraps a failure to read the raw file contents.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error reading file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateGroup describes one set of identical rows, with their 1-based row
// numbers as they appear in the original file.
type DuplicateGroup struct {
	Count      int   `json:"count"`
	RowNumbers []int `json:"row_numbers"`
}

// DuplicateRowsError rejects a file that contains identical rows. Carries the
// structured group detail shown to the operator at preview time.
type DuplicateRowsError struct {
	Groups []DuplicateGroup
}

func (e *DuplicateRowsError) Error() string {
	if len(e.Groups) == 0 {
		return "duplicate rows detected in the uploaded file"
	}
	return fmt.Sprintf("duplicate rows detected: total duplicate sets: %d; please fix the file before uploading", len(e.Groups))
}
