package promotion

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/database"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/validation"
)

// ErrMetadataNotFound means the upload id has no batch metadata row, so there
// is nothing to promote.
var ErrMetadataNotFound = errors.New("upload metadata not found")

// RowError is one staged row that failed validation, with every message the
// validator produced for it. RowNumber counts 1-based within the staged batch;
// header and filtered rows are already gone by the time rows reach staging.
type RowError struct {
	RowNumber int               `json:"row_number"`
	Record    map[string]string `json:"record"`
	Messages  []string          `json:"messages"`
}

// Result summarises one promotion attempt. Promotion is all-or-nothing: if
// any row fails, PromotedCount is zero and the staging rows are left in place
// for correction and re-upload.
type Result struct {
	Total         int        `json:"total_records"`
	PromotedCount int        `json:"promoted_count"`
	FailedCount   int        `json:"failed_count"`
	Errors        []RowError `json:"errors,omitempty"`
	Message       string     `json:"message"`
}

// ProcessUpload validates every staged row of one upload batch and, only when
// all of them pass, writes them to the master table inside a single
// transaction. Supersession deactivations run before each insert. Staging rows
// are deleted only after a successful commit.
func ProcessUpload(db *sql.DB, uploadID int64) (*Result, error) {
	meta, err := database.GetUploadMetadata(db, uploadID)
	if err == sql.ErrNoRows {
		return nil, ErrMetadataNotFound
	}
	if err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{
		"upload_id":   uploadID,
		"institution": meta.InstitutionCode,
		"table_type":  meta.TableType,
	})

	mapping, err := schema.ForUpload(meta.TableType, meta.InstitutionCode)
	if err != nil {
		return nil, err
	}
	validator, err := validation.For(meta.TableType, meta.InstitutionCode)
	if err != nil {
		return nil, err
	}

	staged, err := fetchStagedRows(db, mapping.Group, uploadID)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		log.Info("no staged rows found, nothing to process")
		return &Result{Message: "No records found to process."}, nil
	}

	vc := validation.Context{
		InstitutionCode: meta.InstitutionCode,
		UploadedFileID:  uploadID,
		AcademicYear:    meta.AcademicYear,
		AcademicQuarter: meta.AcademicQuarter,
		MasterTable:     mapping.MasterTable,
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var writes []validation.Statement
	var failures []RowError
	for i, row := range staged {
		stmts, msgs, err := validator.Validate(tx, row, vc)
		if err != nil {
			// A store failure is not a data problem with the row; abort the
			// batch instead of reporting it as a correctable row error.
			log.WithError(err).WithField("row", i+1).Error("validation aborted by store failure, rolling back")
			return nil, err
		}
		if len(msgs) > 0 {
			failures = append(failures, RowError{
				RowNumber: i + 1,
				Record:    row.Values(),
				Messages:  msgs,
			})
			continue
		}
		writes = append(writes, stmts...)
	}

	if len(failures) > 0 {
		log.WithField("failed_count", len(failures)).Warn("validation failed, no records promoted")
		return &Result{
			Total:       len(staged),
			FailedCount: len(failures),
			Errors:      failures,
			Message:     "Validation failed. No records were processed.",
		}, nil
	}

	for _, w := range writes {
		if _, err := tx.Exec(w.Query, w.Args...); err != nil {
			log.WithError(err).Error("write phase failed, rolling back")
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	deleted, err := database.DeleteStagedRows(db, mapping.StagingTable, uploadID)
	if err != nil {
		// The promotion itself committed; a cleanup failure must not be
		// reported as a failed upload.
		log.WithError(err).Error("staging cleanup failed after successful promotion")
	} else {
		log.WithField("deleted", deleted).Info("staging rows cleaned up")
	}

	log.WithField("promoted", len(staged)).Info("all records processed successfully")
	return &Result{
		Total:         len(staged),
		PromotedCount: len(staged),
		Message:       "All records processed successfully.",
	}, nil
}

// fetchStagedRows loads the typed staging records for one mapping group.
func fetchStagedRows(db *sql.DB, group string, uploadID int64) ([]validation.StagedRow, error) {
	var staged []validation.StagedRow
	switch group {
	case schema.GroupStudentsSDCCEGRKCL:
		records, err := database.FetchStagedStudentsSDCCE(db, uploadID)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			staged = append(staged, r)
		}
	case schema.GroupStudentsRMSVVA:
		records, err := database.FetchStagedStudentsRMS(db, uploadID)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			staged = append(staged, r)
		}
	case schema.GroupFees:
		records, err := database.FetchStagedFees(db, uploadID)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			staged = append(staged, r)
		}
	default:
		return nil, errors.New("unknown mapping group: " + group)
	}
	return staged, nil
}
