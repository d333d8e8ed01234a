package validation

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

// RowQuerier is the read handle a validator gets on the permanent store for
// duplicate and history lookups. Both *sql.DB and *sql.Tx satisfy it.
type RowQuerier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Statement is one prepared write. Validators return the full write set for a
// row (supersession deactivations first, then the insert); nothing is
// executed until every row in the batch has passed.
type Statement struct {
	Query string
	Args  []any
}

// Context carries the batch-scoped parameters every validator needs.
type Context struct {
	InstitutionCode string
	UploadedFileID  int64
	AcademicYear    string
	AcademicQuarter string
	MasterTable     string
}

// StagedRow is a typed staging record. Values exposes it as canonical
// field -> raw value for mandatory checks and error payloads.
type StagedRow interface {
	Values() map[string]string
}

// Validator normalizes one staged row. On success it returns prepared
// statements ready for the all-or-nothing write phase; data problems come back
// as a non-empty ordered list of human-readable messages, with all field
// checks run to completion so the caller sees every problem in one pass. The
// error return is reserved for store failures (lock, duplicate or history
// lookup) — those abort the whole batch instead of being pinned on the row.
type Validator interface {
	Validate(q RowQuerier, row StagedRow, vc Context) ([]Statement, []string, error)
}

// For resolves the validator variant for a document type and institution.
func For(docType, institutionCode string) (Validator, error) {
	switch docType {
	case schema.DocStudentDetails:
		switch institutionCode {
		case "SDCCE", "GRKCL":
			return studentSDCCEValidator{}, nil
		case "RMS", "VVA":
			return studentRMSValidator{}, nil
		}
	case schema.DocFeesSummary:
		switch institutionCode {
		case "SDCCE", "RMS", "VVA":
			return feesValidator{}, nil
		}
	}
	return nil, fmt.Errorf("no validation rules found for document type %q and institution code %q", docType, institutionCode)
}

// acquireNaturalKeyLock serialises concurrent promotions touching the same
// natural key. Taken inside the promotion transaction before the duplicate
// check and held until commit/rollback, closing the check-then-write race.
func acquireNaturalKeyLock(q RowQuerier, keyParts ...string) error {
	key := strings.Join(keyParts, "|")
	_, err := q.Exec("SELECT pg_advisory_xact_lock(hashtext($1))", key)
	return err
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.TrimSpace(s)
}
