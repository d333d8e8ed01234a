package schema

import (
	"fmt"
	"strings"
)

// Document types accepted by the upload pipeline. The values match what the
// frontend sends in the tableType form field.
const (
	DocStudentDetails = "Student Details"
	DocFeesSummary    = "Fees Summary Report"
)

// Institution groups sharing one column layout.
const (
	GroupStudentsSDCCEGRKCL = "students_sdcce_grkcl"
	GroupStudentsRMSVVA     = "students_rms_vva"
	GroupFees               = "fees"
)

// ColumnMapping maps one raw source column name, as it appears in an uploaded
// file, to its canonical database field. Several sources may map to the same
// field; declaration order is the coalesce priority.
type ColumnMapping struct {
	Source string
	Field  string
}

// MandatoryField is a canonical field that must be present and non-blank for
// a staged row to be promotable, with the label used in error messages.
type MandatoryField struct {
	Field string
	Label string
}

// Mapping is the schema for one (document type, institution group) scope.
// Immutable after process start.
type Mapping struct {
	Group        string
	Columns      []ColumnMapping
	StagingTable string
	MasterTable  string
}

// SanitizeHeader normalises a header cell for comparison: lowercase, spaces
// and hyphens become underscores, dots, apostrophes, parentheses, slashes and
// question marks are stripped.
func SanitizeHeader(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	for _, drop := range []string{".", "'", "(", ")", "?", "/"} {
		s = strings.ReplaceAll(s, drop, "")
	}
	return s
}

// CanonicalFields returns the unique canonical field names in first-seen
// declaration order.
func (m *Mapping) CanonicalFields() []string {
	seen := make(map[string]bool, len(m.Columns))
	fields := make([]string, 0, len(m.Columns))
	for _, c := range m.Columns {
		if !seen[c.Field] {
			seen[c.Field] = true
			fields = append(fields, c.Field)
		}
	}
	return fields
}

// SourcesFor returns the lowercased source column names mapping to field, in
// declared priority order.
func (m *Mapping) SourcesFor(field string) []string {
	var sources []string
	for _, c := range m.Columns {
		if c.Field == field {
			sources = append(sources, strings.ToLower(c.Source))
		}
	}
	return sources
}

// SanitizedSources returns the set of sanitized source column names, used by
// the header locator to score candidate rows.
func (m *Mapping) SanitizedSources() map[string]bool {
	set := make(map[string]bool, len(m.Columns))
	for _, c := range m.Columns {
		set[SanitizeHeader(c.Source)] = true
	}
	return set
}

// SourceHeaders returns one raw source column name per canonical field, first
// declared wins, so generated templates carry no duplicate columns.
func (m *Mapping) SourceHeaders() []string {
	seen := make(map[string]bool, len(m.Columns))
	headers := make([]string, 0, len(m.Columns))
	for _, c := range m.Columns {
		if !seen[c.Field] {
			seen[c.Field] = true
			headers = append(headers, c.Source)
		}
	}
	return headers
}

// ForUpload resolves the mapping scope for a document type and institution
// code. Returns an error for unknown combinations, mirroring the upload form
// validation.
func ForUpload(docType, institutionCode string) (*Mapping, error) {
	switch docType {
	case DocStudentDetails:
		switch institutionCode {
		case "SDCCE", "GRKCL":
			return studentsSDCCEGRKCL, nil
		case "RMS", "VVA":
			return studentsRMSVVA, nil
		default:
			return nil, fmt.Errorf("invalid institution code %q for student upload", institutionCode)
		}
	case DocFeesSummary:
		switch institutionCode {
		case "SDCCE", "RMS", "VVA":
			return fees, nil
		default:
			return nil, fmt.Errorf("invalid institution code %q for fees upload", institutionCode)
		}
	default:
		return nil, fmt.Errorf("invalid file type %q", docType)
	}
}

// DateDisplayFields are the canonical fields rendered as DD-MM-YYYY in
// preview responses, with N/A for absent values.
var DateDisplayFields = map[string]bool{
	"admission_date":  true,
	"date_of_birth":   true,
	"due_date":        true,
	"fees_paid_date":  true,
	"settlement_date": true,
	"refund_date":     true,
}
