package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
)

var (
	rmsBatchRe = regexp.MustCompile(`(?i)^(\w+)-(\w+)\s*-\s*(\d{4}-\d{2})\s*([A-Z])$`)
	vvaBatchRe = regexp.MustCompile(`(?i)^CL-(\d+)\s*-\s*([A-Z])\s*(\d{2}-\d{2})$`)
)

var romanClassMap = map[string]string{"IX": "9", "X": "10", "XI": "11", "XII": "12"}

var rmsStreamMap = map[string]string{"COM": "Commerce", "SCI": "Science"}

// batchDetails is what a parsed batch code yields.
type batchDetails struct {
	class     string
	section   string
	stream    string
	batchYear string
}

// parseBatchRMS parses codes like "XII-COM - 2025-26 A": Roman class, stream
// abbreviation, short academic year and section.
func parseBatchRMS(raw string) (batchDetails, []string) {
	var d batchDetails
	m := rmsBatchRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return d, []string{fmt.Sprintf("Invalid RMS batch format: '%s'. Expected 'Class-Stream - YYYY-YY S'.", raw)}
	}
	rawClass, rawStream, rawYear, section := m[1], m[2], m[3], m[4]

	var errs []string
	parts := strings.SplitN(rawYear, "-", 2)
	century := parts[0][:2]
	d.batchYear = parts[0] + "-" + century + parts[1]
	d.section = strings.ToUpper(section)

	d.class = romanClassMap[strings.ToUpper(rawClass)]
	if d.class == "" {
		errs = append(errs, fmt.Sprintf("Invalid class value '%s' in batch '%s'.", rawClass, strings.TrimSpace(raw)))
	}
	d.stream = rmsStreamMap[strings.ToUpper(rawStream)]
	if d.stream == "" {
		errs = append(errs, fmt.Sprintf("Unknown stream '%s' in batch '%s'.", rawStream, strings.TrimSpace(raw)))
	}
	return d, errs
}

// parseBatchVVA parses codes like "CL-12 - B 25-26"; the stream is derived
// from the class band per the VVA prospectus.
func parseBatchVVA(raw string) (batchDetails, []string) {
	var d batchDetails
	m := vvaBatchRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return d, []string{fmt.Sprintf("Invalid VVA batch format: '%s'. Expected 'CL-Class - Section YY-YY'.", raw)}
	}
	d.class, d.section = m[1], strings.ToUpper(m[2])

	parts := strings.SplitN(m[3], "-", 2)
	d.batchYear = "20" + parts[0] + "-20" + parts[1]

	if classNum, err := strconv.Atoi(d.class); err == nil {
		switch {
		case classNum >= 1 && classNum <= 5:
			d.stream = "Primary"
		case classNum >= 6 && classNum <= 8:
			d.stream = "Middle School"
		case classNum >= 9 && classNum <= 10:
			d.stream = "Secondary"
		case classNum >= 11 && classNum <= 12:
			d.stream = "Senior Secondary"
		}
	}
	return d, nil
}

// studentRMSValidator handles Student Details rows for RMS and VVA, which
// share the register layout but differ in batch-code grammar and reference
// id derivation.
type studentRMSValidator struct{}

func (studentRMSValidator) Validate(q RowQuerier, row StagedRow, vc Context) ([]Statement, []string, error) {
	r, ok := row.(*models.StagedStudentRMS)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected staged row type %T for RMS/VVA student validation", row)
	}

	var errs []string

	admissionNo := strings.TrimSpace(r.AdmissionNo)
	if admissionNo == "" {
		errs = append(errs, "Missing mandatory field: Admission Number")
	}

	var admissionDate string
	if strings.TrimSpace(r.AdmissionDate) == "" {
		errs = append(errs, "Missing mandatory field: Admission Date")
	} else if parsed, ok := parseFlexibleDate(r.AdmissionDate); !ok {
		errs = append(errs, fmt.Sprintf("Invalid Admission Date format: '%s'. Expected DD/MM/YYYY, DD-MM-YYYY, or YYYY-MM-DD.", strings.TrimSpace(r.AdmissionDate)))
	} else {
		admissionDate = parsed.Format("2006-01-02")
	}

	var dateOfBirth string
	if strings.TrimSpace(r.DateOfBirth) == "" {
		errs = append(errs, "Missing mandatory field: Date of Birth")
	} else if parsed, ok := parseFlexibleDate(r.DateOfBirth); !ok {
		errs = append(errs, fmt.Sprintf("Invalid Date of Birth format: '%s'. Expected DD/MM/YYYY, DD-MM-YYYY, or YYYY-MM-DD.", strings.TrimSpace(r.DateOfBirth)))
	} else if parsed.After(time.Now()) {
		errs = append(errs, fmt.Sprintf("Invalid Date of Birth: '%s' cannot be in the future.", strings.TrimSpace(r.DateOfBirth)))
	} else if parsed.Year() < 1950 {
		errs = append(errs, fmt.Sprintf("Invalid Date of Birth: '%s'. Year seems unusually early.", strings.TrimSpace(r.DateOfBirth)))
	} else {
		dateOfBirth = parsed.Format("2006-01-02")
	}

	email, msg := normalizeEmail(r.Email)
	if msg != "" {
		errs = append(errs, msg)
	}

	// The stable reference id differs per institution: RMS keeps a general
	// register number, VVA reuses the admission number.
	var referenceID string
	if vc.InstitutionCode == "RMS" {
		referenceID = strings.TrimSpace(r.GenRegNo)
	} else {
		referenceID = admissionNo
	}

	var batch batchDetails
	if strings.TrimSpace(r.Batch) == "" {
		errs = append(errs, "Missing mandatory field: Batch")
	} else {
		var batchErrs []string
		if vc.InstitutionCode == "RMS" {
			batch, batchErrs = parseBatchRMS(r.Batch)
		} else {
			batch, batchErrs = parseBatchVVA(r.Batch)
		}
		errs = append(errs, batchErrs...)
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	if err := acquireNaturalKeyLock(q, vc.InstitutionCode, "admission_no", admissionNo); err != nil {
		return nil, nil, fmt.Errorf("acquire natural key lock: %w", err)
	}

	var one int
	err := q.QueryRow(
		"SELECT 1 FROM "+vc.MasterTable+" WHERE institution_code = $1 AND admission_no = $2 AND is_active = TRUE",
		vc.InstitutionCode, admissionNo,
	).Scan(&one)
	if err == nil {
		return nil, []string{fmt.Sprintf("Error: An active record with Admission No '%s' already exists for this institution.", admissionNo)}, nil
	}
	if !isNoRows(err) {
		return nil, nil, fmt.Errorf("duplicate check: %w", err)
	}

	studentName := strings.TrimSpace(r.StudentName)

	statements, err := deactivateStatements(q, vc.MasterTable, vc.InstitutionCode, studentName, dateOfBirth)
	if err != nil {
		return nil, nil, fmt.Errorf("history lookup: %w", err)
	}

	insert := Statement{
		Query: `INSERT INTO ` + vc.MasterTable + ` (
			student_reference_id, uploaded_file_id, institution_code, admission_no, admission_date,
			student_name, email_address, class, section, stream, batch_year, date_of_birth, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,TRUE)`,
		Args: []any{
			nullable(referenceID), vc.UploadedFileID, vc.InstitutionCode, admissionNo, admissionDate,
			nullable(studentName), nullable(email), nullable(batch.class), nullable(batch.section),
			nullable(batch.stream), nullable(batch.batchYear), dateOfBirth,
		},
	}

	return append(statements, insert), nil, nil
}
