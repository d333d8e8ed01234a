package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

// divisionMap folds semester-pair labels into year-of-study labels; anything
// unmapped falls back to a title-cased copy (free-text division rule).
var divisionMap = map[string]string{
	"semester i and ii":   "1st Year",
	"semester iii and iv": "2nd Year",
	"semester v and vi":   "3rd Year",
}

var romanInstallments = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
}

var (
	romanInstallmentRe   = regexp.MustCompile(`\b(i|ii|iii|iv|v|vi|vii|viii|ix|x)\b`)
	numericInstallmentRe = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)
)

// standardizeFeeHead derives the installment label from free text: semester
// or full-fee wording wins, then Roman numerals, then ordinal numbers, then a
// title-cased copy as the last resort.
func standardizeFeeHead(raw string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(raw), " "))

	if strings.Contains(normalized, "semester") || strings.Contains(normalized, "full") {
		return "Full Fees"
	}
	if m := romanInstallmentRe.FindStringSubmatch(normalized); m != nil {
		if n, ok := romanInstallments[m[1]]; ok {
			return fmt.Sprintf("%d%s installment", n, ordinalSuffix(n))
		}
	}
	if m := numericInstallmentRe.FindStringSubmatch(normalized); m != nil {
		n, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d%s installment", n, ordinalSuffix(n))
	}
	return titleWords(raw)
}

// vvaCourseForBranch validates the course code under the two-tier VVA branch
// classification: pre-primary branches take named stages, every other branch
// takes a numeric grade 1..12.
func vvaCourseForBranch(course string, prePrimary bool) (string, string) {
	normalized := strings.ToUpper(strings.TrimSpace(course))
	if prePrimary {
		prePrimaryMap := map[string]string{
			"NURSERY":   "Nursery",
			"JUNIOR KG": "Junior KG",
			"SENIOR KG": "Senior KG",
		}
		if mapped, ok := prePrimaryMap[normalized]; ok {
			return mapped, ""
		}
		return "", fmt.Sprintf("Invalid course value: '%s'. For a 'Pre Primary' branch, course must be 'Nursery', 'Junior KG', or 'Senior KG'.", strings.TrimSpace(course))
	}
	grade, err := strconv.Atoi(normalized)
	if err != nil || grade < 1 || grade > 12 {
		return "", fmt.Sprintf("Invalid course value: '%s'. For a 'Primary/Secondary' branch, course must be a number from 1 to 12.", strings.TrimSpace(course))
	}
	return strconv.Itoa(grade), ""
}

// feesValidator handles Fees Summary Report rows. One staging layout serves
// all institutions; the rules branch per institution code.
type feesValidator struct{}

func (v feesValidator) Validate(q RowQuerier, row StagedRow, vc Context) ([]Statement, []string, error) {
	r, ok := row.(*models.StagedFee)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected staged row type %T for fees validation", row)
	}

	switch vc.InstitutionCode {
	case "SDCCE":
		return v.validateSDCCE(q, r, vc)
	case "RMS":
		return v.validateRMS(q, r, vc)
	case "VVA":
		return v.validateVVA(q, r, vc)
	default:
		return nil, []string{fmt.Sprintf("No specific fees validation rules found for institution code: %s.", vc.InstitutionCode)}, nil
	}
}

func (feesValidator) validateSDCCE(q RowQuerier, r *models.StagedFee, vc Context) ([]Statement, []string, error) {
	var errs []string
	values := r.Values()

	for _, mf := range schema.MandatoryFields(schema.DocFeesSummary, "SDCCE") {
		if strings.TrimSpace(values[mf.Field]) == "" {
			errs = append(errs, fmt.Sprintf("%s is a mandatory field for SDCCE.", mf.Label))
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	var studentName string
	if feeNameBadRe.MatchString(r.Student) {
		errs = append(errs, fmt.Sprintf("Invalid student name: %s. It must contain only characters, spaces, hyphens, or apostrophes.", r.Student))
	} else {
		studentName = titleWords(r.Student)
	}

	var feesID any
	if strings.TrimSpace(r.FeesID) == "" {
		errs = append(errs, "Fees Id is a mandatory field.")
	} else if id, err := strconv.ParseFloat(strings.TrimSpace(r.FeesID), 64); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid Fees Id: '%s'. Must be a valid integer.", strings.TrimSpace(r.FeesID)))
	} else if int64(id) <= 0 {
		errs = append(errs, fmt.Sprintf("Invalid Fees Id: '%s'. Must be a positive integer.", strings.TrimSpace(r.FeesID)))
	} else {
		feesID = int64(id)
	}

	if strings.TrimSpace(r.FeesScheduleID) != "" {
		if id, err := strconv.ParseFloat(strings.TrimSpace(r.FeesScheduleID), 64); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid Fees Schedule Id: '%s'. Must be a valid integer.", strings.TrimSpace(r.FeesScheduleID)))
		} else if int64(id) <= 0 {
			errs = append(errs, fmt.Sprintf("Invalid Fees Schedule Id: '%s'. Must be a positive integer.", strings.TrimSpace(r.FeesScheduleID)))
		}
	}

	var email any
	if trimmed := strings.TrimSpace(r.EmailAddress); trimmed != "" {
		if feesEmailRe.MatchString(trimmed) {
			email = strings.ToLower(trimmed)
		} else {
			errs = append(errs, fmt.Sprintf("Invalid email format: '%s'.", trimmed))
		}
	}

	mobile, msg := normalizePhone(r.MobileNumber, "Mobile Number")
	if msg != "" {
		errs = append(errs, msg)
	}

	var division string
	if trimmed := strings.TrimSpace(r.Division); trimmed != "" {
		normalized := strings.ToLower(strings.Join(strings.Fields(trimmed), " "))
		if mapped, ok := divisionMap[normalized]; ok {
			division = mapped
		} else {
			division = titleWords(trimmed)
		}
	}

	var feeHead string
	if strings.TrimSpace(r.FeeHead) == "" {
		errs = append(errs, "Fee Head is a mandatory field.")
	} else {
		feeHead = standardizeFeeHead(r.FeeHead)
	}

	var dueDate string
	if strings.TrimSpace(r.DueDate) == "" {
		errs = append(errs, "Due Date is a mandatory field.")
	} else if parsed, err := parseStrictDate(r.DueDate, "02/01/2006"); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid Due Date: '%s'. Expected format is DD/MM/YYYY.", strings.TrimSpace(r.DueDate)))
	} else {
		dueDate = parsed
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	if err := acquireNaturalKeyLock(q, vc.InstitutionCode, "registration", r.RegistrationCode, r.FeesID); err != nil {
		return nil, nil, fmt.Errorf("acquire natural key lock: %w", err)
	}

	var one int
	err := q.QueryRow(
		"SELECT 1 FROM "+vc.MasterTable+" WHERE institution_code = $1 AND registration_code = $2 AND fees_id = $3",
		vc.InstitutionCode, strings.TrimSpace(r.RegistrationCode), feesID,
	).Scan(&one)
	if err == nil {
		return nil, []string{"Error: A record with this exact data already exists in the master table for SDCCE."}, nil
	}
	if !isNoRows(err) {
		return nil, nil, fmt.Errorf("duplicate check: %w", err)
	}

	insert := Statement{
		Query: `INSERT INTO ` + vc.MasterTable + ` (
			uploaded_file_id, institution_code, institute_name, student_name, course_name, fees_id,
			email_address, mobile_no, division_name, registration_code, installment_no, due_date,
			academic_year, academic_quarter
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		Args: []any{
			vc.UploadedFileID, vc.InstitutionCode, nullable(r.Institute), studentName,
			strings.TrimSpace(r.StandardCourse), feesID, email, nullable(mobile),
			nullable(division), nullable(r.RegistrationCode), feeHead, dueDate,
			vc.AcademicYear, vc.AcademicQuarter,
		},
	}
	return []Statement{insert}, nil, nil
}

func (feesValidator) validateRMS(q RowQuerier, r *models.StagedFee, vc Context) ([]Statement, []string, error) {
	var errs []string
	values := r.Values()

	for _, mf := range schema.MandatoryFields(schema.DocFeesSummary, "RMS") {
		if strings.TrimSpace(values[mf.Field]) == "" {
			errs = append(errs, fmt.Sprintf("%s is a mandatory field for RMS.", mf.Label))
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	amount, err := decimal.NewFromString(stripNumericNoise(r.FeesAmount))
	if err != nil {
		errs = append(errs, fmt.Sprintf("Invalid Fees Amount: '%s'. Must be a numeric value.", strings.TrimSpace(r.FeesAmount)))
	} else if amount.IsNegative() {
		errs = append(errs, fmt.Sprintf("Invalid Fees Amount: '%s'. Cannot be negative.", strings.TrimSpace(r.FeesAmount)))
	}

	var transactionDate string
	if parsed, ok := parseFlexibleDate(r.TransactionDate); !ok {
		errs = append(errs, fmt.Sprintf("Invalid Transaction Date format: '%s'. Expected DD/MM/YYYY, DD-MM-YYYY, or YYYY-MM-DD.", strings.TrimSpace(r.TransactionDate)))
	} else {
		transactionDate = parsed.Format("2006-01-02")
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	studentID := strings.TrimSpace(r.StudentID)
	if err := acquireNaturalKeyLock(q, vc.InstitutionCode, "student", studentID, amount.String()); err != nil {
		return nil, nil, fmt.Errorf("acquire natural key lock: %w", err)
	}

	var one int
	scanErr := q.QueryRow(
		"SELECT 1 FROM "+vc.MasterTable+" WHERE institution_code = $1 AND student_id = $2 AND fees_amount = $3",
		vc.InstitutionCode, studentID, amount.String(),
	).Scan(&one)
	if scanErr == nil {
		return nil, []string{"Error: A record with this exact data already exists in the master table for RMS."}, nil
	}
	if !isNoRows(scanErr) {
		return nil, nil, fmt.Errorf("duplicate check: %w", scanErr)
	}

	insert := Statement{
		Query: `INSERT INTO ` + vc.MasterTable + ` (
			uploaded_file_id, institution_code, student_id, fees_amount, transaction_date,
			academic_year, academic_quarter
		) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		Args: []any{
			vc.UploadedFileID, vc.InstitutionCode, studentID, amount.String(), transactionDate,
			vc.AcademicYear, vc.AcademicQuarter,
		},
	}
	return []Statement{insert}, nil, nil
}

func (feesValidator) validateVVA(q RowQuerier, r *models.StagedFee, vc Context) ([]Statement, []string, error) {
	var errs []string
	values := r.Values()

	for _, mf := range schema.MandatoryFields(schema.DocFeesSummary, "VVA") {
		if strings.TrimSpace(values[mf.Field]) == "" {
			errs = append(errs, fmt.Sprintf("%s is a mandatory field.", mf.Label))
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	institute := strings.TrimSpace(r.Institute)

	// Two-tier branch classification; the tier gates which course codes are
	// legal below.
	branch := titleWords(r.Branch)
	prePrimary := false
	switch {
	case strings.HasPrefix(branch, "Pre Primary"):
		prePrimary = true
		branch = "Pre Primary"
	case strings.Contains(branch, "Primary") || strings.Contains(branch, "Secondary"):
		branch = "Primary Secondary Senior Secondary"
	default:
		errs = append(errs, fmt.Sprintf("Invalid branch value: '%s'. Must be a recognized category like 'Pre Primary' or 'Primary/Secondary'.", strings.TrimSpace(r.Branch)))
	}

	course, msg := vvaCourseForBranch(r.StandardCourse, prePrimary)
	if msg != "" {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	if err := acquireNaturalKeyLock(q, vc.InstitutionCode, "institute", institute, course); err != nil {
		return nil, nil, fmt.Errorf("acquire natural key lock: %w", err)
	}

	// The lookup compares the standardized course because that is the form
	// every promoted row stores; matching on the raw cell would let "07" slip
	// past a stored "7".
	var one int
	err := q.QueryRow(
		"SELECT 1 FROM "+vc.MasterTable+" WHERE institution_code = $1 AND institute_name = $2 AND course_name = $3",
		vc.InstitutionCode, institute, course,
	).Scan(&one)
	if err == nil {
		return nil, []string{"Error: A record with this exact data already exists in the master table."}, nil
	}
	if !isNoRows(err) {
		return nil, nil, fmt.Errorf("duplicate check: %w", err)
	}

	insert := Statement{
		Query: `INSERT INTO ` + vc.MasterTable + ` (
			uploaded_file_id, institution_code, institute_name, course_name, branch_name,
			academic_year, academic_quarter
		) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		Args: []any{
			vc.UploadedFileID, vc.InstitutionCode, institute, course, branch,
			vc.AcademicYear, vc.AcademicQuarter,
		},
	}
	return []Statement{insert}, nil, nil
}
