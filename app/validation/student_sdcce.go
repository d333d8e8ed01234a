package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

// admissionCategoryMap normalizes the reservation category to its canonical
// token. Unmapped input is an error, not a pass-through.
var admissionCategoryMap = map[string]string{
	"SCHEDULED CASTE": "SC",
	"SCHEDULE CASTE":  "SC",
	"SC":              "SC",

	"SCHEDULED TRIBE":      "ST",
	"SCHEDULE TRIBE":       "ST",
	"SCHEDULED TRIBE(ST)":  "ST",
	"SCHEDULED TRIBE (ST)": "ST",
	"ST":                   "ST",

	"OTHER BACKWARD CLASSES": "OBC",
	"OBC":                    "OBC",

	"PWBD": "PWBD",
	"PERSONS WITH BENCHMARK DISABILITIES": "PWBD",
	"PWD": "PWBD",

	"UNRESERVED": "UR",
	"UR":         "UR",
	"GENERAL":    "UR",
}

var allowedReligions = map[string]bool{
	"HINDUISM": true, "CHRISTIANITY": true, "ISLAM": true,
	"SIKHISM": true, "BUDDHISM": true, "JAINISM": true,
}

var allowedBloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"O+": true, "O-": true, "AB+": true, "AB-": true,
}

var allowedXIIDivisions = map[string]bool{
	"DISTINCTION": true, "FIRST DIVISION": true, "PASS DIVISION": true, "SECOND DIVISION": true,
}

var allowedAreaTypes = map[string]bool{
	"METROPOLITAN": true, "RURAL": true, "SEMI-URBAN": true, "URBAN": true,
}

// studentSDCCEValidator handles Student Details rows for SDCCE and GRKCL,
// which share the admission-portal export layout.
type studentSDCCEValidator struct{}

func (studentSDCCEValidator) Validate(q RowQuerier, row StagedRow, vc Context) ([]Statement, []string, error) {
	r, ok := row.(*models.StagedStudentSDCCE)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected staged row type %T for SDCCE student validation", row)
	}

	var errs []string
	values := r.Values()

	// 1. Mandatory fields.
	for _, mf := range schema.MandatoryFields(schema.DocStudentDetails, vc.InstitutionCode) {
		if strings.TrimSpace(values[mf.Field]) == "" {
			errs = append(errs, "Missing mandatory field: "+mf.Label)
		}
	}

	// 2. City/State fall back to their "other" counterparts.
	city := strings.TrimSpace(firstNonEmpty(r.City, r.OtherCity))
	if city == "" {
		city = " "
	}
	state := strings.TrimSpace(firstNonEmpty(r.State, r.OtherState))
	if state == "" {
		errs = append(errs, "State or Other State must have a value.")
	}

	// 3. Names.
	var studentNameVal, fatherName, motherName string
	for _, nf := range []struct {
		raw, display string
		dst          *string
	}{
		{r.NameOfTheApplicant, "Student", &studentNameVal},
		{r.NameOfFather, "Father's", &fatherName},
		{r.NameOfMother, "Mother's", &motherName},
	} {
		formatted, msg := formatStudentName(nf.raw)
		if msg != "" {
			errs = append(errs, fmt.Sprintf("%s Name Error: %s", nf.display, msg))
		} else {
			*nf.dst = formatted
		}
	}

	// 4. Date of birth from its three components.
	var dateOfBirth string
	if r.DOBYear != "" && r.DOBMonth != "" && r.DOBDay != "" {
		dob, ok := composeDate(r.DOBYear, r.DOBMonth, r.DOBDay)
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("Invalid Date of Birth provided: Year=%s, Month=%s, Day=%s.", r.DOBYear, r.DOBMonth, r.DOBDay))
		case dob.After(time.Now()):
			errs = append(errs, fmt.Sprintf("Invalid Date of Birth: '%s' cannot be in the future.", dob.Format("2006-01-02")))
		default:
			dateOfBirth = dob.Format("2006-01-02")
		}
	}

	// 5. Admission fee payment timestamp.
	var admissionDate, admissionFeeTime any
	if strings.TrimSpace(r.AdmissionFeePaidOn) != "" {
		ts, err := time.Parse("2006-01-02 15:04:05", strings.TrimSpace(r.AdmissionFeePaidOn))
		if err != nil {
			errs = append(errs, "Invalid Admission Fee Payment Date/Time. Expected format: YYYY-MM-DD HH:MM:SS")
		} else {
			admissionDate = ts.Format("2006-01-02")
			admissionFeeTime = ts.Format("15:04:05")
		}
	}

	// 6. Pincode.
	var pincode string
	if strings.TrimSpace(r.Pincode) != "" {
		pincode = stripFloatSuffix(r.Pincode)
		if len(pincode) != 6 || nonDigitRe.MatchString(pincode) {
			errs = append(errs, fmt.Sprintf("Invalid pincode format: '%s'. Must be a 6-digit number.", strings.TrimSpace(r.Pincode)))
			pincode = ""
		}
	}

	// 7. Mobile numbers.
	phones := make(map[string]string, 4)
	for _, pf := range []struct{ raw, field, label string }{
		{r.Mobile, "mobile", "Mobile Number"},
		{r.AlternateMobile, "alternate_mobile", "Alternate Mobile"},
		{r.FatherMobile, "father_mobile", "Father's Mobile"},
		{r.MotherMobile, "mother_mobile", "Mother's Mobile"},
	} {
		cleaned, msg := normalizePhone(pf.raw, pf.label)
		if msg != "" {
			errs = append(errs, msg)
		}
		phones[pf.field] = cleaned
	}

	// 8. Categorical fields.
	var category string
	if strings.TrimSpace(r.AdmissionCategory) != "" {
		category = admissionCategoryMap[strings.ToUpper(strings.TrimSpace(r.AdmissionCategory))]
		if category == "" {
			errs = append(errs, fmt.Sprintf("Invalid admission category: '%s'.", strings.TrimSpace(r.AdmissionCategory)))
		}
	}

	var religion string
	if strings.TrimSpace(r.Religion) != "" {
		normalized := strings.ToUpper(strings.TrimSpace(r.Religion))
		if allowedReligions[normalized] {
			religion = titleWords(normalized)
		} else {
			errs = append(errs, fmt.Sprintf("Invalid religion: '%s'. Accepted values are: Buddhism, Christianity, Hinduism, Islam, Jainism, Sikhism.", strings.TrimSpace(r.Religion)))
		}
	}

	var bloodGroup string
	if strings.TrimSpace(r.BloodGroup) != "" {
		normalized := strings.ToUpper(strings.TrimSpace(r.BloodGroup))
		if allowedBloodGroups[normalized] {
			bloodGroup = normalized
		} else {
			errs = append(errs, fmt.Sprintf("Invalid blood group: '%s'.", strings.TrimSpace(r.BloodGroup)))
		}
	}

	// 9. Email.
	email, msg := normalizeEmail(r.Email)
	if msg != "" {
		errs = append(errs, msg)
	}

	// 10. Full address.
	var addressParts []string
	for _, part := range []string{r.AddLine1, r.AddLine2, city, state, pincode} {
		if strings.TrimSpace(part) != "" {
			addressParts = append(addressParts, strings.TrimSpace(part))
		}
	}
	fullAddress := strings.Join(addressParts, ", ")

	// 11. Parent occupations; empty stays empty, non-empty must standardize.
	var fatherOccCategory, motherOccCategory string
	for _, of := range []struct {
		raw, display string
		dst          *string
	}{
		{r.FatherOccupation, "Father's", &fatherOccCategory},
		{r.MotherOccupation, "Mother's", &motherOccCategory},
	} {
		if strings.TrimSpace(of.raw) == "" {
			continue
		}
		standardized, occMsg := standardizeOccupation(of.raw)
		if occMsg != "" {
			errs = append(errs, fmt.Sprintf("%s Occupation Error: %s", of.display, occMsg))
		} else {
			*of.dst = standardized
		}
	}

	// 12. Nationality.
	var nationality string
	switch {
	case strings.ToUpper(strings.TrimSpace(r.AreYouCitizenOfIndia)) == "YES",
		strings.ToUpper(strings.TrimSpace(r.AreYouCitizenOfIndia)) == "Y":
		nationality = "Indian"
	case strings.TrimSpace(r.OtherNationality) != "":
		nationality = titleWords(r.OtherNationality)
	default:
		errs = append(errs, "Nationality is missing. Specify if Indian citizen or provide other nationality.")
	}

	// 13. XII qualification details.
	var passingYear any
	if strings.TrimSpace(r.XIIPassingYear) != "" {
		yearFloat, err := strconv.ParseFloat(strings.TrimSpace(r.XIIPassingYear), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Invalid XII passing year format: '%s'. Must be a 4-digit number.", strings.TrimSpace(r.XIIPassingYear)))
		} else {
			year := int(yearFloat)
			if year < 1980 || year > time.Now().Year() {
				errs = append(errs, fmt.Sprintf("Invalid XII passing year: '%s'. Must be between 1980 and the current year.", strings.TrimSpace(r.XIIPassingYear)))
			} else {
				passingYear = year
			}
		}
	}

	xiiPercentage := 0.0
	if strings.TrimSpace(r.XIIPercentage) != "" {
		cleaned := strings.ReplaceAll(strings.TrimSpace(r.XIIPercentage), "%", "")
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("XII Percentage: '%s' is not a valid number.", strings.TrimSpace(r.XIIPercentage)))
		} else {
			if value > 0 && value <= 1 {
				value *= 100
			}
			if value <= 0 || value > 100 {
				errs = append(errs, fmt.Sprintf("XII Percentage: '%s' must be between 1 and 100.", strings.TrimSpace(r.XIIPercentage)))
			} else {
				xiiPercentage = math.Round(value*100) / 100
			}
		}
	}

	var xiiDivision string
	if strings.TrimSpace(r.XIIDivision) != "" {
		normalized := strings.ToUpper(strings.TrimSpace(r.XIIDivision))
		if allowedXIIDivisions[normalized] {
			xiiDivision = normalized
		} else {
			errs = append(errs, fmt.Sprintf("Invalid XII Division: '%s'.", strings.TrimSpace(r.XIIDivision)))
		}
	}

	// 14. Urban/rural area.
	var areaType string
	if strings.TrimSpace(r.UrbanRuralArea) != "" {
		normalized := strings.ToUpper(strings.TrimSpace(r.UrbanRuralArea))
		if allowedAreaTypes[normalized] {
			areaType = normalized
		} else {
			errs = append(errs, fmt.Sprintf("Invalid Area: '%s'. Must be one of: METROPOLITAN, RURAL, SEMI-URBAN, URBAN.", strings.TrimSpace(r.UrbanRuralArea)))
		}
	}

	// 15. PWD category and percentage combine into one display field.
	pwdCategoryAndPercentage := "N/A"
	if pwdCategory := strings.TrimSpace(firstNonEmpty(r.PWDCategory, r.PWDCategoryOther)); pwdCategory != "" {
		if strings.TrimSpace(r.PWDPercentage) == "" {
			errs = append(errs, "PWD Category is provided but percentage is missing.")
		} else {
			cleaned := strings.ReplaceAll(strings.TrimSpace(r.PWDPercentage), "%", "")
			value, err := strconv.ParseFloat(cleaned, 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf("PWD Percentage: '%s' is not a valid number.", strings.TrimSpace(r.PWDPercentage)))
			} else {
				if value > 0 && value <= 1 {
					value *= 100
				}
				if value < 0 || value > 100 {
					errs = append(errs, fmt.Sprintf("PWD Percentage: '%s' must be between 0 and 100.", strings.TrimSpace(r.PWDPercentage)))
				} else {
					pwdCategoryAndPercentage = fmt.Sprintf("%s: %g%%", titleWords(pwdCategory), value)
				}
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	// Natural-key duplicate check, serialised against concurrent promotions.
	formNumber := strings.TrimSpace(r.FormNumber)
	if err := acquireNaturalKeyLock(q, vc.InstitutionCode, "admission_no", formNumber); err != nil {
		return nil, nil, fmt.Errorf("acquire natural key lock: %w", err)
	}

	var one int
	err := q.QueryRow(
		"SELECT 1 FROM "+vc.MasterTable+" WHERE institution_code = $1 AND admission_no = $2 AND is_active = TRUE",
		vc.InstitutionCode, formNumber,
	).Scan(&one)
	if err == nil {
		return nil, []string{fmt.Sprintf("Error: An active record with Admission No (Form Number) '%s' already exists for this institution.", formNumber)}, nil
	}
	if !isNoRows(err) {
		return nil, nil, fmt.Errorf("duplicate check: %w", err)
	}

	// Supersession: deactivate prior active records for the same person.
	statements, err := deactivateStatements(q, vc.MasterTable, vc.InstitutionCode, studentNameVal, dateOfBirth)
	if err != nil {
		return nil, nil, fmt.Errorf("history lookup: %w", err)
	}

	insert := Statement{
		Query: `INSERT INTO ` + vc.MasterTable + ` (
			student_reference_id, institution_code, uploaded_file_id, admission_no, stream, pr_no,
			admission_date, admission_fee_payment_time, student_name, date_of_birth, full_address,
			gender, student_category, religion, blood_group, email_address, city, state, pin_code,
			mobile_number, alt_mobile_number, fathers_mobile_number, mothers_mobile_number,
			fathers_name, mothers_name, fathers_occupation, mothers_occupation,
			fathers_occupation_category, mothers_occupation_category, nationality,
			institution_attended_earlier, board_name, passing_year, xii_stream, xii_max_marks,
			xii_marks_obtained, xii_subject_combination, passing_percentage, xii_division,
			pwd_category_and_percentage, urban_rural_category, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37,$38,$39,$40,$41,TRUE)`,
		Args: []any{
			nullable(r.AdmissionTransactionNumber), vc.InstitutionCode, vc.UploadedFileID, formNumber,
			nullable(r.ProgrammeName), nullable(r.EnrollmentNumber), admissionDate, admissionFeeTime,
			studentNameVal, nullable(dateOfBirth), nullable(fullAddress), nullable(r.Gender),
			nullable(category), nullable(religion), nullable(bloodGroup), nullable(email),
			nullable(city), state, nullable(pincode),
			nullable(phones["mobile"]), nullable(phones["alternate_mobile"]),
			nullable(phones["father_mobile"]), nullable(phones["mother_mobile"]),
			nullable(fatherName), nullable(motherName),
			nullable(r.FatherOccupation), nullable(r.MotherOccupation),
			nullable(fatherOccCategory), nullable(motherOccCategory), nationality,
			nullable(r.XIIInstitution), nullable(r.XIIBoard), passingYear, nullable(r.XIIStream),
			nullable(r.XIIMaximumMarks), nullable(r.XIIMarksObtained), nullable(r.XIISubjectCombination),
			xiiPercentage, nullable(xiiDivision), pwdCategoryAndPercentage, nullable(areaType),
		},
	}

	return append(statements, insert), nil, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// composeDate builds a calendar date from year/month/day strings, rejecting
// values that do not round-trip (e.g. month 13 or day 40).
func composeDate(yearS, monthS, dayS string) (time.Time, bool) {
	year, err1 := strconv.Atoi(stripFloatSuffix(yearS))
	month, err2 := strconv.Atoi(stripFloatSuffix(monthS))
	day, err3 := strconv.Atoi(stripFloatSuffix(dayS))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
