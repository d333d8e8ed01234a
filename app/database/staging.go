package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
)

// InsertStagedRows bulk-inserts a coalesced, filtered table into a staging
// table inside one transaction. Empty cells become NULL. fields must be the
// canonical field names matching the table's columns.
func InsertStagedRows(db *sql.DB, stagingTable string, fields []string, rows [][]string, uploadID int64) error {
	columns := append([]string{"uploaded_file_id"}, fields...)
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		stagingTable, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
	)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, 0, len(columns))
		args = append(args, uploadID)
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				args = append(args, nil)
			} else {
				args = append(args, strings.TrimSpace(cell))
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteStagedRows removes every staged row belonging to one upload batch
// and returns how many were deleted.
func DeleteStagedRows(db *sql.DB, stagingTable string, uploadID int64) (int64, error) {
	res, err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE uploaded_file_id = $1", stagingTable), uploadID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// FetchStagedStudentsSDCCE loads the staged SDCCE/GRKCL student rows for one
// upload batch, in insertion order.
func FetchStagedStudentsSDCCE(db *sql.DB, uploadID int64) ([]*models.StagedStudentSDCCE, error) {
	rows, err := db.Query(`
		SELECT uploaded_file_id,
			COALESCE(admission_transaction_number, ''), COALESCE(form_number, ''),
			COALESCE(admission_fee_paid_on, ''), COALESCE(programme_name, ''),
			COALESCE(name_of_the_applicant, ''), COALESCE(gender, ''),
			COALESCE(admission_category, ''), COALESCE(dob_day, ''), COALESCE(dob_month, ''),
			COALESCE(dob_year, ''), COALESCE(religion, ''), COALESCE(blood_group, ''),
			COALESCE(email, ''), COALESCE(add_line_1, ''), COALESCE(add_line_2, ''),
			COALESCE(city, ''), COALESCE(other_city, ''), COALESCE(state, ''),
			COALESCE(other_state, ''), COALESCE(pincode, ''), COALESCE(mobile, ''),
			COALESCE(alternate_mobile, ''), COALESCE(father_mobile, ''), COALESCE(mother_mobile, ''),
			COALESCE(name_of_father, ''), COALESCE(name_of_mother, ''),
			COALESCE(father_occupation, ''), COALESCE(mother_occupation, ''),
			COALESCE(are_you_citizen_of_india, ''), COALESCE(other_nationality, ''),
			COALESCE(enrollment_number, ''), COALESCE(xii_name_of_the_institution, ''),
			COALESCE(xii_board, ''), COALESCE(xii_passing_year, ''), COALESCE(xii_stream, ''),
			COALESCE(xii_maximum_marks, ''), COALESCE(xii_marks_obtained, ''),
			COALESCE(xii_subject_combination, ''), COALESCE(xii_percentage, ''),
			COALESCE(xii_division, ''), COALESCE(urban_rural_semi_urban_metropolitan_area, ''),
			COALESCE(pwd_category, ''), COALESCE(pwd_category_other, ''),
			COALESCE(pwd_percentage_of_disability, '')
		FROM stg_sdcce_grkcl_student_details
		WHERE uploaded_file_id = $1
		ORDER BY stg_id`, uploadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StagedStudentSDCCE
	for rows.Next() {
		r := &models.StagedStudentSDCCE{}
		if err := rows.Scan(
			&r.UploadedFileID,
			&r.AdmissionTransactionNumber, &r.FormNumber, &r.AdmissionFeePaidOn, &r.ProgrammeName,
			&r.NameOfTheApplicant, &r.Gender, &r.AdmissionCategory, &r.DOBDay, &r.DOBMonth,
			&r.DOBYear, &r.Religion, &r.BloodGroup, &r.Email, &r.AddLine1, &r.AddLine2,
			&r.City, &r.OtherCity, &r.State, &r.OtherState, &r.Pincode, &r.Mobile,
			&r.AlternateMobile, &r.FatherMobile, &r.MotherMobile, &r.NameOfFather, &r.NameOfMother,
			&r.FatherOccupation, &r.MotherOccupation, &r.AreYouCitizenOfIndia, &r.OtherNationality,
			&r.EnrollmentNumber, &r.XIIInstitution, &r.XIIBoard, &r.XIIPassingYear, &r.XIIStream,
			&r.XIIMaximumMarks, &r.XIIMarksObtained, &r.XIISubjectCombination, &r.XIIPercentage,
			&r.XIIDivision, &r.UrbanRuralArea, &r.PWDCategory, &r.PWDCategoryOther, &r.PWDPercentage,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// FetchStagedStudentsRMS loads the staged RMS/VVA student rows for one
// upload batch, in insertion order.
func FetchStagedStudentsRMS(db *sql.DB, uploadID int64) ([]*models.StagedStudentRMS, error) {
	rows, err := db.Query(`
		SELECT uploaded_file_id,
			COALESCE(admission_no, ''), COALESCE(admission_date, ''), COALESCE(date_of_birth, ''),
			COALESCE(student_name, ''), COALESCE(gender, ''), COALESCE(email, ''),
			COALESCE(mobile, ''), COALESCE(gen_reg_no, ''), COALESCE(batch, '')
		FROM stg_rms_vva_student_details
		WHERE uploaded_file_id = $1
		ORDER BY stg_id`, uploadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StagedStudentRMS
	for rows.Next() {
		r := &models.StagedStudentRMS{}
		if err := rows.Scan(
			&r.UploadedFileID,
			&r.AdmissionNo, &r.AdmissionDate, &r.DateOfBirth, &r.StudentName, &r.Gender,
			&r.Email, &r.Mobile, &r.GenRegNo, &r.Batch,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// FetchStagedFees loads the staged fee rows for one upload batch, in
// insertion order.
func FetchStagedFees(db *sql.DB, uploadID int64) ([]*models.StagedFee, error) {
	rows, err := db.Query(`
		SELECT uploaded_file_id,
			COALESCE(institute, ''), COALESCE(student, ''), COALESCE(standard_course, ''),
			COALESCE(branch, ''), COALESCE(fees_id, ''), COALESCE(fees_schedule_id, ''),
			COALESCE(e_mail_address, ''), COALESCE(mobile_number, ''), COALESCE(division, ''),
			COALESCE(registration_code, ''), COALESCE(fee_head, ''), COALESCE(due_date, ''),
			COALESCE(fees_paid_date, ''), COALESCE(settlement_date, ''), COALESCE(refund_date, ''),
			COALESCE(student_id, ''), COALESCE(fees_amount, ''), COALESCE(transaction_date, '')
		FROM stg_fees_details
		WHERE uploaded_file_id = $1
		ORDER BY stg_id`, uploadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StagedFee
	for rows.Next() {
		r := &models.StagedFee{}
		if err := rows.Scan(
			&r.UploadedFileID,
			&r.Institute, &r.Student, &r.StandardCourse, &r.Branch, &r.FeesID, &r.FeesScheduleID,
			&r.EmailAddress, &r.MobileNumber, &r.Division, &r.RegistrationCode, &r.FeeHead,
			&r.DueDate, &r.FeesPaidDate, &r.SettlementDate, &r.RefundDate, &r.StudentID,
			&r.FeesAmount, &r.TransactionDate,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
