package schema

// Column mappings per scope. Declaration order matters twice over: it is the
// coalesce priority for sources sharing a field, and CanonicalFields derives
// the staging insert order from it.

var studentsSDCCEGRKCL = &Mapping{
	Group:        GroupStudentsSDCCEGRKCL,
	StagingTable: "stg_sdcce_grkcl_student_details",
	MasterTable:  "students_details_master",
	Columns: []ColumnMapping{
		{"Admission Transaction Number", "admission_transaction_number"},
		{"Transaction Number", "admission_transaction_number"},
		{"Form Number", "form_number"},
		{"Admission Fee Paid On", "admission_fee_paid_on"},
		{"Programme Name", "programme_name"},
		{"Name of the Applicant", "name_of_the_applicant"},
		{"Applicant Name", "name_of_the_applicant"},
		{"Gender", "gender"},
		{"Admission Category", "admission_category"},
		{"DOB (Day)", "dob_day"},
		{"DOB (Month)", "dob_month"},
		{"DOB (Year)", "dob_year"},
		{"Religion", "religion"},
		{"Blood Group", "blood_group"},
		{"Email", "email"},
		{"E-Mail", "email"},
		{"Add. Line 1", "add_line_1"},
		{"Add. Line 2", "add_line_2"},
		{"City", "city"},
		{"Other City", "other_city"},
		{"State", "state"},
		{"Other State", "other_state"},
		{"Pincode", "pincode"},
		{"Mobile", "mobile"},
		{"Mobile No.", "mobile"},
		{"Alternate Mobile", "alternate_mobile"},
		{"Father's Mobile", "father_mobile"},
		{"Mother's Mobile", "mother_mobile"},
		{"Name of Father", "name_of_father"},
		{"Father's Name", "name_of_father"},
		{"Name of Mother", "name_of_mother"},
		{"Mother's Name", "name_of_mother"},
		{"Father Occupation", "father_occupation"},
		{"Mother Occupation", "mother_occupation"},
		{"Are you Citizen of India?", "are_you_citizen_of_india"},
		{"Other Nationality", "other_nationality"},
		{"Enrollment Number", "enrollment_number"},
		{"XII Name of the Institution", "xii_name_of_the_institution"},
		{"XII Board", "xii_board"},
		{"XII Passing Year", "xii_passing_year"},
		{"XII Stream", "xii_stream"},
		{"XII Maximum Marks", "xii_maximum_marks"},
		{"XII Marks Obtained", "xii_marks_obtained"},
		{"XII Subject Combination", "xii_subject_combination"},
		{"XII Percentage", "xii_percentage"},
		{"XII Division", "xii_division"},
		{"Urban/Rural/Semi-Urban/Metropolitan Area", "urban_rural_semi_urban_metropolitan_area"},
		{"PWD Category", "pwd_category"},
		{"PWD Category (Other)", "pwd_category_other"},
		{"PWD Percentage of Disability", "pwd_percentage_of_disability"},
	},
}

var studentsRMSVVA = &Mapping{
	Group:        GroupStudentsRMSVVA,
	StagingTable: "stg_rms_vva_student_details",
	MasterTable:  "students_details_master",
	Columns: []ColumnMapping{
		{"Admission No", "admission_no"},
		{"Admission Number", "admission_no"},
		{"Admission Date", "admission_date"},
		{"Date of Birth", "date_of_birth"},
		{"DOB", "date_of_birth"},
		{"Student Name", "student_name"},
		{"Name of Student", "student_name"},
		{"Gender", "gender"},
		{"Email", "email"},
		{"E-Mail Address", "email"},
		{"Mobile", "mobile"},
		{"Gen Reg No", "gen_reg_no"},
		{"General Register No.", "gen_reg_no"},
		{"Batch", "batch"},
	},
}

var fees = &Mapping{
	Group:        GroupFees,
	StagingTable: "stg_fees_details",
	MasterTable:  "student_fee_transactions",
	Columns: []ColumnMapping{
		{"Institute", "institute"},
		{"Student", "student"},
		{"Student Name", "student"},
		{"Standard/Course", "standard_course"},
		{"Standard Course", "standard_course"},
		{"Branch", "branch"},
		{"Fees ID", "fees_id"},
		{"Fees Schedule ID", "fees_schedule_id"},
		{"E-Mail Address", "e_mail_address"},
		{"Email", "e_mail_address"},
		{"Mobile Number", "mobile_number"},
		{"Division", "division"},
		{"Registration Code", "registration_code"},
		{"Fee Head", "fee_head"},
		{"Due Date", "due_date"},
		{"Fees Paid Date", "fees_paid_date"},
		{"Settlement Date", "settlement_date"},
		{"Refund Date", "refund_date"},
		{"Student ID", "student_id"},
		{"Fees Amount", "fees_amount"},
		{"Transaction Date", "transaction_date"},
	},
}

// MandatoryFields lists the canonical fields a variant requires before any
// per-field normalization runs, with the labels used in validation messages.
func MandatoryFields(docType, institutionCode string) []MandatoryField {
	switch docType {
	case DocStudentDetails:
		switch institutionCode {
		case "SDCCE", "GRKCL":
			return studentSDCCEMandatory
		case "RMS", "VVA":
			return studentRMSMandatory
		}
	case DocFeesSummary:
		switch institutionCode {
		case "SDCCE":
			return feesSDCCEMandatory
		case "RMS":
			return feesRMSMandatory
		case "VVA":
			return feesVVAMandatory
		}
	}
	return nil
}

var studentSDCCEMandatory = []MandatoryField{
	{"admission_transaction_number", "Admission Transaction Number"},
	{"form_number", "Form Number"},
	{"admission_fee_paid_on", "Admission Fee Paid On"},
	{"programme_name", "Programme Name"},
	{"name_of_the_applicant", "Applicant Name"},
	{"gender", "Gender"},
	{"admission_category", "Admission Category"},
	{"dob_day", "Day of Birth"},
	{"dob_month", "Month of Birth"},
	{"dob_year", "Year of Birth"},
	{"religion", "Religion"},
	{"email", "Email"},
	{"add_line_1", "Address Line 1"},
}

var studentRMSMandatory = []MandatoryField{
	{"admission_no", "Admission Number"},
	{"admission_date", "Admission Date"},
	{"date_of_birth", "Date of Birth"},
	{"batch", "Batch"},
}

var feesSDCCEMandatory = []MandatoryField{
	{"student", "Student"},
	{"standard_course", "Standard Course"},
}

var feesRMSMandatory = []MandatoryField{
	{"student_id", "Student Id"},
	{"fees_amount", "Fees Amount"},
	{"transaction_date", "Transaction Date"},
}

var feesVVAMandatory = []MandatoryField{
	{"institute", "Institute"},
	{"standard_course", "Standard_course"},
	{"branch", "Branch"},
}
