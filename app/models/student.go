package models

// StagedStudentSDCCE is one staged row from the SDCCE/GRKCL admission-portal
// export. All fields hold raw text exactly as uploaded; normalization happens
// at promotion time.
type StagedStudentSDCCE struct {
	UploadedFileID             int64
	AdmissionTransactionNumber string
	FormNumber                 string
	AdmissionFeePaidOn         string
	ProgrammeName              string
	NameOfTheApplicant         string
	Gender                     string
	AdmissionCategory          string
	DOBDay                     string
	DOBMonth                   string
	DOBYear                    string
	Religion                   string
	BloodGroup                 string
	Email                      string
	AddLine1                   string
	AddLine2                   string
	City                       string
	OtherCity                  string
	State                      string
	OtherState                 string
	Pincode                    string
	Mobile                     string
	AlternateMobile            string
	FatherMobile               string
	MotherMobile               string
	NameOfFather               string
	NameOfMother               string
	FatherOccupation           string
	MotherOccupation           string
	AreYouCitizenOfIndia       string
	OtherNationality           string
	EnrollmentNumber           string
	XIIInstitution             string
	XIIBoard                   string
	XIIPassingYear             string
	XIIStream                  string
	XIIMaximumMarks            string
	XIIMarksObtained           string
	XIISubjectCombination      string
	XIIPercentage              string
	XIIDivision                string
	UrbanRuralArea             string
	PWDCategory                string
	PWDCategoryOther           string
	PWDPercentage              string
}

// Values exposes the row as canonical field -> raw value, used for mandatory
// field checks and for echoing the record back in validation error payloads.
func (r *StagedStudentSDCCE) Values() map[string]string {
	return map[string]string{
		"admission_transaction_number":             r.AdmissionTransactionNumber,
		"form_number":                              r.FormNumber,
		"admission_fee_paid_on":                    r.AdmissionFeePaidOn,
		"programme_name":                           r.ProgrammeName,
		"name_of_the_applicant":                    r.NameOfTheApplicant,
		"gender":                                   r.Gender,
		"admission_category":                       r.AdmissionCategory,
		"dob_day":                                  r.DOBDay,
		"dob_month":                                r.DOBMonth,
		"dob_year":                                 r.DOBYear,
		"religion":                                 r.Religion,
		"blood_group":                              r.BloodGroup,
		"email":                                    r.Email,
		"add_line_1":                               r.AddLine1,
		"add_line_2":                               r.AddLine2,
		"city":                                     r.City,
		"other_city":                               r.OtherCity,
		"state":                                    r.State,
		"other_state":                              r.OtherState,
		"pincode":                                  r.Pincode,
		"mobile":                                   r.Mobile,
		"alternate_mobile":                         r.AlternateMobile,
		"father_mobile":                            r.FatherMobile,
		"mother_mobile":                            r.MotherMobile,
		"name_of_father":                           r.NameOfFather,
		"name_of_mother":                           r.NameOfMother,
		"father_occupation":                        r.FatherOccupation,
		"mother_occupation":                        r.MotherOccupation,
		"are_you_citizen_of_india":                 r.AreYouCitizenOfIndia,
		"other_nationality":                        r.OtherNationality,
		"enrollment_number":                        r.EnrollmentNumber,
		"xii_name_of_the_institution":              r.XIIInstitution,
		"xii_board":                                r.XIIBoard,
		"xii_passing_year":                         r.XIIPassingYear,
		"xii_stream":                               r.XIIStream,
		"xii_maximum_marks":                        r.XIIMaximumMarks,
		"xii_marks_obtained":                       r.XIIMarksObtained,
		"xii_subject_combination":                  r.XIISubjectCombination,
		"xii_percentage":                           r.XIIPercentage,
		"xii_division":                             r.XIIDivision,
		"urban_rural_semi_urban_metropolitan_area": r.UrbanRuralArea,
		"pwd_category":                             r.PWDCategory,
		"pwd_category_other":                       r.PWDCategoryOther,
		"pwd_percentage_of_disability":             r.PWDPercentage,
	}
}

// StagedStudentRMS is one staged row from the RMS/VVA register layout.
type StagedStudentRMS struct {
	UploadedFileID int64
	AdmissionNo    string
	AdmissionDate  string
	DateOfBirth    string
	StudentName    string
	Gender         string
	Email          string
	Mobile         string
	GenRegNo       string
	Batch          string
}

func (r *StagedStudentRMS) Values() map[string]string {
	return map[string]string{
		"admission_no":   r.AdmissionNo,
		"admission_date": r.AdmissionDate,
		"date_of_birth":  r.DateOfBirth,
		"student_name":   r.StudentName,
		"gender":         r.Gender,
		"email":          r.Email,
		"mobile":         r.Mobile,
		"gen_reg_no":     r.GenRegNo,
		"batch":          r.Batch,
	}
}
