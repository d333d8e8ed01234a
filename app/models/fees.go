package models

// StagedFee is one staged row from a fees summary report. One layout serves
// all institutions; the validator branches per institution code.
type StagedFee struct {
	UploadedFileID   int64
	Institute        string
	Student          string
	StandardCourse   string
	Branch           string
	FeesID           string
	FeesScheduleID   string
	EmailAddress     string
	MobileNumber     string
	Division         string
	RegistrationCode string
	FeeHead          string
	DueDate          string
	FeesPaidDate     string
	SettlementDate   string
	RefundDate       string
	StudentID        string
	FeesAmount       string
	TransactionDate  string
}

func (r *StagedFee) Values() map[string]string {
	return map[string]string{
		"institute":         r.Institute,
		"student":           r.Student,
		"standard_course":   r.StandardCourse,
		"branch":            r.Branch,
		"fees_id":           r.FeesID,
		"fees_schedule_id":  r.FeesScheduleID,
		"e_mail_address":    r.EmailAddress,
		"mobile_number":     r.MobileNumber,
		"division":          r.Division,
		"registration_code": r.RegistrationCode,
		"fee_head":          r.FeeHead,
		"due_date":          r.DueDate,
		"fees_paid_date":    r.FeesPaidDate,
		"settlement_date":   r.SettlementDate,
		"refund_date":       r.RefundDate,
		"student_id":        r.StudentID,
		"fees_amount":       r.FeesAmount,
		"transaction_date":  r.TransactionDate,
	}
}
