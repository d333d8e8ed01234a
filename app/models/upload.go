package models

import "time"

// UploadedFile is the metadata row created once per accepted file. Every
// staged record references it; it is the root of a staging batch.
type UploadedFile struct {
	UploadID        int64     `json:"upload_id"`
	InstitutionCode string    `json:"institution_code"`
	FileName        string    `json:"file_name"`
	TableType       string    `json:"table_type"`
	AcademicYear    string    `json:"academic_year"`
	AcademicQuarter string    `json:"academic_quarter"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

// Institution is a reference-data row for the institute picker.
type Institution struct {
	InstituteName   string `json:"institute_name"`
	InstitutionCode string `json:"institution_code"`
}
