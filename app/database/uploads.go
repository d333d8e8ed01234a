package database

import (
	"database/sql"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
)

// ListInstitutions returns all institutions ordered by name, for the
// institute picker.
func ListInstitutions(db *sql.DB) ([]models.Institution, error) {
	rows, err := db.Query(`SELECT institute_name, institution_code FROM institutions ORDER BY institute_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var institutions []models.Institution
	for rows.Next() {
		var inst models.Institution
		if err := rows.Scan(&inst.InstituteName, &inst.InstitutionCode); err != nil {
			return nil, err
		}
		institutions = append(institutions, inst)
	}
	return institutions, rows.Err()
}

// FilenameExists reports whether a file with this name was uploaded before.
func FilenameExists(db *sql.DB, filename string) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM user_upload_details WHERE file_name = $1`, filename).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertUploadMetadata records the batch metadata for an accepted file and
// returns the generated upload id every staged row will reference.
func InsertUploadMetadata(db *sql.DB, meta models.UploadedFile) (int64, error) {
	var uploadID int64
	err := db.QueryRow(`
		INSERT INTO user_upload_details (institution_code, file_name, table_type, academic_year, academic_quarter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING upload_id`,
		meta.InstitutionCode, meta.FileName, meta.TableType, meta.AcademicYear, meta.AcademicQuarter,
	).Scan(&uploadID)
	return uploadID, err
}

// GetUploadMetadata fetches the batch metadata by upload id. Returns
// sql.ErrNoRows when the batch is unknown.
func GetUploadMetadata(db *sql.DB, uploadID int64) (*models.UploadedFile, error) {
	meta := &models.UploadedFile{UploadID: uploadID}
	err := db.QueryRow(`
		SELECT institution_code, file_name, table_type, academic_year, academic_quarter, uploaded_at
		FROM user_upload_details WHERE upload_id = $1`, uploadID,
	).Scan(&meta.InstitutionCode, &meta.FileName, &meta.TableType, &meta.AcademicYear, &meta.AcademicQuarter, &meta.UploadedAt)
	if err != nil {
		return nil, err
	}
	return meta, nil
}
