package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestInsertStagedRows(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	stmt := mock.ExpectPrepare("INSERT INTO stg_fees_details")
	stmt.ExpectExec().
		WithArgs(int64(7), "SDCCE College", "Anita Naik").
		WillReturnResult(sqlmock.NewResult(1, 1))
	stmt.ExpectExec().
		WithArgs(int64(7), "SDCCE College", nil).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := InsertStagedRows(db, "stg_fees_details", []string{"institute", "student"}, [][]string{
		{"SDCCE College", "Anita Naik"},
		{"SDCCE College", "  "},
	}, 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertStagedRowsRollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	stmt := mock.ExpectPrepare("INSERT INTO stg_fees_details")
	stmt.ExpectExec().WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := InsertStagedRows(db, "stg_fees_details", []string{"institute"}, [][]string{{"x"}}, 7)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStagedRows(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("DELETE FROM stg_fees_details WHERE uploaded_file_id").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := DeleteStagedRows(db, "stg_fees_details", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilenameExists(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT 1 FROM user_upload_details WHERE file_name").
		WithArgs("fees_apr.xlsx").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	exists, err := FilenameExists(db, "fees_apr.xlsx")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT 1 FROM user_upload_details WHERE file_name").
		WithArgs("fresh.xlsx").
		WillReturnError(sql.ErrNoRows)
	exists, err = FilenameExists(db, "fresh.xlsx")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertUploadMetadata(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO user_upload_details").
		WithArgs("RMS", "students_jun.xlsx", "Student Details", "2025-2026", "Q1").
		WillReturnRows(sqlmock.NewRows([]string{"upload_id"}).AddRow(int64(12)))

	id, err := InsertUploadMetadata(db, models.UploadedFile{
		InstitutionCode: "RMS",
		FileName:        "students_jun.xlsx",
		TableType:       "Student Details",
		AcademicYear:    "2025-2026",
		AcademicQuarter: "Q1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchStagedFees(t *testing.T) {
	db, mock := newMock(t)

	cols := []string{
		"uploaded_file_id", "institute", "student", "standard_course", "branch", "fees_id",
		"fees_schedule_id", "e_mail_address", "mobile_number", "division", "registration_code",
		"fee_head", "due_date", "fees_paid_date", "settlement_date", "refund_date",
		"student_id", "fees_amount", "transaction_date",
	}
	mock.ExpectQuery("FROM stg_fees_details").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(3), "SDCCE College", "Anita Naik", "B.Com", "", "101", "", "", "", "", "REG-55", "Installment I", "15/07/2025", "", "", "", "", "", ""))

	records, err := FetchStagedFees(db, 3)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Anita Naik", records[0].Student)
	assert.Equal(t, "REG-55", records[0].RegistrationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
