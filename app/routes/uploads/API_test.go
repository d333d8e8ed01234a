package uploads

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/config"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/ingest"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

func newApp() *fiber.App {
	app := fiber.New()
	SetupUploadRoutes(app)
	return app
}

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	prev := config.AppConfig
	config.AppConfig = &config.Config{DB: db}
	t.Cleanup(func() {
		config.AppConfig = prev
		db.Close()
	})
	return mock
}

func multipartCSV(t *testing.T, csv string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "fees_apr.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dst))
}

const feesCSVHeader = "Institute,Student,Standard/Course,Branch,Fees ID,Fee Head,Due Date\n"

func TestPreviewFileAPI(t *testing.T) {
	app := newApp()

	csv := feesCSVHeader +
		"SDCCE College,Anita Naik,B.Com,Main,101,Installment I,15/07/2025\n" +
		"SDCCE College,Ravi Kamat,B.Com,Main,102,Installment I,15/07/2025\n"
	body, contentType := multipartCSV(t, csv, map[string]string{
		"tableType":        schema.DocFeesSummary,
		"institution_code": "SDCCE",
	})

	req := httptest.NewRequest("POST", "/preview", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out struct {
		Headers []string            `json:"headers"`
		Rows    []map[string]string `json:"rows"`
		Count   int                 `json:"count"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "Anita Naik", out.Rows[0]["student"])
	assert.Equal(t, "15-07-2025", out.Rows[0]["due_date"], "date columns render as DD-MM-YYYY")
}

func TestPreviewFileAPIDuplicateRows(t *testing.T) {
	app := newApp()

	row := "SDCCE College,Anita Naik,B.Com,Main,101,Installment I,15/07/2025\n"
	body, contentType := multipartCSV(t, feesCSVHeader+row+row, map[string]string{
		"tableType":        schema.DocFeesSummary,
		"institution_code": "SDCCE",
	})

	req := httptest.NewRequest("POST", "/preview", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	var out struct {
		DuplicateGroups []ingest.DuplicateGroup `json:"duplicate_groups"`
	}
	decodeBody(t, resp, &out)
	require.Len(t, out.DuplicateGroups, 1)
	assert.Equal(t, 2, out.DuplicateGroups[0].Count)
	assert.Equal(t, []int{2, 3}, out.DuplicateGroups[0].RowNumbers)
}

func TestPreviewFileAPIRejectsUnknownScope(t *testing.T) {
	app := newApp()

	body, contentType := multipartCSV(t, feesCSVHeader, map[string]string{
		"tableType":        schema.DocFeesSummary,
		"institution_code": "GRKCL",
	})
	req := httptest.NewRequest("POST", "/preview", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUploadFileAPIStagesRows(t *testing.T) {
	app := newApp()
	mock := withMockDB(t)

	mock.ExpectQuery("INSERT INTO user_upload_details").
		WithArgs("SDCCE", "fees_apr.csv", schema.DocFeesSummary, "2025-2026", "Q1").
		WillReturnRows(sqlmock.NewRows([]string{"upload_id"}).AddRow(int64(5)))
	mock.ExpectBegin()
	stmt := mock.ExpectPrepare("INSERT INTO stg_fees_details")
	stmt.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	csv := feesCSVHeader + "SDCCE College,Anita Naik,B.Com,Main,101,Installment I,15/07/2025\n"
	body, contentType := multipartCSV(t, csv, map[string]string{
		"tableType":        schema.DocFeesSummary,
		"institution_code": "SDCCE",
		"academicYear":     "2025-2026",
		"academicQuarter":  "Q1",
	})

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out struct {
		UploadID   int64 `json:"upload_id"`
		RowsStaged int   `json:"rows_staged"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, int64(5), out.UploadID)
	assert.Equal(t, 1, out.RowsStaged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckFilenameAPI(t *testing.T) {
	app := newApp()
	mock := withMockDB(t)

	mock.ExpectQuery("SELECT 1 FROM user_upload_details").
		WithArgs("fees_apr.csv").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	req := httptest.NewRequest("POST", "/check_filename", strings.NewReader(`{"filename":"fees_apr.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out struct {
		Exists bool `json:"exists"`
	}
	decodeBody(t, resp, &out)
	assert.True(t, out.Exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessUploadAPIRequiresUploadID(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/process_upload", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestProcessUploadAPIUnknownBatch(t *testing.T) {
	app := newApp()
	mock := withMockDB(t)

	mock.ExpectQuery("SELECT institution_code, file_name, table_type").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest("POST", "/process_upload", strings.NewReader(`{"upload_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadSampleAPI(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/download_sample?fileType=Fees+Summary+Report&institution_code=SDCCE", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stg_fees_details.xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))

	resp, err = app.Test(httptest.NewRequest("GET", "/download_sample?fileType=Nope&institution_code=SDCCE", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestFormatPreviewRows(t *testing.T) {
	table := &ingest.Table{
		Headers: []string{"student", "due_date", "branch"},
		Rows: [][]string{
			{"Anita Naik", "15/07/2025", ""},
			{"Ravi Kamat", "", "Main"},
		},
	}
	rows := formatPreviewRows(table)
	assert.Equal(t, "15-07-2025", rows[0]["due_date"])
	assert.Equal(t, " ", rows[0]["branch"], "absent non-date values keep the grid shape")
	assert.Equal(t, "N/A", rows[1]["due_date"])
}

func TestSampleTemplateHeadersDeduplicate(t *testing.T) {
	m, err := schema.ForUpload(schema.DocFeesSummary, "SDCCE")
	require.NoError(t, err)
	headers := m.SourceHeaders()
	assert.Equal(t, len(m.CanonicalFields()), len(headers))
	assert.Equal(t, "Institute", headers[0])
	assert.Contains(t, headers, "Standard/Course")
	assert.NotContains(t, headers, "Standard Course", "only the first source per field appears")
}
