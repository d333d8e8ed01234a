package uploads

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/config"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/database"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/ingest"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/models"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/promotion"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/schema"
)

// GetInstitutesAPI returns the institutes for the upload form dropdown.
func GetInstitutesAPI(c *fiber.Ctx) error {
	institutions, err := database.ListInstitutions(config.GetDB())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch institutions")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch institutes"})
	}
	return c.JSON(fiber.Map{"institutes": institutions})
}

// CheckFilenameAPI reports whether a file with this name was uploaded before,
// so the frontend can warn before re-submitting the same export.
func CheckFilenameAPI(c *fiber.Ctx) error {
	var body struct {
		Filename string `json:"filename"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Filename) == "" {
		body.Filename = c.FormValue("filename")
	}
	if strings.TrimSpace(body.Filename) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "filename is required"})
	}

	exists, err := database.FilenameExists(config.GetDB(), body.Filename)
	if err != nil {
		logrus.WithError(err).Error("filename check failed")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check filename"})
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// PreviewFileAPI parses an uploaded file, coalesces it onto the canonical
// schema and returns the cleaned rows for operator review. Nothing is written.
// Exact duplicate rows abort the preview with their original file positions.
func PreviewFileAPI(c *fiber.Ctx) error {
	log := logrus.WithField("request_id", uuid.NewString())

	data, filename, status, errMsg := readUploadedFile(c)
	if errMsg != "" {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}

	mapping, err := schema.ForUpload(c.FormValue("tableType"), c.FormValue("institution_code"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	table, headerRow, err := ingest.ReadFile(data, filename, mapping)
	if err != nil {
		return parseErrorResponse(c, log, filename, err)
	}

	if groups := ingest.FindDuplicateGroups(table, headerRow); len(groups) > 0 {
		dupErr := &ingest.DuplicateRowsError{Groups: groups}
		log.WithField("groups", len(groups)).Warn("duplicate rows found in preview")
		return c.Status(409).JSON(fiber.Map{
			"error":            dupErr.Error(),
			"duplicate_groups": groups,
		})
	}

	cleaned := ingest.DropEmptyColumns(ingest.DropSparseRows(ingest.Coalesce(table, mapping)))
	log.WithFields(logrus.Fields{"file": filename, "rows": len(cleaned.Rows)}).Info("preview generated")

	return c.JSON(fiber.Map{
		"headers": cleaned.Headers,
		"rows":    formatPreviewRows(cleaned),
		"count":   len(cleaned.Rows),
	})
}

// UploadFileAPI stages a reviewed file: parses and coalesces it again, records
// the batch metadata and bulk-inserts the rows into the scope's staging table.
func UploadFileAPI(c *fiber.Ctx) error {
	log := logrus.WithField("request_id", uuid.NewString())

	data, filename, status, errMsg := readUploadedFile(c)
	if errMsg != "" {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}

	docType := c.FormValue("tableType")
	instituteCode := c.FormValue("institution_code")
	mapping, err := schema.ForUpload(docType, instituteCode)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	table, _, err := ingest.ReadFile(data, filename, mapping)
	if err != nil {
		return parseErrorResponse(c, log, filename, err)
	}

	if ingest.HasDuplicateRows(table) {
		return c.Status(409).JSON(fiber.Map{
			"error": "Duplicate rows found in the uploaded file. Please remove them and upload again.",
		})
	}

	cleaned := ingest.DropFooterRow(ingest.DropSparseRows(ingest.Coalesce(table, mapping)))
	if len(cleaned.Rows) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": ingest.ErrEmptyDataset.Error()})
	}

	meta := models.UploadedFile{
		InstitutionCode: instituteCode,
		FileName:        filename,
		TableType:       docType,
		AcademicYear:    formValueOr(c, "academicYear", "-"),
		AcademicQuarter: formValueOr(c, "academicQuarter", "-"),
	}
	uploadID, err := database.InsertUploadMetadata(config.GetDB(), meta)
	if err != nil {
		log.WithError(err).Error("failed to record upload metadata")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record upload"})
	}

	if err := database.InsertStagedRows(config.GetDB(), mapping.StagingTable, cleaned.Headers, cleaned.Rows, uploadID); err != nil {
		log.WithError(err).WithField("upload_id", uploadID).Error("staging insert failed")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to stage uploaded rows"})
	}

	log.WithFields(logrus.Fields{"upload_id": uploadID, "rows": len(cleaned.Rows), "file": filename}).Info("file staged")
	return c.JSON(fiber.Map{
		"message":     "File uploaded successfully.",
		"upload_id":   uploadID,
		"rows_staged": len(cleaned.Rows),
	})
}

// ProcessUploadAPI validates a staged batch and promotes it to the master
// table. All-or-nothing: any failing row blocks the whole batch and the
// response carries every row's messages.
func ProcessUploadAPI(c *fiber.Ctx) error {
	var body struct {
		UploadID int64 `json:"upload_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.UploadID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "upload_id is required"})
	}

	result, err := promotion.ProcessUpload(config.GetDB(), body.UploadID)
	if err == promotion.ErrMetadataNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "No upload found for the given upload_id"})
	}
	if err != nil {
		logrus.WithError(err).WithField("upload_id", body.UploadID).Error("processing failed")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to process upload"})
	}

	if result.FailedCount > 0 {
		return c.Status(400).JSON(result)
	}
	return c.JSON(result)
}

// DownloadSampleAPI generates a blank spreadsheet template carrying the
// expected source headers for a document type and institute.
func DownloadSampleAPI(c *fiber.Ctx) error {
	docType := c.Query("fileType")
	instituteCode := c.Query("institution_code")
	mapping, err := schema.ForUpload(docType, instituteCode)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	headers := mapping.SourceHeaders()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
		width := float64(len(h)) + 4
		if width < 15 {
			width = 15
		}
		f.SetColWidth(sheet, col, col, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logrus.WithError(err).Error("failed to build sample template")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate sample file"})
	}

	name := mapping.StagingTable + ".xlsx"
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}

// readUploadedFile pulls the multipart file out of the request and reads it
// fully into memory. Returns a status code and message on failure.
func readUploadedFile(c *fiber.Ctx) ([]byte, string, int, string) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", 400, "No file was uploaded."
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", 500, "Failed to read the uploaded file."
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", 500, "Failed to read the uploaded file."
	}
	return data, fileHeader.Filename, 0, ""
}

func parseErrorResponse(c *fiber.Ctx, log *logrus.Entry, filename string, err error) error {
	log.WithError(err).WithField("file", filename).Warn("file parse failed")
	switch {
	case errors.Is(err, ingest.ErrUnsupportedFileType):
		return c.Status(400).JSON(fiber.Map{"error": "Unsupported file type. Please upload an Excel or CSV file."})
	case errors.Is(err, ingest.ErrHeaderNotFound):
		return c.Status(400).JSON(fiber.Map{"error": "Could not locate the header row. Please check that the file matches the selected institute and document type."})
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Failed to parse the uploaded file."})
	}
}

func formValueOr(c *fiber.Ctx, key, fallback string) string {
	if v := strings.TrimSpace(c.FormValue(key)); v != "" {
		return v
	}
	return fallback
}

// previewDateFormats mirrors the date shapes the source systems export.
var previewDateFormats = []string{"02/01/2006", "02-01-2006", "2006-01-02", "2006/01/02"}

// formatPreviewRows renders a cleaned table for display: date columns become
// DD-MM-YYYY or "N/A" when absent, every other absent value becomes a single
// space so the grid keeps its shape.
func formatPreviewRows(t *ingest.Table) []map[string]string {
	rows := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for j, field := range t.Headers {
			val := strings.TrimSpace(row[j])
			if schema.DateDisplayFields[field] {
				rec[field] = formatPreviewDate(val)
			} else if val == "" {
				rec[field] = " "
			} else {
				rec[field] = val
			}
		}
		rows[i] = rec
	}
	return rows
}

func formatPreviewDate(val string) string {
	if val == "" {
		return "N/A"
	}
	dateOnly := strings.SplitN(val, " ", 2)[0]
	for _, layout := range previewDateFormats {
		if t, err := time.Parse(layout, dateOnly); err == nil {
			return t.Format("02-01-2006")
		}
	}
	return "N/A"
}
