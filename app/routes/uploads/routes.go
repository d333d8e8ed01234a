package uploads

import (
	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	app.Get("/institutes", GetInstitutesAPI)       // Institute picker options
	app.Post("/check_filename", CheckFilenameAPI)  // Duplicate filename guard
	app.Post("/preview", PreviewFileAPI)           // Parse + coalesce, no writes
	app.Post("/upload", UploadFileAPI)             // Stage rows + record metadata
	app.Post("/process_upload", ProcessUploadAPI)  // Validate + promote a batch
	app.Get("/download_sample", DownloadSampleAPI) // Blank template for a scope
}
