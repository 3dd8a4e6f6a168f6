package reports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes sets up the monthly report download route
func SetupReportRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/download-report", DownloadReport(db))
}
