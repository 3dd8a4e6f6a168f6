package notices

import (
	"database/sql"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/realtime"
	"github.com/gofiber/fiber/v2"
)

// SetupNoticeRoutes sets up the notice board routes
func SetupNoticeRoutes(app *fiber.App, db *sql.DB, hub *realtime.Hub) {
	app.Post("/submit-notice", SubmitNotice(db, hub))
	app.Get("/notice", GetNotices(db))
	app.Delete("/notice/:id", DeleteNotice(db, hub))
}
