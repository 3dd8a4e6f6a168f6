package attendance

import (
	"database/sql"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/config"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/realtime"
	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up the attendance and outstation routes
func SetupAttendanceRoutes(app *fiber.App, db *sql.DB, hub *realtime.Hub, cfg *config.Config) {
	app.Post("/submit-attendance", SubmitAttendance(db, hub, cfg))
	app.Get("/present", GetPresent(db, cfg))
	app.Get("/outstation", GetOutstations(db))
	app.Delete("/outstation/:id", DeleteOutstation(db, hub, cfg))
}
