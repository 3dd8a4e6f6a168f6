package main

import (
	"log"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/config"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/realtime"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/routes/attendance"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/routes/dashboard"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/routes/live"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/routes/notices"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/routes/reports"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

// customErrorHandler returns JSON for API requests and a rendered error
// page for everything else
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Office Attendance",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.Load()

	// Set the process time zone to the office zone; back-time policy and
	// the daily reset both run against local wall-clock time.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Warning: Failed to load %s location, falling back to UTC+8: %v", cfg.Timezone, err)
		time.Local = time.FixedZone("MYT", 8*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Start the change-event hub and the daily reset scheduler
	hub := realtime.NewHub()
	go hub.Run()

	resetHour, resetMinute := cfg.ResetClock()
	services.StartScheduler(db, resetHour, resetMinute)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Routes
	dashboard.SetupDashboardRoutes(app)
	attendance.SetupAttendanceRoutes(app, db, hub, cfg)
	notices.SetupNoticeRoutes(app, db, hub)
	reports.SetupReportRoutes(app, db)
	live.SetupLiveRoutes(app, hub)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
