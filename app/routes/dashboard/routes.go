package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the page routes
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", renderIndexPage)
	app.Get("/dashboard", renderDashboardPage)
}

func renderIndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":       "Office Attendance",
		"CurrentPage": "home",
		"Today":       time.Now().Format("2006-01-02"),
	})
}

func renderDashboardPage(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{
		"Title":       "Live Dashboard - Office Attendance",
		"CurrentPage": "dashboard",
	})
}
