package reports

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
	"github.com/gofiber/fiber/v2"
)

// DownloadReport renders the month's Present rows as a downloadable
// Excel workbook or PDF document. Report generation reads then renders
// in one pass and can be slow for large months, so it runs entirely in
// this handler rather than touching shared state.
func DownloadReport(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month")
		format := c.Query("format")

		if month == "" || format == "" {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Month and format parameters are required",
			})
		}

		monthStart, err := time.Parse("2006-01", month)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid month. Use YYYY-MM"})
		}
		nextMonth := monthStart.AddDate(0, 1, 0)

		rows, err := database.GetMonthlyAttendance(db, monthStart, nextMonth)
		if err != nil {
			log.Printf("Error generating report: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error generating report"})
		}

		switch format {
		case "excel":
			buf, err := buildExcelReport(rows)
			if err != nil {
				log.Printf("Error generating report: %v", err)
				return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error generating report"})
			}
			c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-report-%s.xlsx"`, month))
			return c.Send(buf.Bytes())

		case "pdf":
			buf, err := buildPDFReport(rows, monthStart)
			if err != nil {
				log.Printf("Error generating report: %v", err)
				return c.Status(500).JSON(fiber.Map{"success": false, "error": "Error generating report"})
			}
			c.Set("Content-Type", "application/pdf")
			c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-report-%s.pdf"`, month))
			return c.Send(buf.Bytes())

		default:
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid format. Use 'excel' or 'pdf'"})
		}
	}
}

// reportSummary aggregates a month of attendance for the summary sheet.
type reportSummary struct {
	TotalRecords int
	Employees    []employeeCount
}

type employeeCount struct {
	Employee string
	Days     int
}

// summarize counts days present per employee, ordered by name so the
// rendered summary is stable.
func summarize(rows []database.ReportRow) reportSummary {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Employee]++
	}

	employees := make([]employeeCount, 0, len(counts))
	for employee, days := range counts {
		employees = append(employees, employeeCount{Employee: employee, Days: days})
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Employee < employees[j].Employee
	})

	return reportSummary{TotalRecords: len(rows), Employees: employees}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
