package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
	"github.com/go-pdf/fpdf"
)

// buildPDFReport renders the month's attendance as a simple table with
// a summary header, paginating as rows run past the page.
func buildPDFReport(rows []database.ReportRow, monthStart time.Time) (*bytes.Buffer, error) {
	summary := summarize(rows)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", monthStart.Format("January 2006")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Total Attendance Records: %d", summary.TotalRecords))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Unique Employees: %d", len(summary.Employees)))
	pdf.Ln(12)

	writeTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 10)
		}

		employee := row.Employee
		if len(employee) > 28 {
			employee = employee[:28] + "..."
		}

		pdf.CellFormat(30, 8, row.StartDate.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, employee, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, orNA(row.CheckInTime), "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, orNA(row.BackTime), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 8, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Employee Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Check-in", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Check-out", "B", 1, "L", false, 0, "")
}
