package reports

import (
	"bytes"
	"fmt"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
	"github.com/xuri/excelize/v2"
)

// buildExcelReport writes the attendance sheet plus a summary sheet with
// per-employee day counts.
func buildExcelReport(rows []database.ReportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Employee Name", "Check-in Time", "Check-out Time"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.StartDate.Format("02/01/2006"),
			row.Employee,
			orNA(row.CheckInTime),
			orNA(row.BackTime),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "D", 15)

	if err := writeSummarySheet(f, summarize(rows)); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func writeSummarySheet(f *excelize.File, summary reportSummary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Summary")
	f.SetCellValue(sheet, "A3", "Total Attendance Records")
	f.SetCellValue(sheet, "B3", summary.TotalRecords)
	f.SetCellValue(sheet, "A4", "Unique Employees")
	f.SetCellValue(sheet, "B4", len(summary.Employees))

	f.SetCellValue(sheet, "A6", "Employee Summary")
	f.SetCellValue(sheet, "A7", "Employee Name")
	f.SetCellValue(sheet, "B7", "Days Present")

	for i, entry := range summary.Employees {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+8), entry.Employee)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+8), entry.Days)
	}

	return nil
}
