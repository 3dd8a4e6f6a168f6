package reports

import (
	"testing"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
)

func sampleRows() []database.ReportRow {
	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	return []database.ReportRow{
		{Employee: "Siti", CheckInTime: "8:00 AM", BackTime: "5:00 PM", StartDate: day(1)},
		{Employee: "Ali", CheckInTime: "7:30 AM", BackTime: "4:30 PM", StartDate: day(1)},
		{Employee: "Ali", CheckInTime: "8:15 AM", BackTime: "5:15 PM", StartDate: day(2)},
		{Employee: "Ben", CheckInTime: "8:00 AM", BackTime: "", StartDate: day(6)},
	}
}

func TestSummarize(t *testing.T) {
	summary := summarize(sampleRows())

	if summary.TotalRecords != 4 {
		t.Errorf("total records = %d, want 4", summary.TotalRecords)
	}
	if len(summary.Employees) != 3 {
		t.Fatalf("unique employees = %d, want 3", len(summary.Employees))
	}

	want := []employeeCount{
		{Employee: "Ali", Days: 2},
		{Employee: "Ben", Days: 1},
		{Employee: "Siti", Days: 1},
	}
	for i, entry := range summary.Employees {
		if entry != want[i] {
			t.Errorf("employees[%d] = %+v, want %+v", i, entry, want[i])
		}
	}
}

func TestSummarizeEmptyMonth(t *testing.T) {
	summary := summarize(nil)
	if summary.TotalRecords != 0 || len(summary.Employees) != 0 {
		t.Errorf("empty month produced %+v", summary)
	}
}

func TestBuildExcelReport(t *testing.T) {
	buf, err := buildExcelReport(sampleRows())
	if err != nil {
		t.Fatalf("buildExcelReport: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty workbook")
	}
}

func TestBuildPDFReport(t *testing.T) {
	buf, err := buildPDFReport(sampleRows(), time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("buildPDFReport: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty document")
	}
}
