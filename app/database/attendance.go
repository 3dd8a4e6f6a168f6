package database

import (
	"database/sql"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/models"
)

// PresentEmployee is the shape the dashboard listing renders: who is in,
// when they arrived, when they are expected back.
type PresentEmployee struct {
	Employee    string  `json:"employee"`
	CheckInTime string  `json:"check_in_time"`
	BackTime    *string `json:"back_time"`
}

// CreateAttendance inserts one Present row and assigns its id.
func CreateAttendance(db *sql.DB, record *models.AttendanceRecord) error {
	query := `INSERT INTO attendance (employee, status, check_in_time, back_time, start_date)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return db.QueryRow(
		query,
		record.Employee,
		record.Status,
		record.CheckInTime,
		record.BackTime,
		record.StartDate,
	).Scan(&record.ID)
}

// GetPresentByDate retrieves the employees marked Present on the given day.
func GetPresentByDate(db *sql.DB, date string) ([]PresentEmployee, error) {
	query := `SELECT employee, COALESCE(check_in_time, ''), back_time
			  FROM attendance
			  WHERE status = 'Present' AND start_date = $1
			  ORDER BY id`

	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]PresentEmployee, 0)
	for rows.Next() {
		var e PresentEmployee
		var backTime sql.NullString
		if err := rows.Scan(&e.Employee, &e.CheckInTime, &backTime); err != nil {
			return nil, err
		}
		if backTime.Valid {
			e.BackTime = &backTime.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ResetPresent deletes every Present row. Outstation and notice rows are
// never touched by the reset.
func ResetPresent(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM attendance WHERE status = 'Present'`)
	return err
}

// ReportRow is one attendance entry in a monthly report.
type ReportRow struct {
	Employee    string
	CheckInTime string
	BackTime    string
	StartDate   time.Time
}

// GetMonthlyAttendance retrieves all Present rows whose start_date falls
// inside the given month, ordered by date then employee.
func GetMonthlyAttendance(db *sql.DB, monthStart, nextMonth time.Time) ([]ReportRow, error) {
	query := `SELECT employee, COALESCE(check_in_time, ''), COALESCE(back_time, ''), start_date
			  FROM attendance
			  WHERE status = 'Present' AND start_date >= $1 AND start_date < $2
			  ORDER BY start_date, employee`

	rows, err := db.Query(query, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []ReportRow
	for rows.Next() {
		var r ReportRow
		if err := rows.Scan(&r.Employee, &r.CheckInTime, &r.BackTime, &r.StartDate); err != nil {
			return nil, err
		}
		report = append(report, r)
	}
	return report, rows.Err()
}
