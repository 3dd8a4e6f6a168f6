package models

// AttendanceRecord is a single "Present" entry for one employee on one day.
// CheckInTime and BackTime are stored pre-formatted in 12-hour clock;
// BackTime is nil when no back-time policy applies to the check-in day.
type AttendanceRecord struct {
	ID          int     `json:"id"`
	Employee    string  `json:"employee"`
	Status      string  `json:"status"`
	CheckInTime string  `json:"check_in_time"`
	BackTime    *string `json:"back_time"`
	StartDate   string  `json:"start_date"`
}

// OutstationRecord is a travel entry covering a date range. The PIN is a
// bcrypt hash and never leaves the server.
type OutstationRecord struct {
	ID          int    `json:"id"`
	Employee    string `json:"employee"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PIN         string `json:"-"`
}

const (
	StatusPresent    = "Present"
	StatusOutstation = "Outstation"
)
