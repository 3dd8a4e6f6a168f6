package services

import (
	"errors"
	"time"
)

// Office opens at 07:30; earlier check-ins count from opening time.
const (
	officeStartHour   = 7
	officeStartMinute = 30
)

// ErrInvalidCheckInTime rejects a check-in time that is not a valid
// 24-hour HH:MM value.
var ErrInvalidCheckInTime = errors.New("check-in time must be HH:MM (24-hour)")

// BackTimeResult carries the normalized check-in time and the expected
// back time, both formatted 12-hour with AM/PM. BackTime is empty when
// no policy covers the check-in weekday.
type BackTimeResult struct {
	CheckInTime string
	BackTime    string
}

// ComputeBackTime derives the expected back time for a check-in submitted
// on the given day. Check-ins before office start are clamped to 07:30.
// Sunday through Wednesday are full nine-hour days, Thursday is half an
// hour shorter. Friday and Saturday carry no rule, so no back time is
// produced for them.
func ComputeBackTime(checkIn string, submittedAt time.Time, loc *time.Location) (*BackTimeResult, error) {
	parsed, err := time.Parse("15:04", checkIn)
	if err != nil {
		return nil, ErrInvalidCheckInTime
	}

	day := submittedAt.In(loc)
	effective := time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)
	officeStart := time.Date(day.Year(), day.Month(), day.Day(), officeStartHour, officeStartMinute, 0, 0, loc)
	if effective.Before(officeStart) {
		effective = officeStart
	}

	result := &BackTimeResult{CheckInTime: effective.Format("3:04 PM")}

	switch day.Weekday() {
	case time.Sunday, time.Monday, time.Tuesday, time.Wednesday:
		result.BackTime = effective.Add(9 * time.Hour).Format("3:04 PM")
	case time.Thursday:
		result.BackTime = effective.Add(7*time.Hour + 30*time.Minute).Format("3:04 PM")
	}

	return result, nil
}
