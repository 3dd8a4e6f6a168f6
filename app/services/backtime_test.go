package services

import (
	"testing"
	"time"
)

// 2025-06-01 falls on a Sunday, so the first week of that June covers
// one of each weekday.
var kualaLumpur = time.FixedZone("MYT", 8*60*60)

func dayOf(day int) time.Time {
	return time.Date(2025, time.June, day, 10, 0, 0, 0, kualaLumpur)
}

func TestComputeBackTime(t *testing.T) {
	tests := []struct {
		name        string
		checkIn     string
		submittedAt time.Time
		wantCheckIn string
		wantBack    string
	}{
		{"sunday nine hour day", "07:30", dayOf(1), "7:30 AM", "4:30 PM"},
		{"monday nine hour day", "09:15", dayOf(2), "9:15 AM", "6:15 PM"},
		{"tuesday clamped to office start", "07:15", dayOf(3), "7:30 AM", "4:30 PM"},
		{"wednesday late check-in", "23:59", dayOf(4), "11:59 PM", "8:59 AM"},
		{"thursday short day", "08:00", dayOf(5), "8:00 AM", "3:30 PM"},
		{"thursday clamped", "06:00", dayOf(5), "7:30 AM", "3:00 PM"},
		{"friday has no policy", "10:05", dayOf(6), "10:05 AM", ""},
		{"saturday has no policy", "09:00", dayOf(7), "9:00 AM", ""},
		{"midnight clamped", "00:00", dayOf(2), "7:30 AM", "4:30 PM"},
		{"afternoon check-in", "14:45", dayOf(3), "2:45 PM", "11:45 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBackTime(tt.checkIn, tt.submittedAt, kualaLumpur)
			if err != nil {
				t.Fatalf("ComputeBackTime(%q) returned error: %v", tt.checkIn, err)
			}
			if got.CheckInTime != tt.wantCheckIn {
				t.Errorf("check-in time = %q, want %q", got.CheckInTime, tt.wantCheckIn)
			}
			if got.BackTime != tt.wantBack {
				t.Errorf("back time = %q, want %q", got.BackTime, tt.wantBack)
			}
		})
	}
}

func TestComputeBackTimeRejectsMalformedInput(t *testing.T) {
	malformed := []string{"", "930", "9.30", "25:00", "09:65", "abc", "12:34:56"}

	for _, checkIn := range malformed {
		if _, err := ComputeBackTime(checkIn, dayOf(2), kualaLumpur); err == nil {
			t.Errorf("ComputeBackTime(%q) accepted malformed input", checkIn)
		}
	}
}
