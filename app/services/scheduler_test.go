package services

import (
	"testing"
	"time"
)

func TestResetDue(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, time.June, 2, hour, minute, 30, 0, time.UTC)
	}

	tests := []struct {
		name      string
		now       time.Time
		hour      int
		minute    int
		lastFired string
		want      bool
	}{
		{"fires at midnight", at(0, 0), 0, 0, "", true},
		{"fires at configured time", at(1, 11), 1, 11, "", true},
		{"wrong hour", at(1, 0), 0, 0, "", false},
		{"wrong minute", at(0, 1), 0, 0, "", false},
		{"already fired today", at(0, 0), 0, 0, "2025-06-02", false},
		{"fired yesterday", at(0, 0), 0, 0, "2025-06-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resetDue(tt.now, tt.hour, tt.minute, tt.lastFired); got != tt.want {
				t.Errorf("resetDue(%v, %02d:%02d, %q) = %v, want %v",
					tt.now, tt.hour, tt.minute, tt.lastFired, got, tt.want)
			}
		})
	}
}
