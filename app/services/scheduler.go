package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
)

// StartScheduler starts the daily attendance reset loop. Present rows
// are wiped when the local clock reaches the configured reset time; a
// reset that errors is logged and not retried until the next day.
func StartScheduler(db *sql.DB, resetHour, resetMinute int) {
	go func() {
		log.Printf("Scheduler started, daily reset at %02d:%02d...", resetHour, resetMinute)
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		var lastFired string
		for range ticker.C {
			now := time.Now()
			if !resetDue(now, resetHour, resetMinute, lastFired) {
				continue
			}
			lastFired = now.Format("2006-01-02")

			log.Println("Triggering daily attendance reset...")
			if err := database.ResetPresent(db); err != nil {
				log.Printf("Error resetting attendance records: %v", err)
			} else {
				log.Println("Attendance records reset successfully.")
			}
		}
	}()
}

// resetDue reports whether the reset should fire at now. lastFired holds
// the date the reset last ran, so a day fires at most once even if the
// ticker lands on the trigger minute twice.
func resetDue(now time.Time, hour, minute int, lastFired string) bool {
	if now.Hour() != hour || now.Minute() != minute {
		return false
	}
	return now.Format("2006-01-02") != lastFired
}
