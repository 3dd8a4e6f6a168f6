package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the attendance, outstation and notice tables if
// they do not exist yet.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			employee TEXT NOT NULL,
			status TEXT NOT NULL,
			check_in_time TEXT,
			back_time TEXT,
			start_date DATE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outstation (
			id SERIAL PRIMARY KEY,
			employee VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			pin VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notice (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT,
			notice_date TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
