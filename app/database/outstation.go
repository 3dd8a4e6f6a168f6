package database

import (
	"database/sql"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/models"
	"golang.org/x/crypto/bcrypt"
)

// CreateOutstation inserts one outstation row, hashing the PIN before it
// is stored, and assigns the record id.
func CreateOutstation(db *sql.DB, record *models.OutstationRecord, pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query := `INSERT INTO outstation (employee, destination, start_date, end_date, pin)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return db.QueryRow(
		query,
		record.Employee,
		record.Destination,
		record.StartDate,
		record.EndDate,
		string(hash),
	).Scan(&record.ID)
}

// GetOutstations retrieves all outstation records, newest first.
func GetOutstations(db *sql.DB) ([]*models.OutstationRecord, error) {
	query := `SELECT id, employee, destination,
			  to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
			  FROM outstation
			  ORDER BY id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*models.OutstationRecord, 0)
	for rows.Next() {
		record := &models.OutstationRecord{}
		if err := rows.Scan(
			&record.ID, &record.Employee, &record.Destination,
			&record.StartDate, &record.EndDate,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// DeleteOutstation removes the record only when the supplied PIN matches
// the stored one, or equals the master override.
func DeleteOutstation(db *sql.DB, id int, pin, masterPIN string) error {
	var storedHash string
	err := db.QueryRow(`SELECT pin FROM outstation WHERE id = $1`, id).Scan(&storedHash)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !pinAuthorized(storedHash, pin, masterPIN) {
		return ErrInvalidPIN
	}

	_, err = db.Exec(`DELETE FROM outstation WHERE id = $1`, id)
	return err
}

func pinAuthorized(storedHash, supplied, masterPIN string) bool {
	if supplied == masterPIN {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(supplied)) == nil
}
