package database

import (
	"database/sql"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/models"
)

// CreateNotice adds a new notice to the board and assigns its id.
func CreateNotice(db *sql.DB, notice *models.NoticeRecord) error {
	query := `INSERT INTO notice (title, content, notice_date)
			  VALUES ($1, $2, $3) RETURNING id`

	return db.QueryRow(query, notice.Title, notice.Content, notice.NoticeDate).Scan(&notice.ID)
}

// GetNotices retrieves all notices.
func GetNotices(db *sql.DB) ([]*models.NoticeRecord, error) {
	query := `SELECT id, title, COALESCE(content, ''), COALESCE(notice_date, '') FROM notice ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := make([]*models.NoticeRecord, 0)
	for rows.Next() {
		notice := &models.NoticeRecord{}
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.NoticeDate); err != nil {
			return nil, err
		}
		notices = append(notices, notice)
	}
	return notices, rows.Err()
}

// DeleteNotice deletes a notice by id.
func DeleteNotice(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM notice WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
