package notices

import (
	"database/sql"
	"log"
	"strconv"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/models"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/realtime"
	"github.com/gofiber/fiber/v2"
)

type noticeRequest struct {
	Title      string `form:"title" json:"title"`
	Content    string `form:"content" json:"content"`
	NoticeDate string `form:"notice_date" json:"notice_date"`
}

// SubmitNotice posts a new notice to the board. The submitted date is
// stored as a "02 January" display string, dropping the year.
func SubmitNotice(db *sql.DB, hub *realtime.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req noticeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}
		if req.Title == "" {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title is required"})
		}

		displayDate, err := formatNoticeDate(req.NoticeDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid notice date"})
		}

		notice := &models.NoticeRecord{
			Title:      req.Title,
			Content:    req.Content,
			NoticeDate: displayDate,
		}

		if err := database.CreateNotice(db, notice); err != nil {
			log.Printf("Error inserting notice: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
		}

		hub.Publish(realtime.EventNewNotice, fiber.Map{
			"id":          notice.ID,
			"title":       notice.Title,
			"content":     notice.Content,
			"notice_date": notice.NoticeDate,
		})

		return c.Redirect("/")
	}
}

// GetNotices returns all notices.
func GetNotices(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := database.GetNotices(db)
		if err != nil {
			log.Printf("Error fetching notices: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(records)
	}
}

// DeleteNotice deletes a notice by id.
func DeleteNotice(db *sql.DB, hub *realtime.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid notice ID"})
		}

		switch err := database.DeleteNotice(db, id); err {
		case nil:
		case database.ErrNotFound:
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Notice not found"})
		default:
			log.Printf("Error deleting notice: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
		}

		hub.Publish(realtime.EventDeleteNotice, fiber.Map{"id": id})
		return c.JSON(fiber.Map{"success": true, "message": "Notice deleted successfully"})
	}
}

// formatNoticeDate converts a YYYY-MM-DD form value into the board's
// day-and-month display format.
func formatNoticeDate(value string) (string, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "", err
	}
	return date.Format("02 January"), nil
}
