package attendance

import (
	"database/sql"
	"log"
	"strconv"
	"time"

	"github.com/MAH-7/Attendance-Outstation-Tracker/app/config"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/database"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/models"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/realtime"
	"github.com/MAH-7/Attendance-Outstation-Tracker/app/services"
	"github.com/gofiber/fiber/v2"
)

type submitRequest struct {
	Employee    string `form:"employee" json:"employee"`
	Status      string `form:"status" json:"status"`
	Destination string `form:"destination" json:"destination"`
	StartDate   string `form:"start_date" json:"start_date"`
	EndDate     string `form:"end_date" json:"end_date"`
	CheckInTime string `form:"check_in_time" json:"check_in_time"`
	PIN         string `form:"pin" json:"pin"`
}

// SubmitAttendance handles the submission form for both statuses. A
// Present entry gets its back time computed before it is persisted; an
// Outstation entry carries a destination, a date range and a delete PIN.
func SubmitAttendance(db *sql.DB, hub *realtime.Hub, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req submitRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}
		if req.Employee == "" {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Employee name is required"})
		}

		switch req.Status {
		case models.StatusPresent:
			return submitPresent(c, db, hub, &req)
		case models.StatusOutstation:
			return submitOutstation(c, db, hub, &req)
		default:
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid status"})
		}
	}
}

func submitPresent(c *fiber.Ctx, db *sql.DB, hub *realtime.Hub, req *submitRequest) error {
	now := time.Now()
	record := &models.AttendanceRecord{
		Employee:  req.Employee,
		Status:    models.StatusPresent,
		StartDate: now.Format("2006-01-02"),
	}

	if req.CheckInTime != "" {
		result, err := services.ComputeBackTime(req.CheckInTime, now, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		record.CheckInTime = result.CheckInTime
		if result.BackTime != "" {
			record.BackTime = &result.BackTime
		}
	}

	if err := database.CreateAttendance(db, record); err != nil {
		log.Printf("Error inserting attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	hub.Publish(realtime.EventNewAttendance, fiber.Map{
		"id":            record.ID,
		"employee":      record.Employee,
		"status":        record.Status,
		"check_in_time": record.CheckInTime,
		"back_time":     record.BackTime,
		"start_date":    record.StartDate,
	})

	return c.Redirect("/")
}

func submitOutstation(c *fiber.Ctx, db *sql.DB, hub *realtime.Hub, req *submitRequest) error {
	if req.Destination == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Destination is required"})
	}
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid start date"})
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid end date"})
	}
	if !validPIN(req.PIN) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "PIN must be 4 digits"})
	}

	record := &models.OutstationRecord{
		Employee:    req.Employee,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := database.CreateOutstation(db, record, req.PIN); err != nil {
		log.Printf("Error inserting outstation: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	hub.Publish(realtime.EventNewOutstation, fiber.Map{
		"id":          record.ID,
		"employee":    record.Employee,
		"destination": record.Destination,
		"start_date":  record.StartDate,
		"end_date":    record.EndDate,
	})

	return c.Redirect("/")
}

// GetPresent returns the employees marked Present today.
func GetPresent(db *sql.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := time.Now().Format("2006-01-02")
		entries, err := database.GetPresentByDate(db, today)
		if err != nil {
			log.Printf("Error fetching present employees: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(entries)
	}
}

// GetOutstations returns all outstation records, newest first.
func GetOutstations(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := database.GetOutstations(db)
		if err != nil {
			log.Printf("Error fetching outstation employees: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(records)
	}
}

// DeleteOutstation removes an outstation record after checking the PIN
// supplied in the request body against the stored one.
func DeleteOutstation(db *sql.DB, hub *realtime.Hub, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid record ID"})
		}

		var body struct {
			PIN string `form:"pin" json:"pin"`
		}
		// An empty body means an empty PIN; only a malformed one is rejected.
		if err := c.BodyParser(&body); err != nil && err != fiber.ErrUnprocessableEntity {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}

		switch err := database.DeleteOutstation(db, id, body.PIN, cfg.MasterPIN); err {
		case nil:
		case database.ErrNotFound:
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Record not found"})
		case database.ErrInvalidPIN:
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Invalid PIN"})
		default:
			log.Printf("Error deleting outstation entry: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
		}

		hub.Publish(realtime.EventDeleteOutstation, fiber.Map{"id": id})
		return c.JSON(fiber.Map{"success": true, "message": "Outstation record deleted successfully"})
	}
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
