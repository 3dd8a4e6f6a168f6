package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
)

type Config struct {
	Port     string
	Timezone string

	// ResetTime is the local wall-clock time ("HH:MM") at which the
	// daily attendance reset fires.
	ResetTime string

	// MasterPIN deletes any outstation record regardless of its stored
	// PIN. Shared static override -- see DESIGN.md open questions.
	MasterPIN string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:     get("PORT", "3000"),
		Timezone: get("TIMEZONE", "Asia/Kuala_Lumpur"),

		ResetTime: get("RESET_TIME", "00:00"),
		MasterPIN: get("MASTER_PIN", "9999"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", "attendance"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),
	}
}

func (c *Config) DSN() string {
	// DATABASE_URL wins when set (hosted Postgres deployments).
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// ResetClock parses ResetTime into hour and minute, falling back to
// midnight if the value is malformed.
func (c *Config) ResetClock() (int, int) {
	parts := strings.SplitN(c.ResetTime, ":", 2)
	if len(parts) != 2 {
		log.Printf("Invalid RESET_TIME %q, defaulting to midnight", c.ResetTime)
		return 0, 0
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		log.Printf("Invalid RESET_TIME %q, defaulting to midnight", c.ResetTime)
		return 0, 0
	}
	return hour, minute
}

// InitDB opens the Postgres connection pool and verifies it with a ping.
// The caller owns the handle and closes it at shutdown.
func InitDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Database connected successfully")
	return db, nil
}
