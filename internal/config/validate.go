package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/auth"
	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if c.Storage.StorageDriver() == domain.StorageDriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the postgres storage driver")
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}

	if c.Auth.Enabled() {
		if strings.TrimSpace(c.Auth.User) == "" {
			return fmt.Errorf("auth.user must not be empty when a password hash is set")
		}
		if _, err := auth.ParseHash(c.Auth.WritePasswordHash); err != nil {
			return fmt.Errorf("auth.write_password_hash: %w", err)
		}
	}

	return nil
}

func (s *ScheduleConfig) validate() error {
	anchor, err := domain.ParseDate(strings.TrimSpace(s.AnchorDate))
	if err != nil {
		return fmt.Errorf("anchor_date: %w", err)
	}
	s.Anchor = anchor

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.StorageDriver() {
	case domain.StorageDriverMemory, domain.StorageDriverPostgres:
	case domain.StorageDriverFile:
		if strings.TrimSpace(s.Dir) == "" {
			return fmt.Errorf("dir is required for the file driver")
		}
	case domain.StorageDriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want memory, file, postgres or sqlite)", s.Driver)
	}

	if strings.TrimSpace(s.RecordName) == "" {
		return fmt.Errorf("record_name must not be empty")
	}
	if s.RetentionDays < 1 {
		return fmt.Errorf("retention_days must be >= 1 (got %d)", s.RetentionDays)
	}
	return nil
}

func (r *ReminderConfig) validate() error {
	if r.Enabled {
		if err := ValidateClock(r.At); err != nil {
			return fmt.Errorf("at: %w", err)
		}
	}
	if r.AlarmTime != "" {
		if err := ValidateClock(r.AlarmTime); err != nil {
			return fmt.Errorf("alarm_time: %w", err)
		}
	}
	return nil
}

// ValidateClock checks a 24-hour "HH:MM" time of day.
func ValidateClock(s string) error {
	if len(s) != 5 {
		return fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time %q: %w", s, err)
	}
	return nil
}
