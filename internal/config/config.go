package config

import (
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Auth      AuthConfig      `yaml:"auth"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// RateLimitConfig limits mutating requests per client IP.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// ScheduleConfig holds the watering schedule origin and the local zone.
type ScheduleConfig struct {
	AnchorDate string `yaml:"anchor_date" env:"SCHEDULE_ANCHOR_DATE" env-default:"2025-06-06"`
	Timezone   string `yaml:"timezone"    env:"SCHEDULE_TIMEZONE"    env-default:"UTC"`

	// Anchor is parsed from AnchorDate during validation.
	Anchor domain.Date `yaml:"-" env:"-"`
	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// StorageConfig selects where ledger snapshots are persisted.
type StorageConfig struct {
	Driver        string `yaml:"driver"         env:"STORAGE_DRIVER"         env-default:"file"`
	Dir           string `yaml:"dir"            env:"STORAGE_DIR"            env-default:"./data"`
	SQLitePath    string `yaml:"sqlite_path"    env:"STORAGE_SQLITE_PATH"    env-default:"./data/plantwater.db"`
	RecordName    string `yaml:"record_name"    env:"STORAGE_RECORD_NAME"    env-default:"plantWateringHistory"`
	RetentionDays int    `yaml:"retention_days" env:"STORAGE_RETENTION_DAYS" env-default:"730"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is only required
// for the postgres storage driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ReminderConfig controls the daily reminder job and ICS alarms.
type ReminderConfig struct {
	Enabled   bool   `yaml:"enabled"    env:"REMINDER_ENABLED"    env-default:"false"`
	At        string `yaml:"at"         env:"REMINDER_AT"         env-default:"08:00"`
	AlarmTime string `yaml:"alarm_time" env:"REMINDER_ALARM_TIME"`
}

// AuthConfig protects mutating routes with HTTP Basic auth. An empty
// WritePasswordHash leaves them open.
type AuthConfig struct {
	User              string `yaml:"user"                env:"AUTH_USER"                env-default:"gardener"`
	WritePasswordHash string `yaml:"write_password_hash" env:"AUTH_WRITE_PASSWORD_HASH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageDriver returns the configured driver as a domain value.
func (c StorageConfig) StorageDriver() domain.StorageDriver {
	return domain.StorageDriver(c.Driver)
}

// Enabled reports whether write routes require credentials.
func (c AuthConfig) Enabled() bool {
	return c.WritePasswordHash != ""
}
