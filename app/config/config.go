package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings, read from the environment.
type Config struct {
	Env             string
	Addr            string
	DataDir         string
	BackupDir       string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Env:             getEnv("QUILL_ENV", "development"),
		Addr:            getEnv("QUILL_ADDR", ":8080"),
		DataDir:         getEnv("QUILL_DATA_DIR", filepath.Join("data", "badger")),
		BackupDir:       getEnv("QUILL_BACKUP_DIR", filepath.Join("data", "backups")),
		LogLevel:        getEnv("QUILL_LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvDuration("QUILL_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Env, validation.Required, validation.In("development", "test", "production")),
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.BackupDir, validation.Required),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0)).Exclusive()),
	)
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return -1
	}
	return d
}
