// Package config resolves the bootstrap settings salah needs before it can
// open its database: where the database and log file live and how much to log.
//
// Priority: CLI flags > environment (optionally loaded from a .env file) > defaults.
// User preferences (time format, missed-day marking, start view) are not
// here; they live in the database settings table.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	dirName     = "salah"
	dbFileName  = "salah.db"
	logFileName = "salah.log"

	EnvDBPath   = "SALAH_DB_PATH"
	EnvLogPath  = "SALAH_LOG_PATH"
	EnvLogLevel = "SALAH_LOG_LEVEL"
)

// LogLevels lists the accepted values of LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error", "disabled"}

type Config struct {
	DBPath   string `validate:"required"`
	LogPath  string `validate:"required"`
	LogLevel string `validate:"required,oneof=debug info warn error disabled"`
}

var validate = validator.New()

// Dir returns the directory holding salah's database and log, under the
// user's config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, dirName), nil
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DBPath:   filepath.Join(dir, dbFileName),
		LogPath:  filepath.Join(dir, logFileName),
		LogLevel: "info",
	}, nil
}

// Load builds the configuration from defaults and the environment. The
// given .env files (".env" when none are named) are read first; missing
// files are skipped and variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	cfg.DBPath = getEnv(EnvDBPath, cfg.DBPath)
	cfg.LogPath = getEnv(EnvLogPath, cfg.LogPath)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every path is set and the log level is known.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
