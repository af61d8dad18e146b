// Package logging configures the global zerolog logger. The TUI owns the
// terminal, so log lines go to a file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch s {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

// Setup points the global logger at the file at path, appending, and sets
// the global level. The returned Closer releases the file. With level
// "disabled" no file is created.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if lvl == zerolog.Disabled {
		log.Logger = zerolog.Nop()
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
