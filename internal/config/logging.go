package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error or disabled.
	Level string `yaml:"level"`

	// JSON writes one JSON object per line instead of console text.
	JSON bool `yaml:"json"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn"}
}

// Validate checks the level name.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// NewLogger builds a logger writing to w.
func (l *LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if !l.JSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
