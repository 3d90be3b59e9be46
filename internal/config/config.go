// Package config provides configuration for the chessrules command and
// session store.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Draw   DrawConfig   `yaml:"draw"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Perft  PerftConfig  `yaml:"perft"`

	// OutputFile receives reports; LogFile receives log lines.
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Workers is the number of goroutines for a parallel divide.
	Workers int `yaml:"workers"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Draw:       *NewDrawConfig(),
		Output:     *NewOutputConfig(),
		Log:        *NewLogConfig(),
		Perft:      PerftConfig{Workers: runtime.NumCPU()},
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, &errors.ParseError{Err: errors.ErrInvalidConfig, Input: "yaml", Got: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Draw.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.Perft.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be at least 1: %w", c.Perft.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
