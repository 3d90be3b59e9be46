package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is text, json or pgn.
	Format string `yaml:"format"`

	// Notation is the PGN move notation: san, lalg or halg.
	Notation string `yaml:"notation"`

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength int `yaml:"max_line_length"`

	// Colour is auto, always or never.
	Colour string `yaml:"colour"`

	// Unicode draws pieces with chess symbols.
	Unicode bool `yaml:"unicode"`

	// Flip draws the board from Black's side.
	Flip bool `yaml:"flip"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        string(output.FormatText),
		Notation:      "san",
		MaxLineLength: 80,
		Colour:        ColourAuto,
	}
}

// Colour modes.
const (
	ColourAuto   = "auto"
	ColourAlways = "always"
	ColourNever  = "never"
)

// Validate checks the format, notation and colour names.
func (o *OutputConfig) Validate() error {
	if _, err := output.ParseFormat(o.Format); err != nil {
		return err
	}
	if _, err := output.ParseNotation(o.Notation); err != nil {
		return err
	}
	switch o.Colour {
	case ColourAuto, ColourAlways, ColourNever:
	default:
		return fmt.Errorf("colour mode %q: %w", o.Colour, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 0 {
		return fmt.Errorf("max line length (%d) is negative: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}

// UseColour resolves the colour mode given whether output is a terminal.
func (o *OutputConfig) UseColour(terminal bool) bool {
	switch o.Colour {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return terminal
	}
}

// Options converts the configuration for the output writers. Invalid names
// fall back to defaults; call Validate first.
func (o *OutputConfig) Options(terminal bool) output.Options {
	notation, _ := output.ParseNotation(o.Notation)
	return output.Options{
		Board: output.BoardOptions{
			Unicode: o.Unicode,
			Colour:  o.UseColour(terminal),
			Flip:    o.Flip,
		},
		PGN: output.PGNOptions{
			Notation:      notation,
			MaxLineLength: o.MaxLineLength,
		},
	}
}
