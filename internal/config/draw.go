package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// DrawConfig holds the optional draw rules.
type DrawConfig struct {
	// FiftyMove ends the game after FiftyMoveLimit half-moves without a
	// pawn move or capture.
	FiftyMove      bool `yaml:"fifty_move"`
	FiftyMoveLimit int  `yaml:"fifty_move_limit"`

	// Repetition ends the game when a position occurs RepetitionCount times.
	Repetition      bool `yaml:"repetition"`
	RepetitionCount int  `yaml:"repetition_count"`

	InsufficientMaterial bool `yaml:"insufficient_material"`
}

// NewDrawConfig creates a DrawConfig with every rule disabled and standard
// limits.
func NewDrawConfig() *DrawConfig {
	return &DrawConfig{
		FiftyMoveLimit:  engine.DefaultFiftyMoveLimit,
		RepetitionCount: engine.DefaultRepetitionCount,
	}
}

// Validate checks that the limits are usable.
func (d *DrawConfig) Validate() error {
	if d.FiftyMoveLimit < 1 {
		return fmt.Errorf("fifty-move limit (%d) must be positive: %w", d.FiftyMoveLimit, errors.ErrInvalidConfig)
	}
	if d.RepetitionCount < 2 {
		return fmt.Errorf("repetition count (%d) must be at least 2: %w", d.RepetitionCount, errors.ErrInvalidConfig)
	}
	return nil
}

// EnableAll turns on every rule.
func (d *DrawConfig) EnableAll() {
	d.FiftyMove = true
	d.Repetition = true
	d.InsufficientMaterial = true
}

// Rules converts the configuration for a game.
func (d *DrawConfig) Rules() game.DrawRules {
	return game.DrawRules{
		FiftyMove:            d.FiftyMove,
		FiftyMoveLimit:       d.FiftyMoveLimit,
		Repetition:           d.Repetition,
		RepetitionCount:      d.RepetitionCount,
		InsufficientMaterial: d.InsufficientMaterial,
	}
}
