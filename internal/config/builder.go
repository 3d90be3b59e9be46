package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithNotation sets the PGN move notation.
func (b *ConfigBuilder) WithNotation(notation string) *ConfigBuilder {
	b.cfg.Output.Notation = notation
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithColour sets the colour mode.
func (b *ConfigBuilder) WithColour(mode string) *ConfigBuilder {
	b.cfg.Output.Colour = mode
	return b
}

// WithUnicode enables chess symbols.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithFiftyMoveRule enables the fifty-move rule with the given half-move limit.
func (b *ConfigBuilder) WithFiftyMoveRule(enabled bool, limit int) *ConfigBuilder {
	b.cfg.Draw.FiftyMove = enabled
	if limit > 0 {
		b.cfg.Draw.FiftyMoveLimit = limit
	}
	return b
}

// WithRepetition enables draw by repetition after count occurrences.
func (b *ConfigBuilder) WithRepetition(enabled bool, count int) *ConfigBuilder {
	b.cfg.Draw.Repetition = enabled
	if count > 0 {
		b.cfg.Draw.RepetitionCount = count
	}
	return b
}

// WithInsufficientMaterial enables draw by insufficient material.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Draw.InsufficientMaterial = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithPerftWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
