package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("json wins over format", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreString(outputFormat, "pgn")()
		cfg := config.NewConfig()
		applyOutputFlags(cfg, map[string]bool{"json": true, "format": true})
		if cfg.Output.Format != "json" {
			t.Errorf("Format = %q; want json", cfg.Output.Format)
		}
	})

	t.Run("pgn flag", func(t *testing.T) {
		defer saveRestoreBool(pgnOutput, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg, map[string]bool{"pgn": true})
		if cfg.Output.Format != "pgn" {
			t.Errorf("Format = %q; want pgn", cfg.Output.Format)
		}
	})

	t.Run("format flag", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "json")()
		cfg := config.NewConfig()
		applyOutputFlags(cfg, map[string]bool{"format": true})
		if cfg.Output.Format != "json" {
			t.Errorf("Format = %q; want json", cfg.Output.Format)
		}
	})

	t.Run("unset flags keep file values", func(t *testing.T) {
		defer saveRestoreInt(lineLength, 0)()
		defer saveRestoreString(colourMode, "")()
		cfg := config.NewConfig()
		cfg.Output.MaxLineLength = 60
		cfg.Output.Colour = config.ColourNever
		applyOutputFlags(cfg, map[string]bool{})
		if cfg.Output.MaxLineLength != 60 {
			t.Errorf("MaxLineLength = %d; want 60", cfg.Output.MaxLineLength)
		}
		if cfg.Output.Colour != config.ColourNever {
			t.Errorf("Colour = %q; want never", cfg.Output.Colour)
		}
	})

	t.Run("board flags", func(t *testing.T) {
		defer saveRestoreBool(unicodeSymbols, true)()
		defer saveRestoreBool(flip, true)()
		defer saveRestoreString(colourMode, "always")()
		defer saveRestoreString(notation, "lalg")()
		cfg := config.NewConfig()
		applyOutputFlags(cfg, map[string]bool{"unicode": true, "flip": true, "color": true, "notation": true})
		if !cfg.Output.Unicode || !cfg.Output.Flip {
			t.Error("unicode and flip should be set")
		}
		if cfg.Output.Colour != config.ColourAlways {
			t.Errorf("Colour = %q; want always", cfg.Output.Colour)
		}
		if cfg.Output.Notation != "lalg" {
			t.Errorf("Notation = %q; want lalg", cfg.Output.Notation)
		}
	})
}

// ---------------------------------------------------------------------------
// applyDrawFlags
// ---------------------------------------------------------------------------

func TestApplyDrawFlags(t *testing.T) {
	t.Run("draws enables all", func(t *testing.T) {
		defer saveRestoreBool(draws, true)()
		cfg := config.NewConfig()
		applyDrawFlags(cfg)
		if !cfg.Draw.FiftyMove || !cfg.Draw.Repetition || !cfg.Draw.InsufficientMaterial {
			t.Errorf("Draw = %+v; want every rule enabled", cfg.Draw)
		}
	})

	t.Run("single rule", func(t *testing.T) {
		defer saveRestoreBool(repetition, true)()
		cfg := config.NewConfig()
		applyDrawFlags(cfg)
		if !cfg.Draw.Repetition || cfg.Draw.FiftyMove || cfg.Draw.InsufficientMaterial {
			t.Errorf("Draw = %+v; want only repetition", cfg.Draw)
		}
	})

	t.Run("file rules stay enabled", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Draw.FiftyMove = true
		applyDrawFlags(cfg)
		if !cfg.Draw.FiftyMove {
			t.Error("FiftyMove was switched off")
		}
	})
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags(t *testing.T) {
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreBool(logJSON, true)()

	cfg := config.NewConfig()
	applyFlags(cfg, map[string]bool{"workers": true, "log-level": true, "log-json": true})

	if cfg.Perft.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Perft.Workers)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v; want debug JSON", cfg.Log)
	}
}

func TestApplyFlagsWorkersAuto(t *testing.T) {
	defer saveRestoreInt(workers, 0)()
	cfg := config.NewConfig()
	want := cfg.Perft.Workers
	applyFlags(cfg, map[string]bool{"workers": true})
	if cfg.Perft.Workers != want {
		t.Errorf("Workers = %d; want auto-detected %d", cfg.Perft.Workers, want)
	}
}
