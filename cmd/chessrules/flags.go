// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Input options
	configFile = flag.String("config", "", "YAML configuration file")
	startFEN   = flag.String("fen", "", "Starting position in FEN (default: standard position)")
	moveList   = flag.String("moves", "", "Moves to replay, e.g. \"e2e4 e7e5 g1f3\" (default: read stdin)")
	fromSquare = flag.String("from", "", "List legal destinations of the piece on this square")
	importFile = flag.String("import", "", "Replay the first game of a PGN file (\"-\" for stdin)")

	// Output options
	jsonOutput     = flag.Bool("json", false, "Output the final state as JSON")
	pgnOutput      = flag.Bool("pgn", false, "Output the game as PGN")
	outputFormat   = flag.String("format", "", "Output format: text, json, pgn")
	notation       = flag.String("notation", "", "PGN move notation: san, lalg, halg")
	lineLength     = flag.Int("w", 0, "Maximum PGN line length")
	unicodeSymbols = flag.Bool("unicode", false, "Draw pieces with chess symbols")
	colourMode     = flag.String("color", "", "Colour the board: auto, always, never")
	flip           = flag.Bool("flip", false, "Draw the board from Black's side")

	// Draw rules
	draws        = flag.Bool("draws", false, "Enable fifty-move, repetition and insufficient material draws")
	fiftyMove    = flag.Bool("fifty", false, "Enable the fifty-move rule")
	repetition   = flag.Bool("repetition", false, "Enable draw by threefold repetition")
	insufficient = flag.Bool("insufficient", false, "Enable draw by insufficient material")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to depth N instead of replaying")
	divide     = flag.Bool("divide", false, "Show perft counts per root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logLevel = flag.String("log-level", "", "Log level: trace, debug, info, warn, error, disabled")
	logJSON  = flag.Bool("log-json", false, "Write log lines as JSON")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// visitedFlags returns the names of the flags given on the command line.
func visitedFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overrides configuration values with the flags in set.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyOutputFlags(cfg, set)
	applyDrawFlags(cfg)
	applyLogFlags(cfg, set)

	if set["workers"] && *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// applyOutputFlags configures the output format and board rendering.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	switch {
	case *jsonOutput:
		cfg.Output.Format = "json"
	case *pgnOutput:
		cfg.Output.Format = "pgn"
	case set["format"]:
		cfg.Output.Format = *outputFormat
	}

	if set["notation"] {
		cfg.Output.Notation = *notation
	}
	if set["w"] {
		cfg.Output.MaxLineLength = *lineLength
	}
	if set["unicode"] {
		cfg.Output.Unicode = *unicodeSymbols
	}
	if set["color"] {
		cfg.Output.Colour = *colourMode
	}
	if set["flip"] {
		cfg.Output.Flip = *flip
	}
}

// applyDrawFlags enables draw rules. Flags only switch rules on; a rule
// enabled in the configuration file stays enabled.
func applyDrawFlags(cfg *config.Config) {
	if *draws {
		cfg.Draw.EnableAll()
	}
	if *fiftyMove {
		cfg.Draw.FiftyMove = true
	}
	if *repetition {
		cfg.Draw.Repetition = true
	}
	if *insufficient {
		cfg.Draw.InsufficientMaterial = true
	}
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	if set["log-json"] {
		cfg.Log.JSON = *logJSON
	}
}
