package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// importPGN reads the first game from a PGN file ("-" for stdin) and returns
// its start position and main line as coordinate moves.
func importPGN(path string, stdin io.Reader, logger zerolog.Logger) (string, []string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		r = f
	}

	g, err := parser.NewParser(r, logger).ParseGame()
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	if g == nil {
		return "", nil, fmt.Errorf("%s: no game found: %w", path, errors.ErrInvalidPGN)
	}

	moves, err := g.CoordinateMoves()
	if err != nil {
		return "", nil, fmt.Errorf("%s line %d: %w", path, g.StartLine, err)
	}
	logger.Debug().
		Str("file", path).
		Str("white", g.Tag("White")).
		Str("black", g.Tag("Black")).
		Int("moves", len(moves)).
		Msg("game imported")
	return g.StartFEN(), moves, nil
}
