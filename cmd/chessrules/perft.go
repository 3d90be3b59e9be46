package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// runPerft counts move paths from fen (the standard position when empty).
// With divide the root moves are split across workers and listed.
func runPerft(ctx context.Context, w io.Writer, logger zerolog.Logger, fen string, depth int, divide bool, workers int) error {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}

	start := time.Now()
	var nodes uint64
	if divide {
		entries, err := engine.ParallelPerftDivide(ctx, pos, depth, workers)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move.UCI(), e.Nodes); err != nil {
				return err
			}
		}
		nodes = engine.SumDivide(entries)
		if _, err := fmt.Fprintf(w, "\nMoves: %d\nNodes: %d\n", len(entries), nodes); err != nil {
			return err
		}
	} else {
		nodes = engine.Perft(pos, depth)
		if _, err := fmt.Fprintf(w, "perft(%d) = %d\n", depth, nodes); err != nil {
			return err
		}
	}

	logger.Info().
		Int("depth", depth).
		Uint64("nodes", nodes).
		Int("workers", workers).
		Dur("elapsed", time.Since(start)).
		Msg("perft complete")
	return nil
}
