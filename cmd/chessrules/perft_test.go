package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"initial depth 3", "", "perft(3) = 8902\n"},
		{"kiwipete depth 2", testutil.KiwipeteFEN, "perft(2) = 2039\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth := 3
			if tt.fen != "" {
				depth = 2
			}
			var buf bytes.Buffer
			err := runPerft(context.Background(), &buf, zerolog.Nop(), tt.fen, depth, false, 1)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestRunPerftDivide(t *testing.T) {
	var buf bytes.Buffer
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	err := runPerft(context.Background(), &buf, logger, "", 2, true, 4)
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, "a2a3: 20\n")
	testutil.AssertContains(t, out, "g1f3: 20\n")
	testutil.AssertTrue(t, strings.HasSuffix(out, "\nMoves: 20\nNodes: 400\n"), "summary in %q", out)
	testutil.AssertContains(t, logs.String(), `"nodes":400`)
}

func TestRunPerftErrors(t *testing.T) {
	var buf bytes.Buffer
	err := runPerft(context.Background(), &buf, zerolog.Nop(), "bad", 1, false, 1)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runPerft(ctx, &buf, zerolog.Nop(), "", 4, true, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}
