package engine

import (
	"context"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		deep  bool
	}{
		{"initial depth 0", InitialFEN, 0, 1, false},
		{"initial depth 1", InitialFEN, 1, 20, false},
		{"initial depth 2", InitialFEN, 2, 400, false},
		{"initial depth 3", InitialFEN, 3, 8902, true},
		{"kiwipete depth 1", testutil.KiwipeteFEN, 1, 48, false},
		{"kiwipete depth 2", testutil.KiwipeteFEN, 2, 2039, false},
		{"kiwipete depth 3", testutil.KiwipeteFEN, 3, 97862, true},
		{"endgame depth 1", testutil.EndgameFEN, 1, 14, false},
		{"endgame depth 2", testutil.EndgameFEN, 2, 191, false},
		{"endgame depth 3", testutil.EndgameFEN, 3, 2812, false},
		{"en passant depth 1", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 1, 5, false},
		{"en passant depth 2", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2, 19, false},
		{"promotion depth 1", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 1, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.deep && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			pos := mustFEN(t, tt.fen)
			if got := Perft(pos, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftDivide(t *testing.T) {
	pos := mustFEN(t, testutil.KiwipeteFEN)
	entries := PerftDivide(pos, 2)

	testutil.AssertEqual(t, len(entries), 48)
	testutil.AssertEqual(t, SumDivide(entries), Perft(pos, 2))

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Move.UCI() >= entries[i].Move.UCI() {
			t.Fatalf("entries not sorted at %d: %s >= %s", i, entries[i-1].Move.UCI(), entries[i].Move.UCI())
		}
	}

	testutil.AssertTrue(t, PerftDivide(pos, 0) == nil, "depth 0 divide is nil")
}

func TestParallelPerftDivide(t *testing.T) {
	for _, fen := range []string{InitialFEN, testutil.KiwipeteFEN, testutil.EndgameFEN} {
		t.Run(fen, func(t *testing.T) {
			depth := 3
			if testing.Short() && fen == testutil.KiwipeteFEN {
				depth = 2
			}
			pos := mustFEN(t, fen)
			want := PerftDivide(pos, depth)

			got, err := ParallelPerftDivide(context.Background(), pos, depth, 4)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestParallelPerftDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := ParallelPerftDivide(ctx, chess.NewInitialPosition(), 3, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertTrue(t, entries == nil)
}

// TestMovesAgreeWithDragontooth checks generated move lists against an
// independent bitboard generator, position by position.
func TestMovesAgreeWithDragontooth(t *testing.T) {
	fens := []string{
		InitialFEN,
		testutil.KiwipeteFEN,
		testutil.CastlingFEN,
		testutil.EndgameFEN,
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			compareWithDragontooth(t, mustFEN(t, fen), 2)
		})
	}
}

func compareWithDragontooth(t *testing.T, pos *chess.Position, depth int) {
	t.Helper()
	fen := FEN(pos)

	ours := make([]string, 0, 64)
	moves := LegalMoves(pos)
	for _, m := range moves {
		ours = append(ours, m.UCI())
	}
	slices.Sort(ours)

	board := dragontoothmg.ParseFen(fen)
	theirMoves := board.GenerateLegalMoves()
	theirs := make([]string, 0, len(theirMoves))
	for i := range theirMoves {
		theirs = append(theirs, theirMoves[i].String())
	}
	slices.Sort(theirs)

	if !slices.Equal(ours, theirs) {
		t.Fatalf("move lists differ at %s\nours:   %v\ntheirs: %v", fen, ours, theirs)
	}

	if depth <= 1 {
		return
	}
	for _, m := range moves {
		compareWithDragontooth(t, Apply(pos, m), depth-1)
	}
}
