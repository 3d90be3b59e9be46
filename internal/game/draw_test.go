package game

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDrawRules(t *testing.T) {
	knightDance := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}

	tests := []struct {
		name       string
		fen        string
		rules      DrawRules
		moves      []string
		wantStatus Status
		wantReason DrawReason
	}{
		{
			name:       "fifty-move rule",
			fen:        "4k3/8/8/8/8/8/8/R3K3 w - - 99 80",
			rules:      DrawRules{FiftyMove: true},
			moves:      []string{"a1a2"},
			wantStatus: Draw,
			wantReason: FiftyMoveRule,
		},
		{
			name:       "fifty-move rule disabled",
			fen:        "4k3/8/8/8/8/8/8/R3K3 w - - 99 80",
			moves:      []string{"a1a2"},
			wantStatus: InProgress,
		},
		{
			name:       "custom fifty-move limit",
			fen:        "4k3/8/8/8/8/8/8/R3K3 w - - 9 80",
			rules:      DrawRules{FiftyMove: true, FiftyMoveLimit: 10},
			moves:      []string{"a1a2"},
			wantStatus: Draw,
			wantReason: FiftyMoveRule,
		},
		{
			name:       "threefold repetition",
			fen:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			rules:      DrawRules{Repetition: true},
			moves:      knightDance,
			wantStatus: Draw,
			wantReason: Repetition,
		},
		{
			name:       "twofold is not enough",
			fen:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			rules:      DrawRules{Repetition: true},
			moves:      knightDance[:4],
			wantStatus: InProgress,
		},
		{
			name:       "custom repetition count",
			fen:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			rules:      DrawRules{Repetition: true, RepetitionCount: 2},
			moves:      knightDance[:4],
			wantStatus: Draw,
			wantReason: Repetition,
		},
		{
			name:       "repetition disabled",
			fen:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			moves:      knightDance,
			wantStatus: InProgress,
		},
		{
			name:       "insufficient material after capture",
			fen:        "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1",
			rules:      DrawRules{InsufficientMaterial: true},
			moves:      []string{"e1d2"},
			wantStatus: Draw,
			wantReason: InsufficientMaterial,
		},
		{
			name:       "bare kings without the rule",
			fen:        "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1",
			moves:      []string{"e1d2"},
			wantStatus: InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen, WithDrawRules(tt.rules))
			playMoves(t, g, tt.moves...)
			testutil.AssertEqual(t, g.Status(), tt.wantStatus)
			testutil.AssertEqual(t, g.DrawReason(), tt.wantReason)
		})
	}
}

func TestDrawEndsTheGame(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", WithDrawRules(AllDrawRules()))
	playMoves(t, g, "e1d2")
	testutil.AssertTrue(t, g.Status().IsTerminal())
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)

	dests, err := g.LegalDestinations(sq("d2"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(dests), 0)
}

func TestDrawTakesPrecedence(t *testing.T) {
	// The hundredth quiet half-move also delivers mate.
	g := mustGame(t, "k7/8/1K6/8/8/8/8/7R w - - 99 90", WithDrawRules(DrawRules{FiftyMove: true}))
	playMoves(t, g, "h1h8")
	testutil.AssertEqual(t, g.Status(), Draw)
	testutil.AssertEqual(t, g.DrawReason(), FiftyMoveRule)

	g = mustGame(t, "k7/8/1K6/8/8/8/8/7R w - - 99 90")
	playMoves(t, g, "h1h8")
	testutil.AssertEqual(t, g.Status(), Checkmate)
}

func TestStatusStrings(t *testing.T) {
	testutil.AssertEqual(t, InProgress.String(), "in_progress")
	testutil.AssertEqual(t, Checkmate.String(), "checkmate")
	testutil.AssertEqual(t, Status(42).String(), "unknown")
	testutil.AssertEqual(t, Repetition.String(), "repetition")
	testutil.AssertEqual(t, NoDraw.String(), "")
}
