package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustFEN parses a FEN or fails the test.
func mustFEN(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// findMove looks up a legal move by squares. An Empty promotion matches the
// queen promotion.
func findMove(pos *chess.Position, from, to chess.Square, promotion chess.Kind) (chess.Move, bool) {
	if promotion == chess.Empty {
		promotion = chess.Queen
	}
	for _, m := range LegalMovesFrom(pos, from) {
		if m.To == to && (!m.IsPromotion() || m.Promotion == promotion) {
			return m, true
		}
	}
	return chess.Move{}, false
}

// play applies coordinate moves such as "e2e4" in order and returns the
// resulting position. The input position is not modified.
func play(t *testing.T, pos *chess.Position, moves ...string) *chess.Position {
	t.Helper()
	for _, text := range moves {
		from, to, promo, err := chess.ParseMoveText(text)
		if err != nil {
			t.Fatalf("ParseMoveText(%q) error: %v", text, err)
		}
		m, ok := findMove(pos, from, to, promo)
		if !ok {
			t.Fatalf("move %s is not legal in %s", text, FEN(pos))
		}
		pos = Apply(pos, m)
	}
	return pos
}

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}
