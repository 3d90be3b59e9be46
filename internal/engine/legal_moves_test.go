package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLegalMovesInitial(t *testing.T) {
	pos := chess.NewInitialPosition()
	moves := LegalMoves(pos)
	if len(moves) != 20 {
		t.Fatalf("LegalMoves(initial) = %d moves; want 20", len(moves))
	}

	t.Run("idempotent", func(t *testing.T) {
		testutil.AssertEqual(t, LegalMoves(pos), moves)
	})

	t.Run("position untouched", func(t *testing.T) {
		testutil.AssertEqual(t, FEN(pos), InitialFEN)
	})
}

func TestLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight from b1", InitialFEN, "b1", []string{"a3", "c3"}},
		{"pawn single and double push", InitialFEN, "e2", []string{"e3", "e4"}},
		{"blocked bishop", InitialFEN, "c1", nil},
		{"opponent piece yields nothing", InitialFEN, "e7", nil},
		{"empty square", InitialFEN, "e4", nil},
		{"pawn blocked by piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", nil},
		{"double push blocked on second square", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e3"}},
		{"pawn captures", "4k3/8/8/8/8/3p1b2/4P3/4K3 w - - 0 1", "e2", []string{"d3", "e3", "e4", "f3"}},
		{"pinned bishop cannot move", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", nil},
		{"pinned rook slides along the pin", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "e2", []string{"e3", "e4", "e5", "e6", "e7"}},
		{"king avoids attacked squares", "4k3/4r3/8/8/8/8/8/3K4 w - - 0 1", "d1", []string{"c1", "c2", "d2"}},
		{"king cannot capture defended piece", "4k3/8/8/8/8/8/3q4/2bK4 w - - 0 1", "d1", nil},
		{"must block or capture check", "4k3/4r3/8/8/8/8/3N4/4K3 w - - 0 1", "d2", []string{"e4"}},
		{"rook stops at own piece", "4k3/8/8/8/8/8/8/R2QK3 w - - 0 1", "a1", []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1"}},
		{"rook captures first enemy only", "4k3/8/8/8/8/8/8/R1n1K3 w - - 0 1", "a1", []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			got := testutil.Destinations(LegalMovesFrom(pos, sq(tt.from)))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPromotionMoves(t *testing.T) {
	pos := mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	moves := LegalMovesFrom(pos, sq("a7"))

	testutil.AssertEqual(t, testutil.MoveNames(moves),
		[]string{"a7a8b", "a7a8n", "a7a8q", "a7a8r", "a7b8b", "a7b8n", "a7b8q", "a7b8r"})
	for _, m := range moves {
		testutil.AssertTrue(t, m.IsPromotion(), "%s tagged promotion", m)
		if m.To == sq("b8") && m.Captured != chess.B(chess.Knight) {
			t.Errorf("%s captured = %v; want Black Knight", m, m.Captured)
		}
	}
}

func TestEnPassantMoves(t *testing.T) {
	t.Run("available right after the double push", func(t *testing.T) {
		pos := play(t, chess.NewInitialPosition(), "g1f3", "d7d5", "b1c3", "d5d4", "e2e4")
		testutil.AssertEqual(t, pos.EnPassant.String(), "e3")

		moves := LegalMovesFrom(pos, sq("d4"))
		testutil.AssertEqual(t, testutil.Destinations(moves), []string{"c3", "d3", "e3"})
		for _, m := range moves {
			if m.To == sq("e3") {
				testutil.AssertTrue(t, m.IsEnPassant(), "d4e3 is en passant")
				testutil.AssertEqual(t, m.Captured, chess.W(chess.Pawn))
			}
		}
	})

	t.Run("gone one move later", func(t *testing.T) {
		pos := play(t, chess.NewInitialPosition(), "g1f3", "d7d5", "b1c3", "d5d4", "e2e4", "a7a6", "a2a3")
		testutil.AssertEqual(t, pos.EnPassant, chess.NoSquare)
		testutil.AssertEqual(t, testutil.Destinations(LegalMovesFrom(pos, sq("d4"))), []string{"c3", "d3"})
	})

	t.Run("illegal when it exposes the king on the rank", func(t *testing.T) {
		pos := mustFEN(t, "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1")
		testutil.AssertEqual(t, testutil.Destinations(LegalMovesFrom(pos, sq("e5"))), []string{"e6"})
	})

	t.Run("target without a capturing pawn", func(t *testing.T) {
		pos := mustFEN(t, "4k3/8/8/3p4/8/8/8/4K3 w - d6 0 2")
		for _, m := range LegalMoves(pos) {
			testutil.AssertFalse(t, m.IsEnPassant(), "unexpected en passant %s", m)
		}
	})
}

func TestCastlingMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string // castling destinations only
	}{
		{"both wings", testutil.CastlingFEN, "e1", []string{"c1", "g1"}},
		{"black both wings", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", []string{"c8", "g8"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", "e1", nil},
		{"pieces in between", InitialFEN, "e1", nil},
		{"transit square attacked", "r3k2r/8/b7/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{"c1"}},
		{"king in check", "r3k2r/8/8/4r3/8/8/8/R3K2R w KQkq - 0 1", "e1", nil},
		{"rook path square attacked is fine", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", "e1", []string{"c1", "g1"}},
		{"knight between on b1", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1", []string{"g1"}},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", "e1", []string{"g1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			var castles []chess.Move
			for _, m := range LegalMovesFrom(pos, sq(tt.from)) {
				if m.IsCastle() {
					castles = append(castles, m)
				}
			}
			testutil.AssertEqual(t, testutil.Destinations(castles), tt.want)
		})
	}
}

func TestCastlingDestinationAttacked(t *testing.T) {
	// Black rook on g8 covers g1.
	pos := mustFEN(t, "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var castles []string
	for _, m := range LegalMovesFrom(pos, sq("e1")) {
		if m.IsCastle() {
			castles = append(castles, m.To.String())
		}
	}
	testutil.AssertEqual(t, castles, []string{"c1"})
}

func TestNeverCapturesKing(t *testing.T) {
	// Not reachable in play: Black is in check with White to move.
	pos := chess.NewEmptyPosition()
	pos.Board.Set(sq("a1"), chess.W(chess.Rook))
	pos.Board.Set(sq("h1"), chess.W(chess.King))
	pos.Board.Set(sq("a8"), chess.B(chess.King))

	for _, m := range PseudoLegalMovesFrom(pos, sq("a1")) {
		if m.To == sq("a8") {
			t.Fatalf("generated king capture %s", m)
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial", InitialFEN, true},
		{"fool's mate", testutil.FoolsMateFEN, false},
		{"stalemate", testutil.StalemateFEN, false},
		{"only the king moves", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			testutil.AssertEqual(t, HasLegalMoves(pos), tt.want)
			testutil.AssertEqual(t, len(LegalMoves(pos)) > 0, tt.want)
		})
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		pos := play(t, chess.NewInitialPosition(), "f2f3", "e7e5", "g2g4", "d8h4")
		testutil.AssertEqual(t, FEN(pos), testutil.FoolsMateFEN)
		testutil.AssertTrue(t, IsCheckmate(pos))
		testutil.AssertFalse(t, IsStalemate(pos))
	})

	t.Run("scholar's mate", func(t *testing.T) {
		pos := play(t, chess.NewInitialPosition(), "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
		testutil.AssertTrue(t, IsCheckmate(pos))
		testutil.AssertEqual(t, len(LegalMoves(pos)), 0)
	})

	t.Run("queen takes f7 but can be recaptured", func(t *testing.T) {
		pos := play(t, chess.NewInitialPosition(), "e2e4", "e7e5", "d1h5", "b8c6", "h5f7")
		testutil.AssertTrue(t, IsInCheck(&pos.Board, chess.Black))
		testutil.AssertFalse(t, IsCheckmate(pos))
		testutil.AssertEqual(t, testutil.MoveNames(LegalMoves(pos)), []string{"e8f7"})
	})

	t.Run("interposition is the only reply", func(t *testing.T) {
		pos := play(t, chess.NewInitialPosition(), "e2e4", "f7f6", "d1h5")
		testutil.AssertTrue(t, IsInCheck(&pos.Board, chess.Black))
		testutil.AssertEqual(t, testutil.MoveNames(LegalMoves(pos)), []string{"g7g6"})

		pos = play(t, pos, "g7g6")
		testutil.AssertFalse(t, IsInCheck(&pos.Board, chess.Black))
		testutil.AssertFalse(t, IsInCheck(&pos.Board, chess.White))
	})

	t.Run("stalemate", func(t *testing.T) {
		pos := mustFEN(t, testutil.StalemateFEN)
		testutil.AssertTrue(t, IsStalemate(pos))
		testutil.AssertFalse(t, IsCheckmate(pos))
	})
}

// TestRandomPlayouts walks random games and checks the generator's
// invariants at every position visited.
func TestRandomPlayouts(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	games := 20
	if testing.Short() {
		games = 4
	}

	for g := 0; g < games; g++ {
		pos := chess.NewInitialPosition()
		for ply := 0; ply < 120; ply++ {
			moves := LegalMoves(pos)
			checkInvariants(t, pos, moves)
			if len(moves) == 0 {
				break
			}
			pos = Apply(pos, moves[r.Intn(len(moves))])
		}
	}
}

func checkInvariants(t *testing.T, pos *chess.Position, moves []chess.Move) {
	t.Helper()
	fen := FEN(pos)

	if again := LegalMoves(pos); len(again) != len(moves) {
		t.Fatalf("%s: LegalMoves not idempotent (%d vs %d)", fen, len(moves), len(again))
	}

	for _, m := range moves {
		next := Apply(pos, m)
		if IsInCheck(&next.Board, m.Piece.Colour) {
			t.Fatalf("%s: move %s leaves own king attacked", fen, m)
		}
		if next.ToMove != pos.ToMove.Opposite() {
			t.Fatalf("%s: move %s did not flip the side to move", fen, m)
		}
		if m.Captured.Kind == chess.King {
			t.Fatalf("%s: move %s captures a king", fen, m)
		}
	}

	reparsed, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(FEN()) error: %v", err)
	}
	if FEN(reparsed) != fen {
		t.Fatalf("FEN round trip: %s != %s", FEN(reparsed), fen)
	}

	attacked := AttackedSquares(&pos.Board, pos.ToMove.Opposite())
	if king, ok := pos.Board.KingSquare(pos.ToMove); ok {
		if attacked.Has(king) != IsInCheck(&pos.Board, pos.ToMove) {
			t.Fatalf("%s: AttackedSquares and IsInCheck disagree", fen)
		}
	}
}
