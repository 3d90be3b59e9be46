package testutil

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known test positions.
const (
	// KiwipeteFEN exercises castling, pins, en passant and promotions.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EndgameFEN is the rook and pawn endgame from the standard perft suite.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// CastlingFEN has only kings and rooks with every right intact.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// FoolsMateFEN is the position after 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN has Black to move with no legal move and no check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// Squares parses square names, panicking on bad input.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustParseSquare(n))
	}
	return out
}

// SquareNames returns the sorted names of squares, suitable for comparing
// destination sets with AssertEqual.
func SquareNames(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	slices.Sort(out)
	return out
}

// MoveNames returns the sorted UCI text of moves.
func MoveNames(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	slices.Sort(out)
	return out
}

// Destinations returns the sorted, de-duplicated destination names of moves.
// Promotion variants collapse to one square.
func Destinations(moves []chess.Move) []string {
	var out []string
	for _, m := range moves {
		if name := m.To.String(); !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
