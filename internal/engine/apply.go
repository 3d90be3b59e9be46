package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MakeMove applies a generated move to the position. It trusts the move:
// legality is the generator's job, and callers outside this package should
// only pass moves obtained from LegalMoves or LegalMovesFrom.
//
// The update happens in a fixed order: captured piece removed, piece moved
// (or replaced on promotion), castling rook relocated, castling rights
// updated, en passant target set or cleared, clocks advanced, side flipped.
func MakeMove(pos *chess.Position, m chess.Move) {
	switch m.Tag {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(pos, m)
	default:
		if m.Piece.Kind == chess.Pawn {
			applyPawnMove(pos, m)
		} else {
			applyPieceMove(pos, m)
		}
	}
}

// Apply returns a copy of pos with m made on it. pos is left untouched.
func Apply(pos *chess.Position, m chess.Move) *chess.Position {
	next := pos.Copy()
	MakeMove(next, m)
	return next
}

// updateCastlingRights clears rights after a move: a king move loses both,
// and any move from or onto a rook home square loses that wing. This also
// covers a rook being captured at home.
func updateCastlingRights(pos *chess.Position, m chess.Move) {
	if m.Piece.Kind == chess.King {
		pos.Castling.ClearColour(m.Piece.Colour)
	}
	pos.Castling.ClearRookSquare(m.From)
	pos.Castling.ClearRookSquare(m.To)
}

// finishMove advances the clocks and hands the move to the other side.
func finishMove(pos *chess.Position, m chess.Move) {
	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if m.Piece.Colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = m.Piece.Colour.Opposite()
}
