package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalMovesFrom generates the moves of the piece on from that follow
// its movement rules, without checking whether they expose the mover's king.
// It returns nil if from is empty, invalid or holds a piece of the side not
// to move.
func PseudoLegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Board.At(from)
	if !piece.IsPiece() || piece.Colour != pos.ToMove {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(pos, from, piece)
	case chess.Knight:
		return stepMoves(&pos.Board, from, piece, knightOffsets)
	case chess.Bishop:
		return slideMoves(&pos.Board, from, piece, diagonalDirs)
	case chess.Rook:
		return slideMoves(&pos.Board, from, piece, straightDirs)
	case chess.Queen:
		moves := slideMoves(&pos.Board, from, piece, diagonalDirs)
		return append(moves, slideMoves(&pos.Board, from, piece, straightDirs)...)
	case chess.King:
		moves := stepMoves(&pos.Board, from, piece, kingOffsets)
		return append(moves, castlingMoves(pos, from, piece)...)
	default:
		return nil
	}
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMovesFrom(pos, from) {
		if tryMove(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns every legal move for the side to move, grouped by
// source square in a1..h8 order.
func LegalMoves(pos *chess.Position) []chess.Move {
	var legal []chess.Move
	pos.Board.ForEach(func(from chess.Square, piece chess.Piece) {
		if piece.Colour == pos.ToMove {
			legal = append(legal, LegalMovesFrom(pos, from)...)
		}
	})
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// It stops at the first one found.
func HasLegalMoves(pos *chess.Position) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		for _, m := range PseudoLegalMovesFrom(pos, sq) {
			if tryMove(pos, m) {
				return true
			}
		}
	}
	return false
}

// tryMove makes a move on a copy of the position and reports whether the
// mover's king is safe afterwards. This one check covers pins, discovered
// checks, king walks into attack and the en passant edge cases.
func tryMove(pos *chess.Position, m chess.Move) bool {
	next := Apply(pos, m)
	return !IsInCheck(&next.Board, m.Piece.Colour)
}
