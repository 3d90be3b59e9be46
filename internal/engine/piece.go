package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// stepMoves generates moves for pieces with fixed offsets (knight, king).
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, d := range offsets {
		to, ok := from.Offset(d[0], d[1])
		if !ok {
			continue
		}
		target := board.At(to)
		if target.IsEmpty() || isCapturable(target, piece.Colour) {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// slideMoves generates moves along rays (bishop, rook, queen). A ray ends at
// the first occupied square, which is included only if it can be captured.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for to, ok := from.Offset(d[0], d[1]); ok; to, ok = to.Offset(d[0], d[1]) {
			target := board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
				continue
			}
			if isCapturable(target, piece.Colour) {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break // Blocked
		}
	}
	return moves
}

// isCapturable reports whether a piece of colour may move onto target by
// capturing. Kings are never captured.
func isCapturable(target chess.Piece, colour chess.Colour) bool {
	return target.IsPiece() && target.Colour != colour && target.Kind != chess.King
}

// applyPieceMove applies a knight, bishop, rook, queen or plain king move.
func applyPieceMove(pos *chess.Position, m chess.Move) {
	board := &pos.Board

	board.Remove(m.From)
	board.Set(m.To, m.Piece)

	updateCastlingRights(pos, m)
	pos.EnPassant = chess.NoSquare
	finishMove(pos, m)
}
