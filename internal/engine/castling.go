package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves generates the castling moves available to the king on from.
// A castle needs the right, king and rook on their home squares, empty
// squares between them, and a king that neither starts on, passes through
// nor lands on an attacked square.
func castlingMoves(pos *chess.Position, from chess.Square, king chess.Piece) []chess.Move {
	board := &pos.Board
	colour := king.Colour
	rook := chess.MakePiece(colour, chess.Rook)
	var moves []chess.Move

	for _, kingside := range []bool{true, false} {
		if !pos.Castling.Has(colour, kingside) {
			continue
		}
		cs := chess.Castle(colour, kingside)
		if from != cs.KingFrom || board.At(cs.RookFrom) != rook {
			continue
		}
		if !isPathClear(board, cs.Between) {
			continue
		}
		if anyAttacked(board, cs.KingPath, colour.Opposite()) {
			continue
		}

		tag := chess.QueensideCastle
		if kingside {
			tag = chess.KingsideCastle
		}
		moves = append(moves, chess.Move{From: cs.KingFrom, To: cs.KingTo, Piece: king, Tag: tag})
	}
	return moves
}

func anyAttacked(board *chess.Board, squares []chess.Square, by chess.Colour) bool {
	for _, sq := range squares {
		if IsAttacked(board, sq, by) {
			return true
		}
	}
	return false
}

// applyCastle moves king and rook together.
func applyCastle(pos *chess.Position, m chess.Move) {
	board := &pos.Board
	cs := chess.Castle(m.Piece.Colour, m.Tag == chess.KingsideCastle)

	// Move king
	board.Remove(cs.KingFrom)
	board.Set(cs.KingTo, m.Piece)

	// Move rook
	rook := board.Remove(cs.RookFrom)
	board.Set(cs.RookTo, rook)

	updateCastlingRights(pos, m)
	pos.EnPassant = chess.NoSquare
	finishMove(pos, m)
}
