package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pseudo-legal pawn moves from a square.
func pawnMoves(pos *chess.Position, from chess.Square, pawn chess.Piece) []chess.Move {
	board := &pos.Board
	colour := pawn.Colour
	dir := chess.ColourOffset(colour)
	var moves []chess.Move

	// Pushes
	if one, ok := from.Offset(0, dir); ok && board.At(one).IsEmpty() {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one, Piece: pawn})
		if from.Rank() == pawnStartRank(colour) {
			if two, ok := one.Offset(0, dir); ok && board.At(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.At(to)
		switch {
		case isCapturable(target, colour):
			moves = appendPawnMove(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target})
		case target.IsEmpty() && to == pos.EnPassant:
			// The captured pawn sits beside us, on the destination file.
			victimSq := chess.SquareAt(to.File(), from.Rank())
			victim := board.At(victimSq)
			if victim == chess.MakePiece(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{
					From:     from,
					To:       to,
					Piece:    pawn,
					Captured: victim,
					Tag:      chess.EnPassantCapture,
				})
			}
		}
	}
	return moves
}

// appendPawnMove adds m, expanded into the four promotion choices when it
// reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.Rank() != pawnLastRank(m.Piece.Colour) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionKinds {
		promo := m
		promo.Tag = chess.Promotion
		promo.Promotion = kind
		moves = append(moves, promo)
	}
	return moves
}

// applyPawnMove applies a pawn move, including en passant and promotion.
func applyPawnMove(pos *chess.Position, m chess.Move) {
	board := &pos.Board

	if m.Tag == chess.EnPassantCapture {
		board.Remove(chess.SquareAt(m.To.File(), m.From.Rank()))
	}

	board.Remove(m.From)
	if m.Tag == chess.Promotion {
		board.Set(m.To, chess.MakePiece(m.Piece.Colour, m.Promotion))
	} else {
		board.Set(m.To, m.Piece)
	}

	updateCastlingRights(pos, m)

	// Set en passant square if double pawn push
	pos.EnPassant = chess.NoSquare
	if abs(m.To.Rank()-m.From.Rank()) == 2 {
		pos.EnPassant = chess.SquareAt(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	finishMove(pos, m)
}

func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

func pawnLastRank(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}
