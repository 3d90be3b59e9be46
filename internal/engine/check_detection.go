package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsAttacked(board, kingSq, colour.Opposite())
}

// IsAttacked returns true if any piece of colour by attacks sq. Turn, pins
// and check are ignored; a piece attacks a square even if moving there would
// be illegal.
//
// The scan works backwards from the target: it looks for each kind of
// attacker on the squares it could attack from.
func IsAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns attack diagonally forward, so look one rank behind the target
	// from the attacker's point of view.
	pawn := chess.MakePiece(by, chess.Pawn)
	behind := -chess.ColourOffset(by)
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, behind); ok && board.At(from) == pawn {
			return true
		}
	}

	knight := chess.MakePiece(by, chess.Knight)
	for _, d := range knightOffsets {
		if from, ok := sq.Offset(d[0], d[1]); ok && board.At(from) == knight {
			return true
		}
	}

	king := chess.MakePiece(by, chess.King)
	for _, d := range kingOffsets {
		if from, ok := sq.Offset(d[0], d[1]); ok && board.At(from) == king {
			return true
		}
	}

	queen := chess.MakePiece(by, chess.Queen)
	bishop := chess.MakePiece(by, chess.Bishop)
	for _, d := range diagonalDirs {
		if p := firstPieceOnRay(board, sq, d); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakePiece(by, chess.Rook)
	for _, d := range straightDirs {
		if p := firstPieceOnRay(board, sq, d); p == rook || p == queen {
			return true
		}
	}

	return false
}

// AttackedSquares returns every square attacked by at least one piece of
// colour by. For every square s, AttackedSquares(b, c).Has(s) equals
// IsAttacked(b, s, c).
func AttackedSquares(board *chess.Board, by chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	board.ForEach(func(from chess.Square, piece chess.Piece) {
		if piece.Colour == by {
			set |= attacksFrom(board, from, piece)
		}
	})
	return set
}

// attacksFrom returns the squares a single piece attacks. Sliding rays stop
// at and include the first occupied square.
func attacksFrom(board *chess.Board, from chess.Square, piece chess.Piece) chess.SquareSet {
	var set chess.SquareSet
	switch piece.Kind {
	case chess.Pawn:
		dir := chess.ColourOffset(piece.Colour)
		for _, df := range []int{-1, 1} {
			if to, ok := from.Offset(df, dir); ok {
				set = set.Add(to)
			}
		}
	case chess.Knight:
		set = offsetTargets(from, knightOffsets)
	case chess.King:
		set = offsetTargets(from, kingOffsets)
	case chess.Bishop:
		set = rayTargets(board, from, diagonalDirs)
	case chess.Rook:
		set = rayTargets(board, from, straightDirs)
	case chess.Queen:
		set = rayTargets(board, from, diagonalDirs) | rayTargets(board, from, straightDirs)
	}
	return set
}

func offsetTargets(from chess.Square, offsets [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, d := range offsets {
		if to, ok := from.Offset(d[0], d[1]); ok {
			set = set.Add(to)
		}
	}
	return set
}

func rayTargets(board *chess.Board, from chess.Square, dirs [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, d := range dirs {
		for to, ok := from.Offset(d[0], d[1]); ok; to, ok = to.Offset(d[0], d[1]) {
			set = set.Add(to)
			if !board.At(to).IsEmpty() {
				break
			}
		}
	}
	return set
}
