package chess

import "strings"

// CastlingRights records which castling moves are still permitted. Rights
// only ever go from true to false during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the state at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether colour may still castle on the given wing.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return cr.WhiteKingside
	case colour == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// Any reports whether any right remains.
func (cr CastlingRights) Any() bool {
	return cr.WhiteKingside || cr.WhiteQueenside || cr.BlackKingside || cr.BlackQueenside
}

// ClearColour removes both of colour's rights.
func (cr *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		cr.WhiteKingside = false
		cr.WhiteQueenside = false
	} else {
		cr.BlackKingside = false
		cr.BlackQueenside = false
	}
}

// ClearRookSquare removes the right tied to a rook home square. Any other
// square is ignored.
func (cr *CastlingRights) ClearRookSquare(sq Square) {
	switch sq {
	case H1:
		cr.WhiteKingside = false
	case A1:
		cr.WhiteQueenside = false
	case H8:
		cr.BlackKingside = false
	case A8:
		cr.BlackQueenside = false
	}
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.WhiteKingside {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if cr.BlackKingside {
		sb.WriteByte('k')
	}
	if cr.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// CastleSquares describes the squares involved in one castling move.
type CastleSquares struct {
	KingFrom, KingTo Square
	RookFrom, RookTo Square

	// Between must be empty; KingPath must not be attacked (it starts
	// with KingFrom).
	Between  []Square
	KingPath []Square
}

// Castle returns the geometry of colour's castling move on the given wing.
func Castle(colour Colour, kingside bool) CastleSquares {
	rank := 0
	if colour == Black {
		rank = 7
	}
	sq := func(file int) Square { return SquareAt(file, rank) }

	if kingside {
		return CastleSquares{
			KingFrom: sq(4),
			KingTo:   sq(6),
			RookFrom: sq(7),
			RookTo:   sq(5),
			Between:  []Square{sq(5), sq(6)},
			KingPath: []Square{sq(4), sq(5), sq(6)},
		}
	}
	return CastleSquares{
		KingFrom: sq(4),
		KingTo:   sq(2),
		RookFrom: sq(0),
		RookTo:   sq(3),
		Between:  []Square{sq(1), sq(2), sq(3)},
		KingPath: []Square{sq(4), sq(3), sq(2)},
	}
}
