package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// DefaultFiftyMoveLimit is the fifty-move rule expressed in half-moves.
const DefaultFiftyMoveLimit = 100

// DefaultRepetitionCount is the number of occurrences for a repetition draw.
const DefaultRepetitionCount = 3

// IsFiftyMoveRule returns true once limit half-moves have passed without a
// pawn move or capture. A limit of 0 or less uses DefaultFiftyMoveLimit.
func IsFiftyMoveRule(pos *chess.Position, limit int) bool {
	if limit <= 0 {
		limit = DefaultFiftyMoveLimit
	}
	return pos.HalfmoveClock >= limit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.ForEach(func(sq chess.Square, piece chess.Piece) {
		switch piece.Kind {
		case chess.King:
			// Kings don't count for material
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
		default:
			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = sq.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = sq.IsLight()
				}
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// EffectiveEnPassant returns the en passant target only if the side to move
// can actually capture onto it; otherwise NoSquare. Positions that differ
// only in an unusable target count as the same for repetition.
func EffectiveEnPassant(pos *chess.Position) chess.Square {
	if !pos.EnPassant.Valid() {
		return chess.NoSquare
	}
	behind := -chess.ColourOffset(pos.ToMove)
	for _, df := range []int{-1, 1} {
		from, ok := pos.EnPassant.Offset(df, behind)
		if !ok || pos.Board.At(from) != chess.MakePiece(pos.ToMove, chess.Pawn) {
			continue
		}
		for _, m := range LegalMovesFrom(pos, from) {
			if m.IsEnPassant() {
				return pos.EnPassant
			}
		}
	}
	return chess.NoSquare
}

// PositionKey identifies a position for repetition: placement, side to
// move, castling rights and a usable en passant target.
func PositionKey(pos *chess.Position) uint64 {
	return hashing.GenerateZobristHash(&pos.Board, pos.ToMove, pos.Castling, EffectiveEnPassant(pos))
}
