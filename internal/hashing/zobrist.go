package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	pieceKeys     [2][chess.King + 1][chess.NumSquares]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(0x5EED))
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// GenerateZobristHash hashes piece placement, side to move, castling rights
// and the en passant file. Pass chess.NoSquare as enPassant to leave it out;
// repetition detection does that when no en passant capture is possible.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights, enPassant chess.Square) uint64 {
	hash := HashPlacement(board)
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	for i, has := range []bool{castling.WhiteKingside, castling.WhiteQueenside, castling.BlackKingside, castling.BlackQueenside} {
		if has {
			hash ^= castlingKeys[i]
		}
	}
	if enPassant.Valid() {
		hash ^= enPassantKeys[enPassant.File()]
	}
	return hash
}

// HashPosition hashes a position including its raw en passant target.
func HashPosition(pos *chess.Position) uint64 {
	return GenerateZobristHash(&pos.Board, pos.ToMove, pos.Castling, pos.EnPassant)
}

// HashPlacement hashes piece placement only.
func HashPlacement(board *chess.Board) uint64 {
	var hash uint64
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		hash ^= pieceKeys[p.Colour][p.Kind][sq]
	})
	return hash
}
