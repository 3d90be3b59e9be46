package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Step tables as (file, rank) deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// firstPieceOnRay walks from sq (exclusive) in direction d and returns the
// first non-empty square's content, or NoPiece if the ray runs off the board.
func firstPieceOnRay(board *chess.Board, sq chess.Square, d [2]int) chess.Piece {
	for to, ok := sq.Offset(d[0], d[1]); ok; to, ok = to.Offset(d[0], d[1]) {
		if p := board.At(to); !p.IsEmpty() {
			return p
		}
	}
	return chess.NoPiece
}

// isPathClear reports whether every square in squares is empty.
func isPathClear(board *chess.Board, squares []chess.Square) bool {
	for _, sq := range squares {
		if !board.At(sq).IsEmpty() {
			return false
		}
	}
	return true
}
