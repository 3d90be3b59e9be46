// Package engine implements the chess rules: attack detection, legal move
// generation, move application, draw rules and FEN conversion.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a position from a FEN string. The clock fields may be
// omitted, in which case they default to 0 and 1. The position must be
// legal at rest: one king per side, no pawns on the back ranks, and the side
// not to move must not be in check.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 4 && len(parts) != 6 {
		return nil, fenError(fen, "fields", "4 or 6 space-separated fields", strconv.Itoa(len(parts)))
	}

	pos := chess.NewEmptyPosition()

	if err := parsePiecePositions(pos, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fen, parts[3]); err != nil {
		return nil, err
	}
	if len(parts) == 6 {
		if err := parseClocks(pos, fen, parts[4], parts[5]); err != nil {
			return nil, err
		}
	}
	if err := validatePosition(pos, fen); err != nil {
		return nil, err
	}
	return pos, nil
}

// MustParseFEN is ParseFEN for known-good literals; it panics on error.
func MustParseFEN(fen string) *chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fenError(fen, "placement", "piece letter or digit", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fenError(fen, "placement", "8 files in rank "+strconv.Itoa(rank+1), "more")
			}
			pos.Board.Set(chess.SquareAt(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, "placement", "8 files in rank "+strconv.Itoa(rank+1), strconv.Itoa(file))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	seen := map[rune]bool{}
	for _, c := range field {
		if seen[c] {
			return fenError(fen, "castling", "each of KQkq at most once", field)
		}
		seen[c] = true
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return fenError(fen, "castling", "KQkq or -", field)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target must
// be on the rank behind a pawn that has just double-pushed.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fen, "en passant", "a square or -", field)
	}
	wantRank := 5 // White to move, Black just pushed
	if pos.ToMove == chess.Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank {
		return fenError(fen, "en passant", "rank "+strconv.Itoa(wantRank+1), field)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen, halfmove, fullmove string) error {
	n, err := strconv.Atoi(halfmove)
	if err != nil || n < 0 {
		return fenError(fen, "halfmove clock", "non-negative integer", halfmove)
	}
	pos.HalfmoveClock = n

	n, err = strconv.Atoi(fullmove)
	if err != nil || n < 1 {
		return fenError(fen, "fullmove number", "positive integer", fullmove)
	}
	pos.MoveNumber = n
	return nil
}

// validatePosition rejects placements that cannot arise in a game.
func validatePosition(pos *chess.Position, fen string) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := pos.Board.Count(chess.MakePiece(colour, chess.King)); n != 1 {
			return fenError(fen, "placement", "one "+colour.String()+" king", strconv.Itoa(n))
		}
	}
	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			if pos.Board.Get(file, rank).Kind == chess.Pawn {
				return fenError(fen, "placement", "no pawns on the first or last rank",
					chess.SquareAt(file, rank).String())
			}
		}
	}
	if IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		return fenError(fen, "placement", "side not to move out of check", pos.ToMove.Opposite().String()+" in check")
	}
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// PlacementFEN returns only the piece placement field.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(file, rank)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
