package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveTag marks the special moves that need extra handling when applied.
type MoveTag int

const (
	NoTag MoveTag = iota
	KingsideCastle
	QueensideCastle
	EnPassantCapture
	Promotion
)

// String returns the string representation of a tag.
func (t MoveTag) String() string {
	switch t {
	case KingsideCastle:
		return "castle-kingside"
	case QueensideCastle:
		return "castle-queenside"
	case EnPassantCapture:
		return "en-passant"
	case Promotion:
		return "promotion"
	default:
		return "none"
	}
}

// Move represents a single fully resolved move. Moves are values produced
// by the move generator; compare them with ==.
type Move struct {
	// Source and destination squares. For castling, To is the king's
	// destination.
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is
	// the pawn removed from beside the destination.
	Captured Piece

	// Special handling required, if any.
	Tag MoveTag

	// The kind promoted to (Empty if not a promotion).
	Promotion Kind
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured.IsPiece()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Tag == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Tag {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsEnPassant returns true if this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Tag == EnPassantCapture
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// String returns the coordinate notation used in move history, e.g.
// "e2-e4" or "e7-e8=Q".
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.IsPromotion() {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// ParseMoveText parses coordinate move text: "e2e4", "e2-e4", "e7e8q",
// "e7-e8=Q". promotion is Empty when no suffix is given.
func ParseMoveText(s string) (from, to Square, promotion Kind, err error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, "-", "")
	t = strings.ReplaceAll(t, "=", "")
	if len(t) != 4 && len(t) != 5 {
		return NoSquare, NoSquare, Empty, fmt.Errorf("move text %q: %w", s, errors.ErrIllegalMove)
	}
	if from, err = ParseSquare(t[0:2]); err != nil {
		return NoSquare, NoSquare, Empty, err
	}
	if to, err = ParseSquare(t[2:4]); err != nil {
		return NoSquare, NoSquare, Empty, err
	}
	promotion = Empty
	if len(t) == 5 {
		promotion = KindFromLetter(t[4])
		if promotion == Empty || promotion == Pawn || promotion == King {
			return NoSquare, NoSquare, Empty, fmt.Errorf("promotion %q: %w", t[4:], errors.ErrIllegalMove)
		}
	}
	return from, to, promotion, nil
}
