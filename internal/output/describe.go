package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// NoMovesYet stands in for an empty history.
const NoMovesYet = "No moves yet"

// MoveDescription returns a one-sentence account of a move for display.
func MoveDescription(m chess.Move) string {
	from, to := m.From.String(), m.To.String()
	switch m.Tag {
	case chess.EnPassantCapture:
		return fmt.Sprintf("En passant! %s captures from %s to %s", m.Piece, from, to)
	case chess.KingsideCastle:
		return fmt.Sprintf("Kingside castling! King moves from %s to %s", from, to)
	case chess.QueensideCastle:
		return fmt.Sprintf("Queenside castling! King moves from %s to %s", from, to)
	case chess.Promotion:
		desc := fmt.Sprintf("Promotion to %s from %s to %s", strings.ToLower(m.Promotion.String()), from, to)
		if m.IsCapture() {
			desc += fmt.Sprintf(", capturing %s", m.Captured)
		}
		return desc
	}
	if m.IsCapture() {
		return fmt.Sprintf("%s captures %s from %s to %s", m.Piece, m.Captured, from, to)
	}
	return fmt.Sprintf("Moved %s from %s to %s", m.Piece, from, to)
}

// HistoryText joins moves in hyphenated form, e.g. "e2-e4 | e7-e5".
func HistoryText(history []chess.Move) string {
	if len(history) == 0 {
		return NoMovesYet
	}
	parts := make([]string, len(history))
	for i, m := range history {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// CapturedText lists captured pieces by letter, e.g. "p n".
func CapturedText(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = string(p.Letter())
	}
	return strings.Join(parts, " ")
}

// AdvantageText describes a material balance where positive favours White.
func AdvantageText(advantage int) string {
	switch {
	case advantage > 0:
		return fmt.Sprintf("White +%d", advantage)
	case advantage < 0:
		return fmt.Sprintf("Black +%d", -advantage)
	default:
		return "Equal"
	}
}
