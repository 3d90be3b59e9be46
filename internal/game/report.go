package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Report is a snapshot of a game for display or export.
type Report struct {
	ToMove            chess.Colour
	Status            Status
	DrawReason        DrawReason
	History           []chess.Move
	CapturedByWhite   []chess.Piece
	CapturedByBlack   []chess.Piece
	MaterialAdvantage int // positive favours White
	Board             chess.Board
	FEN               string
	StartFEN          string
	MoveNumber        int
	HalfmoveClock     int
}

// Report returns a snapshot of the game. It shares no memory with the game.
func (g *Game) Report() Report {
	return Report{
		ToMove:            g.pos.ToMove,
		Status:            g.status,
		DrawReason:        g.drawReason,
		History:           g.History(),
		CapturedByWhite:   g.Captured(chess.White),
		CapturedByBlack:   g.Captured(chess.Black),
		MaterialAdvantage: g.MaterialAdvantage(),
		Board:             g.pos.Board,
		FEN:               g.FEN(),
		StartFEN:          g.startFEN,
		MoveNumber:        g.pos.MoveNumber,
		HalfmoveClock:     g.pos.HalfmoveClock,
	}
}

// Winner returns the side that delivered checkmate.
func (r Report) Winner() (chess.Colour, bool) {
	if r.Status != Checkmate {
		return chess.White, false
	}
	return r.ToMove.Opposite(), true
}
