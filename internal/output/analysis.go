package output

import (
	"context"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// AnalysisRequest carries what an advice service needs to know about the
// current game. It is the only contract between the rules engine and such
// a service.
type AnalysisRequest struct {
	CurrentPlayer  string                                    `json:"currentPlayer"` // "white" or "black"
	History        string                                    `json:"history"`       // "e2-e4 | e7-e5" or "No moves yet"
	SelectedPiece  string                                    `json:"selectedPiece,omitempty"`
	AvailableMoves string                                    `json:"availableMoves,omitempty"`
	Board          [chess.BoardSize][chess.BoardSize]string `json:"board"`
	FEN            string                                    `json:"fen"`
	Status         game.Status                               `json:"status"`
	Question       string                                    `json:"question"`
}

// Analyzer answers questions about a position. No implementation ships with
// the rules engine.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) (string, error)
}

// NewAnalysisRequest builds a request from a game. When selected names a
// square holding a piece, the piece and its legal destinations are
// included; pass chess.NoSquare for no selection.
func NewAnalysisRequest(g *game.Game, selected chess.Square, question string) AnalysisRequest {
	r := g.Report()
	req := AnalysisRequest{
		CurrentPlayer: colourName(r.ToMove),
		History:       HistoryText(r.History),
		Board:         Matrix(&r.Board),
		FEN:           r.FEN,
		Status:        r.Status,
		Question:      question,
	}

	if !selected.Valid() {
		return req
	}
	piece := r.Board.At(selected)
	if !piece.IsPiece() {
		return req
	}
	req.SelectedPiece = string(piece.Letter()) + " on " + selected.String()

	dests, err := g.LegalDestinations(selected)
	if err != nil || len(dests) == 0 {
		return req
	}
	names := make([]string, len(dests))
	for i, sq := range dests {
		names[i] = sq.String()
	}
	req.AvailableMoves = "Possible moves: " + strings.Join(names, ", ")
	return req
}
