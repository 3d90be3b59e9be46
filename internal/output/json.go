package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// JSONReport represents a game report in JSON format.
type JSONReport struct {
	ToMove            string                                    `json:"toMove"` // "white" or "black"
	Status            game.Status                               `json:"status"`
	DrawReason        game.DrawReason                           `json:"drawReason,omitempty"`
	Result            string                                    `json:"result"`
	Moves             []JSONMove                                `json:"moves"`
	CapturedByWhite   []string                                  `json:"capturedByWhite"`
	CapturedByBlack   []string                                  `json:"capturedByBlack"`
	MaterialAdvantage int                                       `json:"materialAdvantage"`
	Board             [chess.BoardSize][chess.BoardSize]string `json:"board"`
	FEN               string                                    `json:"fen"`
	InitialFEN        string                                    `json:"initialFEN,omitempty"`
	MoveNumber        int                                       `json:"moveNumber"`
	HalfmoveClock     int                                       `json:"halfmoveClock"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Special   string `json:"special,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// ReportJSON converts a game report to its JSON form.
func ReportJSON(r game.Report) *JSONReport {
	jr := &JSONReport{
		ToMove:            colourName(r.ToMove),
		Status:            r.Status,
		DrawReason:        r.DrawReason,
		Result:            Outcome(r),
		Moves:             make([]JSONMove, 0, len(r.History)),
		CapturedByWhite:   pieceLetters(r.CapturedByWhite),
		CapturedByBlack:   pieceLetters(r.CapturedByBlack),
		MaterialAdvantage: r.MaterialAdvantage,
		Board:             Matrix(&r.Board),
		FEN:               r.FEN,
		MoveNumber:        r.MoveNumber,
		HalfmoveClock:     r.HalfmoveClock,
	}
	if r.StartFEN != initialFEN {
		jr.InitialFEN = r.StartFEN
	}
	for i, m := range r.History {
		jr.Moves = append(jr.Moves, moveJSON(i+1, m))
	}
	return jr
}

func moveJSON(ply int, m chess.Move) JSONMove {
	jm := JSONMove{
		Ply:   ply,
		Color: colourName(m.Piece.Colour),
		UCI:   m.UCI(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: string(m.Piece.Letter()),
	}
	if m.IsCapture() {
		jm.Captured = string(m.Captured.Letter())
	}
	if m.Tag != chess.NoTag {
		jm.Special = m.Tag.String()
	}
	if m.IsPromotion() {
		jm.Promotion = strings.ToLower(m.Promotion.String())
	}
	return jm
}

// WriteJSON writes a single report as indented JSON.
func WriteJSON(w io.Writer, r game.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportJSON(r))
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceLetters(pieces []chess.Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = string(p.Letter())
	}
	return out
}
