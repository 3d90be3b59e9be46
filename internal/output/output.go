// Package output describes games for people and other programs: board
// text, move descriptions, JSON reports and PGN export.
package output

import (
	"fmt"
	"io"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

const initialFEN = engine.InitialFEN

// Notation selects how moves are written in PGN movetext.
type Notation int

const (
	SAN        Notation = iota // Standard Algebraic Notation (Nf3)
	LALG                       // Long algebraic (g1f3)
	HALG                       // Hyphenated long algebraic (g1-f3)
)

// ParseNotation converts a notation name to a Notation.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(s) {
	case "", "san":
		return SAN, nil
	case "lalg", "uci":
		return LALG, nil
	case "halg":
		return HALG, nil
	}
	return SAN, fmt.Errorf("notation %q: %w", s, errors.ErrInvalidConfig)
}

// sevenTagRoster lists the mandatory PGN tags in order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

var tagDefaults = map[string]string{"Date": "????.??.??"}

// PGNOptions controls PGN export.
type PGNOptions struct {
	Notation      Notation
	MaxLineLength int               // 0 means 80
	Tags          map[string]string // values for the seven tag roster
}

// lineWriter handles formatted output with line length control.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// write writes a token, preceded by a space or a line break.
func (o *lineWriter) write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

func (o *lineWriter) newLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

func (o *lineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Outcome returns the PGN result of a report: "1-0", "0-1", "1/2-1/2" or
// "*" while the game is in progress.
func Outcome(r game.Report) string {
	switch r.Status {
	case game.Checkmate:
		if r.ToMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case game.Stalemate, game.Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WritePGN writes a report as a single PGN game.
func WritePGN(w io.Writer, r game.Report, opts PGNOptions) error {
	result := Outcome(r)
	moves, err := formatMoves(r.StartFEN, r.History, opts.Notation)
	if err != nil {
		return err
	}

	ow := newLineWriter(w, opts.MaxLineLength)
	writeTags(ow, r.StartFEN, result, opts.Tags)
	ow.newLine()
	writeMovetext(ow, r.StartFEN, moves, result)
	ow.newLine()
	return ow.err
}

// PGN returns the movetext of a game, e.g. "1. e4 e5 2. Nf3 *".
func PGN(startFEN string, history []chess.Move, result string) (string, error) {
	moves, err := formatMoves(startFEN, history, SAN)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	ow := newLineWriter(&sb, 1<<30)
	writeMovetext(ow, startFEN, moves, result)
	return sb.String(), nil
}

func writeTags(ow *lineWriter, startFEN, result string, tags map[string]string) {
	for _, tag := range sevenTagRoster {
		value := tags[tag]
		if tag == "Result" {
			value = result
		}
		if value == "" {
			value = tagDefaults[tag]
		}
		if value == "" {
			value = "?"
		}
		ow.print(fmt.Sprintf("[%s \"%s\"]\n", tag, escapeTagValue(value)))
	}
	if startFEN != "" && startFEN != initialFEN {
		ow.print("[SetUp \"1\"]\n")
		ow.print(fmt.Sprintf("[FEN \"%s\"]\n", escapeTagValue(startFEN)))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

func writeMovetext(ow *lineWriter, startFEN string, moves []string, result string) {
	moveNum, isWhite := 1, true
	if pos, err := engine.ParseFEN(startFEN); err == nil {
		moveNum, isWhite = pos.MoveNumber, pos.ToMove == chess.White
	}

	for i, text := range moves {
		if isWhite {
			ow.write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.write(fmt.Sprintf("%d...", moveNum))
		}
		ow.write(text)
		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.write(result)
}

func formatMoves(startFEN string, history []chess.Move, notation Notation) ([]string, error) {
	if notation == SAN {
		return SANMoves(startFEN, history)
	}
	out := make([]string, len(history))
	for i, m := range history {
		if notation == HALG {
			out[i] = m.String()
		} else {
			out[i] = m.UCI()
		}
	}
	return out, nil
}

// SANMoves converts a move history to Standard Algebraic Notation, replaying
// it from startFEN ("" means the initial position).
func SANMoves(startFEN string, history []chess.Move) ([]string, error) {
	if startFEN == "" {
		startFEN = initialFEN
	}
	fen, err := nchess.FEN(startFEN)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	g := nchess.NewGame(fen)

	sans := make([]string, 0, len(history))
	for i, m := range history {
		pos := g.Position()
		nm := findMove(pos, m.UCI())
		if nm == nil {
			return nil, errors.IllegalMove(m.From.String(), m.To.String(), i+1, errors.ReasonUnreachable)
		}
		sans = append(sans, nchess.AlgebraicNotation{}.Encode(pos, nm))
		if err := g.Move(nm); err != nil {
			return nil, errors.Wrapf(err, "replaying %s", m.UCI())
		}
	}
	return sans, nil
}

func findMove(pos *nchess.Position, uci string) *nchess.Move {
	for _, m := range pos.ValidMoves() {
		if m.String() == uci {
			return m
		}
	}
	return nil
}
