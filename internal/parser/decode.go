package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Castling sides for decoded move text.
const (
	NoCastle = iota
	Kingside
	Queenside
)

// MoveText is move text decoded without reference to a position. Fields the
// text leaves open are -1 (files and ranks) or Empty (kinds).
type MoveText struct {
	Text      string
	Kind      chess.Kind // piece named by the text; Pawn when none is named
	FromFile  int
	FromRank  int
	To        chess.Square
	Promotion chess.Kind
	Castle    int
}

func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// pieceKind returns the kind named by an English piece letter. A lowercase
// 'b' is a file, never a bishop.
func pieceKind(c byte) chess.Kind {
	switch c {
	case 'K':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B':
		return chess.Bishop
	}
	return chess.Empty
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// DecodeMove parses SAN ("Nbd7", "exd5", "e8=Q+", "O-O") or coordinate
// ("e2e4", "g1-f3", "e7e8q") move text.
func DecodeMove(text string) (MoveText, error) {
	d := MoveText{Text: text, Kind: chess.Pawn, FromFile: -1, FromRank: -1, To: chess.NoSquare}
	s := strings.TrimSpace(text)
	pos := 0

	cur := func() byte {
		if pos >= len(s) {
			return 0
		}
		return s[pos]
	}
	square := func() (chess.Square, bool) {
		if pos+1 < len(s) && isFile(s[pos]) && isRank(s[pos+1]) {
			sq := chess.SquareAt(int(s[pos]-'a'), int(s[pos+1]-'1'))
			pos += 2
			return sq, true
		}
		return chess.NoSquare, false
	}
	fail := func() (MoveText, error) {
		return MoveText{}, &errors.ParseError{Err: errors.ErrInvalidPGN, Field: "move", Got: fmt.Sprintf("%q", text)}
	}

	switch {
	case isCastlingChar(cur()):
		n := 0
		for isCastlingChar(cur()) {
			n++
			pos++
			if cur() == '-' {
				pos++
			}
		}
		switch n {
		case 2:
			d.Castle = Kingside
		case 3:
			d.Castle = Queenside
		default:
			return fail()
		}
		d.Kind = chess.King

	case pieceKind(cur()) != chess.Empty && !isFile(cur()):
		d.Kind = pieceKind(cur())
		pos++
		// Optional disambiguation: file, rank or full square
		if sq, ok := square(); ok {
			if isCapture(cur()) || isFile(cur()) {
				d.FromFile, d.FromRank = sq.File(), sq.Rank()
			} else {
				d.To = sq
			}
		} else if isFile(cur()) {
			d.FromFile = int(cur() - 'a')
			pos++
		} else if isRank(cur()) {
			d.FromRank = int(cur() - '1')
			pos++
		}
		if d.To == chess.NoSquare {
			if isCapture(cur()) {
				pos++
			}
			sq, ok := square()
			if !ok {
				return fail()
			}
			d.To = sq
		}

	case isFile(cur()):
		if sq, ok := square(); ok {
			if isCapture(cur()) {
				pos++
			}
			if to, ok := square(); ok {
				// Coordinate form names both squares
				d.FromFile, d.FromRank = sq.File(), sq.Rank()
				d.To = to
			} else {
				d.To = sq
			}
		} else {
			// Pawn capture: exd5, or the short form ed
			d.FromFile = int(cur() - 'a')
			pos++
			if isCapture(cur()) {
				pos++
			}
			sq, ok := square()
			if !ok {
				return fail()
			}
			d.To = sq
		}
		if cur() == '=' {
			pos++
		}
		if k := pieceKind(cur()); k != chess.Empty && k != chess.King {
			d.Promotion = k
			pos++
		} else if cur() == 'b' {
			d.Promotion = chess.Bishop
			pos++
		}

	default:
		return fail()
	}

	for isCheck(cur()) {
		pos++
	}
	if strings.HasPrefix(s[pos:], "ep") || strings.HasPrefix(s[pos:], "e.p.") {
		pos = len(s)
	}
	if pos != len(s) {
		return fail()
	}
	return d, nil
}

// Resolve finds the legal move in pos that the text describes. A coordinate
// move whose source holds a piece is matched by squares alone.
func (d MoveText) Resolve(pos *chess.Position) (chess.Move, error) {
	var matches []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if d.matches(pos, m) {
			matches = append(matches, m)
		}
	}

	// A missing promotion letter means a queen.
	if len(matches) > 1 && d.Promotion == chess.Empty {
		for _, m := range matches {
			if m.Promotion == chess.Queen {
				return m, nil
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return chess.Move{}, d.illegal(pos, errors.ReasonUnreachable)
	default:
		return chess.Move{}, d.illegal(pos, errors.ReasonAmbiguous)
	}
}

func (d MoveText) matches(pos *chess.Position, m chess.Move) bool {
	if d.Castle != NoCastle {
		if !m.IsCastle() {
			return false
		}
		if d.Castle == Kingside {
			return m.To.File() == 6
		}
		return m.To.File() == 2
	}

	if m.To != d.To {
		return false
	}
	if d.FromFile >= 0 && m.From.File() != d.FromFile {
		return false
	}
	if d.FromRank >= 0 && m.From.Rank() != d.FromRank {
		return false
	}
	if d.Promotion != chess.Empty && m.Promotion != d.Promotion {
		return false
	}

	// Coordinate text names the source square, so any piece may move.
	coordinate := d.Kind == chess.Pawn && d.FromFile >= 0 && d.FromRank >= 0
	if coordinate {
		return true
	}
	return pos.Board.At(m.From).Kind == d.Kind
}

func (d MoveText) illegal(pos *chess.Position, reason errors.Reason) error {
	var from, to string
	if d.FromFile >= 0 && d.FromRank >= 0 {
		from = chess.SquareAt(d.FromFile, d.FromRank).String()
	}
	if d.To.Valid() {
		to = d.To.String()
	}
	ply := (pos.MoveNumber-1)*2 + 1
	if pos.ToMove == chess.Black {
		ply++
	}
	err := errors.IllegalMove(from, to, ply, reason)
	return errors.Wrapf(err, "%s", d.Text)
}
