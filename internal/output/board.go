package output

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Matrix describes a board as eight rows of eight strings, rank 8 first and
// file a first. Each cell holds the FEN letter of its piece (uppercase for
// White) or "" for an empty square.
func Matrix(board *chess.Board) [chess.BoardSize][chess.BoardSize]string {
	var m [chess.BoardSize][chess.BoardSize]string
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Get(file, rank)
			if p.IsPiece() {
				m[chess.BoardSize-1-rank][file] = string(p.Letter())
			}
		}
	}
	return m
}

// BoardOptions controls how a board is drawn as text.
type BoardOptions struct {
	// Unicode draws pieces with chess symbols instead of letters.
	Unicode bool

	// Colour adds terminal colours to pieces and highlighted squares.
	Colour bool

	// Highlight marks squares, e.g. the legal destinations of a piece.
	Highlight chess.SquareSet

	// Flip draws the board from Black's side.
	Flip bool
}

// Text draws the board with one line per rank, rank 8 first, followed by a
// line of file letters. Empty squares are '.'.
func Text(board *chess.Board) string {
	return RenderBoard(board, BoardOptions{})
}

// Symbols is Text with Unicode chess symbols.
func Symbols(board *chess.Board) string {
	return RenderBoard(board, BoardOptions{Unicode: true})
}

// RenderBoard draws the board as text. Highlighted empty squares show '*'.
func RenderBoard(board *chess.Board, opts BoardOptions) string {
	pal := newPalette(opts.Colour)

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if opts.Flip {
			rank = row
		}
		sb.WriteByte(byte('1' + rank))
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if opts.Flip {
				file = chess.BoardSize - 1 - col
			}
			sb.WriteByte(' ')
			sb.WriteString(pal.square(board.Get(file, rank), opts.Highlight.Has(chess.SquareAt(file, rank)), opts.Unicode))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(" ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if opts.Flip {
			file = chess.BoardSize - 1 - col
		}
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

type palette struct {
	white, black, mark *color.Color
}

func newPalette(enabled bool) *palette {
	if !enabled {
		return nil
	}
	p := &palette{
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgRed, color.Bold),
		mark:  color.New(color.BgGreen),
	}
	// Callers decide whether the output is a terminal.
	p.white.EnableColor()
	p.black.EnableColor()
	p.mark.EnableColor()
	return p
}

func (p *palette) square(piece chess.Piece, marked, unicode bool) string {
	text := "."
	switch {
	case piece.IsPiece() && unicode:
		text = piece.Symbol()
	case piece.IsPiece():
		text = string(piece.Letter())
	case marked:
		text = "*"
	}

	if p == nil {
		return text
	}
	if piece.IsPiece() {
		c := p.white
		if piece.Colour == chess.Black {
			c = p.black
		}
		text = c.Sprint(text)
	}
	if marked {
		text = p.mark.Sprint(text)
	}
	return text
}
