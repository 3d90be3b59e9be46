package output

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMatrix(t *testing.T) {
	m := Matrix(chess.NewInitialBoard())

	testutil.AssertEqual(t, m[0], [8]string{"r", "n", "b", "q", "k", "b", "n", "r"})
	testutil.AssertEqual(t, m[1], [8]string{"p", "p", "p", "p", "p", "p", "p", "p"})
	testutil.AssertEqual(t, m[4], [8]string{"", "", "", "", "", "", "", ""})
	testutil.AssertEqual(t, m[7], [8]string{"R", "N", "B", "Q", "K", "B", "N", "R"})
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
	}, "\n") + "\n"

	testutil.AssertEqual(t, Text(chess.NewInitialBoard()), want)
}

func TestRenderBoardOptions(t *testing.T) {
	pos := engine.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	t.Run("symbols", func(t *testing.T) {
		text := Symbols(&pos.Board)
		testutil.AssertContains(t, text, "♔")
		testutil.AssertContains(t, text, "♚")
	})

	t.Run("highlight", func(t *testing.T) {
		var marks chess.SquareSet
		marks = marks.Add(chess.MustParseSquare("d1")).Add(chess.MustParseSquare("e1"))
		lines := strings.Split(RenderBoard(&pos.Board, BoardOptions{Highlight: marks}), "\n")
		testutil.AssertEqual(t, lines[7], "1 . . . * K . . .")
	})

	t.Run("flipped", func(t *testing.T) {
		lines := strings.Split(RenderBoard(&pos.Board, BoardOptions{Flip: true}), "\n")
		testutil.AssertEqual(t, lines[0], "1 . . . K . . . .")
		testutil.AssertEqual(t, lines[8], "  h g f e d c b a")
	})

	t.Run("colour", func(t *testing.T) {
		text := RenderBoard(&pos.Board, BoardOptions{Colour: true})
		testutil.AssertContains(t, text, "\x1b[")
		testutil.AssertNotContains(t, Text(&pos.Board), "\x1b[")
	})
}
