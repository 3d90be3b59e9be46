package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if got := b.Get(file, rank); got != NoPiece {
					t.Errorf("Get(%d, %d) = %v; want Empty", file, rank, got)
				}
			}
		}
	})

	t.Run("outside the board is Off", func(t *testing.T) {
		for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}} {
			if got := b.Get(c[0], c[1]); got != OffBoard {
				t.Errorf("Get(%d, %d) = %v; want Off", c[0], c[1], got)
			}
		}
	})

	t.Run("zero value is empty", func(t *testing.T) {
		var zero Board
		if got := zero.At(E4); got != NoPiece {
			t.Errorf("zero Board At(e4) = %v; want Empty", got)
		}
	})
}

// E4 is used often enough in these tests to deserve a name.
var E4 = MustParseSquare("e4")

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		square string
		piece  Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black knight g8", "g8", B(Knight)},
		// Empty squares
		{"empty e3", "e3", NoPiece},
		{"empty d4", "d4", NoPiece},
		{"empty f5", "f5", NoPiece},
		{"empty c6", "c6", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(MustParseSquare(tt.square)); got != tt.piece {
				t.Errorf("At(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}

	t.Run("king squares", func(t *testing.T) {
		if sq, ok := b.KingSquare(White); !ok || sq != E1 {
			t.Errorf("KingSquare(White) = %v, %v; want e1, true", sq, ok)
		}
		if sq, ok := b.KingSquare(Black); !ok || sq != E8 {
			t.Errorf("KingSquare(Black) = %v, %v; want e8, true", sq, ok)
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		if n := b.Count(W(Pawn)); n != 8 {
			t.Errorf("Count(white pawn) = %d; want 8", n)
		}
		if n := b.Count(B(Queen)); n != 1 {
			t.Errorf("Count(black queen) = %d; want 1", n)
		}
	})
}

func TestBoardSetRemove(t *testing.T) {
	tests := []struct {
		name   string
		square string
		piece  Piece
	}{
		{"white pawn on e4", "e4", W(Pawn)},
		{"black knight on f6", "f6", B(Knight)},
		{"white queen on d1", "d1", W(Queen)},
		{"black king on e8", "e8", B(King)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			sq := MustParseSquare(tt.square)
			b.Set(sq, tt.piece)
			if got := b.At(sq); got != tt.piece {
				t.Errorf("after Set(%s, %v), At() = %v", tt.square, tt.piece, got)
			}
			if got := b.Remove(sq); got != tt.piece {
				t.Errorf("Remove(%s) = %v; want %v", tt.square, got, tt.piece)
			}
			if got := b.At(sq); got != NoPiece {
				t.Errorf("after Remove, At(%s) = %v; want Empty", tt.square, got)
			}
		})
	}

	t.Run("Set with invalid square is no-op", func(t *testing.T) {
		b := NewInitialBoard()
		before := *b
		b.Set(NoSquare, W(Queen))
		if *b != before {
			t.Error("board changed after Set(NoSquare)")
		}
	})
}

func TestBoardCopy(t *testing.T) {
	original := NewInitialBoard()
	copied := original.Copy()

	copied.Remove(MustParseSquare("e2"))
	copied.Set(E4, W(Pawn))

	if original.At(E4) != NoPiece {
		t.Error("modifying the copy changed the original")
	}
	if original.At(MustParseSquare("e2")) != W(Pawn) {
		t.Error("original lost its e2 pawn")
	}
}

func TestForEachOrder(t *testing.T) {
	b := NewBoard()
	b.Set(MustParseSquare("h8"), B(King))
	b.Set(MustParseSquare("a1"), W(King))
	b.Set(E4, W(Pawn))

	var got []string
	b.ForEach(func(sq Square, p Piece) {
		got = append(got, sq.String())
	})
	want := []string{"a1", "e4", "h8"}
	if len(got) != len(want) {
		t.Fatalf("ForEach visited %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ForEach[%d] = %s; want %s", i, got[i], want[i])
		}
	}
}

func TestKingSquareMissing(t *testing.T) {
	b := NewBoard()
	if sq, ok := b.KingSquare(White); ok || sq != NoSquare {
		t.Errorf("KingSquare on empty board = %v, %v; want -, false", sq, ok)
	}
}
