package chess

// Board is the 8x8 grid of squares, indexed [file][rank]. It is a plain
// value: assigning a Board copies it. The zero Board is empty.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	*b = Board{}
}

// Get returns the piece at the given zero-based coordinates, or OffBoard if
// they are outside the board.
func (b *Board) Get(file, rank int) Piece {
	if !onBoard(file, rank) {
		return OffBoard
	}
	return b.Squares[file][rank]
}

// At returns the piece on sq, or OffBoard for an invalid square.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return OffBoard
	}
	return b.Squares[sq.File()][sq.Rank()]
}

// Set places a piece on sq. Invalid squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File()][sq.Rank()] = piece
	}
}

// Remove empties sq and returns what was there.
func (b *Board) Remove(sq Square) Piece {
	piece := b.At(sq)
	b.Set(sq, NoPiece)
	return piece
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// ForEach calls fn for every occupied square in a1..h8 order.
func (b *Board) ForEach(fn func(sq Square, piece Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if piece := b.Squares[file][rank]; piece.IsPiece() {
				fn(Square(rank*BoardSize+file), piece)
			}
		}
	}
}

// KingSquare returns the square of colour's king, searching a1..h8. ok is
// false when there is no such king.
func (b *Board) KingSquare(colour Colour) (sq Square, ok bool) {
	king := MakePiece(colour, King)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[file][rank] == king {
				return Square(rank*BoardSize + file), true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many copies of piece are on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	b.ForEach(func(_ Square, p Piece) {
		if p == piece {
			n++
		}
	})
	return n
}
