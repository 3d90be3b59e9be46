package chess

// Position holds everything the rules need to know about a point in a game:
// the board plus side to move, castling rights, en passant target and the
// move counters.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// The square a pawn skipped on the previous move, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber int
}

// NewInitialPosition returns the standard starting position: full castling
// rights, White to move.
func NewInitialPosition() *Position {
	pos := &Position{
		ToMove:     White,
		Castling:   AllCastlingRights,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	pos.Board.SetupInitialPosition()
	return pos
}

// NewEmptyPosition returns a position with an empty board, no rights and
// White to move.
func NewEmptyPosition() *Position {
	return &Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}
