// Package chess provides core chess types: colours, pieces, squares, boards
// and moves. It holds data only; the rules live in package engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Empty square
	Off               // Outside the board
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Off", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the conventional material value of a kind. Kings and
// non-pieces are worth nothing.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// KindFromLetter converts a piece letter in either case to a kind.
// It returns Empty for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// Piece is a coloured chess piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// OffBoard is returned for coordinates outside the board.
var OffBoard = Piece{Kind: Off}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether the piece denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsPiece reports whether p is a real piece (not empty, not off the board).
func (p Piece) IsPiece() bool {
	return p.Kind >= Pawn && p.Kind <= King
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black. Empty squares yield ' '.
func (p Piece) Letter() byte {
	if !p.IsPiece() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

var whiteSymbols = map[Kind]string{King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙"}
var blackSymbols = map[Kind]string{King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟"}

// Symbol returns the Unicode chess symbol for the piece, or "" for an
// empty square.
func (p Piece) Symbol() string {
	if p.Colour == White {
		return whiteSymbols[p.Kind]
	}
	return blackSymbols[p.Kind]
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if !p.IsPiece() {
		return p.Kind.String()
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter to a piece. ok is false for
// characters that are not piece letters.
func PieceFromLetter(c byte) (piece Piece, ok bool) {
	kind := KindFromLetter(c)
	if kind == Empty {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, kind), true
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)
