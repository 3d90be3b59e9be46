package chess

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square identifies one of the 64 board squares as rank*8 + file, with
// file 0 = 'a' and rank 0 = '1'.
type Square int8

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = -1

// Named squares used by the castling rules and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Square(rank*BoardSize + file), nil
}

// SquareAt is NewSquare for coordinates already known to be on the board.
// It returns NoSquare when they are not.
func SquareAt(file, rank int) Square {
	if !onBoard(file, rank) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare parses algebraic coordinates such as "e4". Surrounding
// whitespace and upper case files are accepted.
func ParseSquare(s string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if len(t) != 2 || t[0] < 'a' || t[0] > 'h' || t[1] < '1' || t[1] > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Square(int(t[1]-'1')*BoardSize + int(t[0]-'a')), nil
}

// MustParseSquare is ParseSquare for literals; it panics on bad input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether s denotes a square on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the zero-based file (0 = 'a').
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the zero-based rank (0 = '1').
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Offset returns the square df files and dr ranks away, and false if that
// leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	file, rank := s.File()+df, s.Rank()+dr
	if !onBoard(file, rank) {
		return NoSquare, false
	}
	return Square(rank*BoardSize + file), true
}

// String returns algebraic coordinates, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// IsLight reports whether s is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

// Add returns the set with sq included.
func (ss SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return ss
	}
	return ss | 1<<uint(sq)
}

// Has reports whether sq is in the set.
func (ss SquareSet) Has(sq Square) bool {
	return sq.Valid() && ss&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (ss SquareSet) Len() int {
	return bits.OnesCount64(uint64(ss))
}

// Squares returns the members in ascending order (a1, b1, ..., h8).
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for m := uint64(ss); m != 0; m &= m - 1 {
		out = append(out, Square(bits.TrailingZeros64(m)))
	}
	return out
}

// String lists the members, e.g. "{e3 e4}".
func (ss SquareSet) String() string {
	names := make([]string, 0, ss.Len())
	for _, sq := range ss.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
