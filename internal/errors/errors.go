// Package errors provides sentinel errors and error types for the chess rules
// engine. It defines common error conditions and structured error types that
// preserve context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the legal set for the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a coordinate outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed or impossible FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown game session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidPGN indicates PGN text that cannot be read as a game.
	ErrInvalidPGN = errors.New("invalid PGN")
)

// Reason explains why a move was rejected.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonNoPiece
	ReasonWrongSide
	ReasonUnreachable
	ReasonLeavesKingInCheck
	ReasonBadPromotion
	ReasonAmbiguous
)

// String returns a short human readable explanation.
func (r Reason) String() string {
	switch r {
	case ReasonNoPiece:
		return "no piece on the source square"
	case ReasonWrongSide:
		return "piece belongs to the side not on move"
	case ReasonUnreachable:
		return "piece cannot move there"
	case ReasonLeavesKingInCheck:
		return "move would leave the king in check"
	case ReasonBadPromotion:
		return "invalid promotion choice"
	case ReasonAmbiguous:
		return "move text matches more than one legal move"
	default:
		return ""
	}
}

// MoveError wraps errors with move context: source and destination squares,
// the ply at which the move was attempted and why it was rejected. It
// implements the error interface and supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square, e.g. "e2"
	To     string // Destination square, e.g. "e4"
	Ply    int    // 1-based ply of the attempted move (0 if not applicable)
	Reason Reason // Why the move was rejected
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if reason := e.Reason.String(); reason != "" {
		parts = append(parts, reason)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IllegalMove builds a MoveError wrapping ErrIllegalMove.
func IllegalMove(from, to string, ply int, reason Reason) *MoveError {
	return &MoveError{Err: ErrIllegalMove, From: from, To: to, Ply: ply, Reason: reason}
}

// ParseError represents a parsing error with location context.
// It's used for FEN and configuration parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Which part of the input failed (e.g. "castling")
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
