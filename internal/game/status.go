package game

import "fmt"

// Status classifies a position for the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

var statusNames = map[Status]string{
	InProgress: "in_progress",
	Check:      "check",
	Checkmate:  "checkmate",
	Stalemate:  "stalemate",
	Draw:       "draw",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further moves may be applied.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// DrawReason records which optional rule ended the game in a draw.
type DrawReason int

const (
	NoDraw DrawReason = iota
	FiftyMoveRule
	Repetition
	InsufficientMaterial
)

func (r DrawReason) String() string {
	switch r {
	case FiftyMoveRule:
		return "fifty_move_rule"
	case Repetition:
		return "repetition"
	case InsufficientMaterial:
		return "insufficient_material"
	default:
		return ""
	}
}

// MarshalText encodes the reason by name.
func (r DrawReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a reason name.
func (r *DrawReason) UnmarshalText(text []byte) error {
	for _, reason := range []DrawReason{NoDraw, FiftyMoveRule, Repetition, InsufficientMaterial} {
		if reason.String() == string(text) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("unknown draw reason %q", text)
}

// DrawRules selects the optional draw rules. All are off in the zero value.
type DrawRules struct {
	FiftyMove            bool
	FiftyMoveLimit       int // half-moves; 0 means 100
	Repetition           bool
	RepetitionCount      int // occurrences; 0 means 3
	InsufficientMaterial bool
}

// AllDrawRules enables every optional rule with standard limits.
func AllDrawRules() DrawRules {
	return DrawRules{
		FiftyMove:            true,
		Repetition:           true,
		InsufficientMaterial: true,
	}
}
