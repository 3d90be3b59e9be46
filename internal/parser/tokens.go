// Package parser reads games in PGN and resolves their move text against
// the rules engine.
package parser

// TokenType identifies a PGN token.
type TokenType int

const (
	EOFToken TokenType = iota
	// TagToken is a tag name; its value follows as a StringToken.
	TagToken
	StringToken
	CommentToken
	// NAGToken is "$n". Glyphs such as "!?" arrive converted.
	NAGToken
	CheckToken
	MoveNumberToken
	VariationStart
	VariationEnd
	MoveToken
	ResultToken

	noToken
)

func (t TokenType) String() string {
	switch t {
	case EOFToken:
		return "EOF"
	case TagToken:
		return "TAG"
	case StringToken:
		return "STRING"
	case CommentToken:
		return "COMMENT"
	case NAGToken:
		return "NAG"
	case CheckToken:
		return "CHECK"
	case MoveNumberToken:
		return "MOVE_NUMBER"
	case VariationStart:
		return "VARIATION_START"
	case VariationEnd:
		return "VARIATION_END"
	case MoveToken:
		return "MOVE"
	case ResultToken:
		return "RESULT"
	}
	return "UNKNOWN"
}

// Token is one lexical token and the input line it ended on.
type Token struct {
	Type    TokenType
	Text    string // tag names and values, comments, NAGs, move text, results
	MoveNum int
	Line    int
}
