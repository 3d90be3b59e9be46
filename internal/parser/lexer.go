package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// charClass groups input bytes by how they start a token.
type charClass uint8

const (
	classOther charClass = iota
	classSpace
	classTagOpen
	classTagClose
	classQuote
	classCommentOpen
	classCommentClose
	classNAG
	classGlyph
	classCheck
	classDot
	classVariationOpen
	classVariationClose
	classLineComment
	classEscape
	classLetter
	classDigit
	classStar
	classDash
)

var (
	classes   [256]charClass
	moveChars [256]bool
)

func init() {
	for c, class := range map[byte]charClass{
		' ': classSpace, '\t': classSpace, '\r': classSpace, '\n': classSpace,
		'[': classTagOpen, ']': classTagClose, '"': classQuote,
		'{': classCommentOpen, '}': classCommentClose,
		'$': classNAG, '!': classGlyph, '?': classGlyph,
		'+': classCheck, '#': classCheck, '.': classDot,
		'(': classVariationOpen, ')': classVariationClose,
		'%': classLineComment, ';': classLineComment, '\\': classEscape,
		'*': classStar, '-': classDash, '_': classLetter,
	} {
		classes[c] = class
	}
	for c := byte('0'); c <= '9'; c++ {
		classes[c] = classDigit
	}
	for c := byte('a'); c <= 'z'; c++ {
		classes[c] = classLetter
		classes[c-'a'+'A'] = classLetter
	}

	// Files, ranks, piece and promotion letters, separators and castling.
	for _, c := range []byte("abcdefgh12345678KQRNBqrnxX:-=Oo0") {
		moveChars[c] = true
	}
}

// Lexer splits PGN input into tokens. Recoverable problems in the input are
// logged as warnings and skipped.
type Lexer struct {
	r       *bufio.Reader
	line    string
	pos     int
	lineNum int
	depth   int // open variations
	eof     bool
	log     zerolog.Logger
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader, log zerolog.Logger) *Lexer {
	return &Lexer{r: bufio.NewReader(r), log: log}
}

func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.r.ReadString('\n')
	if err != nil {
		l.eof = true
		if line == "" {
			return false
		}
	}
	l.line, l.pos = line, 0
	l.lineNum++
	return true
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func (l *Lexer) skipClass(class charClass) {
	for l.pos < len(l.line) && classes[l.line[l.pos]] == class {
		l.pos++
	}
}

func (l *Lexer) warn(msg string) {
	l.log.Warn().Int("line", l.lineNum).Msg(msg)
}

// NextToken returns the next token, or an EOFToken once input is exhausted.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return &Token{Type: EOFToken, Line: l.lineNum}
			}
			continue
		}
		if tok := l.scan(); tok != nil {
			tok.Line = l.lineNum
			return tok
		}
	}
}

// scan reads from the current position and returns the token found there,
// or nil when the input read produces none.
func (l *Lexer) scan() *Token {
	start := l.pos
	c := l.line[l.pos]
	l.pos++

	switch classes[c] {
	case classSpace:
		l.skipClass(classSpace)
	case classTagOpen:
		return l.tagName()
	case classTagClose:
	case classQuote:
		return l.quoted()
	case classCommentOpen:
		return l.comment()
	case classCommentClose:
		l.warn("unmatched comment end")
	case classNAG:
		l.skipClass(classDigit)
		return &Token{Type: NAGToken, Text: l.line[start:l.pos]}
	case classGlyph:
		l.skipClass(classGlyph)
		return &Token{Type: NAGToken, Text: glyphNAG(l.line[start:l.pos])}
	case classCheck:
		l.skipClass(classCheck)
		return &Token{Type: CheckToken}
	case classDot:
		l.skipClass(classDot)
	case classVariationOpen:
		l.depth++
		return &Token{Type: VariationStart}
	case classVariationClose:
		if l.depth == 0 {
			l.warn("too many ')'")
			return nil
		}
		l.depth--
		return &Token{Type: VariationEnd}
	case classLineComment:
		l.pos = len(l.line)
	case classEscape:
		if l.pos < len(l.line) {
			l.pos++
		}
	case classLetter:
		return l.move(start)
	case classDigit:
		return l.number(c)
	case classStar:
		return &Token{Type: ResultToken, Text: "*"}
	case classDash:
		if l.peek() == '-' {
			l.pos++
			return &Token{Type: MoveToken, Text: "--"}
		}
		l.warn("single '-' not allowed")
	default:
		l.log.Warn().Int("line", l.lineNum).Str("char", string(c)).Msg("unknown character")
		l.skipClass(classOther)
	}
	return nil
}

func (l *Lexer) tagName() *Token {
	l.skipClass(classSpace)
	start := l.pos
	for l.pos < len(l.line) {
		if class := classes[l.line[l.pos]]; class != classLetter && class != classDigit {
			break
		}
		l.pos++
	}
	if l.pos == start {
		return nil
	}
	return &Token{Type: TagToken, Text: l.line[start:l.pos]}
}

// quoted reads a tag value up to the closing quote on the same line.
func (l *Lexer) quoted() *Token {
	var sb strings.Builder
	for l.pos < len(l.line) {
		c := l.line[l.pos]
		l.pos++
		switch {
		case c == '\\' && l.pos < len(l.line):
			sb.WriteByte(l.line[l.pos])
			l.pos++
		case c == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(c)
		}
	}
	l.warn("missing closing quote")
	return &Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// comment reads a brace comment, which may span lines.
func (l *Lexer) comment() *Token {
	var sb strings.Builder
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
		}
		sb.WriteString(l.line[l.pos:])
		l.pos = len(l.line)
		if !l.readLine() {
			break
		}
	}
	l.warn("missing end of comment")
	return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
}

func (l *Lexer) move(start int) *Token {
	if !moveChars[l.line[start]] {
		l.log.Warn().Int("line", l.lineNum).Str("char", l.line[start:start+1]).Msg("unknown character")
		l.skipClass(classLetter)
		return nil
	}
	for l.pos < len(l.line) && moveChars[l.line[l.pos]] {
		l.pos++
	}
	text := l.line[start:l.pos]
	if !plausibleMove(text) {
		l.log.Warn().Int("line", l.lineNum).Str("move", text).Msg("unknown move text")
		return nil
	}
	return &Token{Type: MoveToken, Text: text}
}

// number reads a result, a castling move written with zeros, or a move
// number with its dots.
func (l *Lexer) number(first byte) *Token {
	rest := l.line[l.pos:]
	for _, s := range []struct {
		first byte
		rest  string
		tok   Token
	}{
		{'0', "-1", Token{Type: ResultToken, Text: "0-1"}},
		{'0', "-0-0", Token{Type: MoveToken, Text: "O-O-O"}},
		{'0', "-0", Token{Type: MoveToken, Text: "O-O"}},
		{'1', "-0", Token{Type: ResultToken, Text: "1-0"}},
		{'1', "/2-1/2", Token{Type: ResultToken, Text: "1/2-1/2"}},
		{'1', "/2", Token{Type: ResultToken, Text: "1/2-1/2"}},
	} {
		if first == s.first && strings.HasPrefix(rest, s.rest) {
			l.pos += len(s.rest)
			tok := s.tok
			return &tok
		}
	}

	start := l.pos - 1
	l.skipClass(classDigit)
	n, _ := strconv.Atoi(l.line[start:l.pos])
	l.skipClass(classDot)
	return &Token{Type: MoveNumberToken, MoveNum: n}
}

// glyphNAG converts a move suffix annotation to its NAG.
func glyphNAG(glyph string) string {
	switch glyph {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	}
	return "$0"
}

// plausibleMove reports whether text could be a move: castling, or text
// naming at least one file and one rank.
func plausibleMove(text string) bool {
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o":
		return true
	}
	return strings.ContainsAny(text, "abcdefgh") && strings.ContainsAny(text, "12345678")
}

// RestartForNewGame forgets open variations from a previous game.
func (l *Lexer) RestartForNewGame() {
	l.depth = 0
}

// LineNumber returns the number of the line being read.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
