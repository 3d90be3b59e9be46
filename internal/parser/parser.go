package parser

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Game is one game read from PGN: its tags in input order, the main line
// move text and the result. Variations, comments and NAGs are skipped.
type Game struct {
	Tags      map[string]string
	TagOrder  []string
	Moves     []string
	Result    string
	StartLine int
	EndLine   int
}

// Tag returns a tag value, or "" when absent.
func (g *Game) Tag(name string) string {
	return g.Tags[name]
}

// StartFEN returns the FEN tag, or "" for the standard position.
func (g *Game) StartFEN() string {
	return g.Tags["FEN"]
}

func (g *Game) setTag(name, value string) {
	if _, ok := g.Tags[name]; !ok {
		g.TagOrder = append(g.TagOrder, name)
	}
	g.Tags[name] = value
}

// Replay plays the main line from the start position and returns the game.
// The first move that does not resolve to a legal move stops the replay.
func (g *Game) Replay(opts ...game.Option) (*game.Game, error) {
	var (
		played *game.Game
		err    error
	)
	if fen := g.StartFEN(); fen != "" {
		if played, err = game.FromFEN(fen, opts...); err != nil {
			return nil, errors.Wrap(err, "FEN tag")
		}
	} else {
		played = game.New(opts...)
	}

	for _, text := range g.Moves {
		m, err := resolve(played, text)
		if err != nil {
			return played, err
		}
		if err := played.Apply(m); err != nil {
			return played, errors.Wrapf(err, "%s", text)
		}
	}
	return played, nil
}

// CoordinateMoves resolves the main line to coordinate text such as "e2e4".
func (g *Game) CoordinateMoves() ([]string, error) {
	played, err := g.Replay()
	if err != nil {
		return nil, err
	}
	history := played.History()
	out := make([]string, len(history))
	for i, m := range history {
		out[i] = m.UCI()
	}
	return out, nil
}

func resolve(g *game.Game, text string) (chess.Move, error) {
	if g.Status().IsTerminal() {
		return chess.Move{}, errors.Wrapf(errors.ErrGameOver, "%s", text)
	}
	d, err := DecodeMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	return d.Resolve(g.Position())
}

// Parser parses PGN input into Game structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	depth        int
	log          zerolog.Logger
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader, log zerolog.Logger) *Parser {
	return &Parser{
		lexer: NewLexer(r, log),
		log:   log,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	p.skipToNextGame()
	p.skipComments()
	p.lexer.RestartForNewGame()
	p.depth = 0

	g := &Game{Tags: make(map[string]string), StartLine: p.lexer.LineNumber()}

	p.parseOptTagList(g)

	for p.currentToken.Type == NAGToken {
		p.nextToken()
	}

	g.Moves = p.parseMoveList()
	p.skipComments()

	result := p.parseResult()
	g.EndLine = p.lexer.LineNumber()

	if result != "" {
		g.Result = result
		if r := g.Tag("Result"); r == "" || r == "?" {
			g.setTag("Result", result)
		}
	} else {
		g.Result = g.Tag("Result")
	}

	if p.currentToken.Type == EOFToken && len(g.Moves) == 0 && len(g.Tags) == 0 {
		return nil, nil
	}
	if g.Tag("SetUp") == "1" && g.StartFEN() == "" {
		return g, &errors.ParseError{Err: errors.ErrInvalidPGN, Field: "SetUp", Expected: "FEN tag"}
	}
	return g, nil
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, ResultToken:
			return
		default:
			p.nextToken()
		}
	}
}

// parseOptTagList parses zero or more tags.
func (p *Parser) parseOptTagList(g *Game) {
	for p.parseTag(g) {
	}
	p.skipComments()
}

// parseTag parses a single tag.
func (p *Parser) parseTag(g *Game) bool {
	switch p.currentToken.Type {
	case TagToken:
		name := p.currentToken.Text
		p.nextToken()
		if p.currentToken.Type == StringToken {
			g.setTag(name, p.currentToken.Text)
			p.nextToken()
		} else {
			p.log.Warn().Int("line", p.currentToken.Line).Str("tag", name).Msg("missing tag string")
		}
		return true
	case StringToken:
		p.log.Warn().Int("line", p.currentToken.Line).Str("value", p.currentToken.Text).Msg("missing tag name")
		p.nextToken()
		return true
	}
	return false
}

// parseMoveList parses the moves at the current variation level.
func (p *Parser) parseMoveList() []string {
	var moves []string
	for {
		text, ok := p.parseMove()
		if !ok {
			return moves
		}
		moves = append(moves, text)
		p.skipVariations()
		p.skipComments()
	}
}

// parseMove parses a single move with its number, check marks and NAGs.
func (p *Parser) parseMove() (string, bool) {
	if p.currentToken.Type == MoveNumberToken {
		p.nextToken()
	}
	if p.currentToken.Type != MoveToken {
		return "", false
	}

	text := p.currentToken.Text
	p.nextToken()
	for p.currentToken.Type == CheckToken {
		p.nextToken()
	}
	p.skipComments()
	for p.currentToken.Type == NAGToken {
		p.nextToken()
		p.skipComments()
	}
	return text, true
}

func (p *Parser) skipComments() {
	for p.currentToken.Type == CommentToken {
		p.nextToken()
	}
}

// skipVariations discards zero or more variations, including nested ones.
func (p *Parser) skipVariations() {
	for p.currentToken.Type == VariationStart {
		p.depth++
		p.nextToken()
		p.skipComments()

		if moves := p.parseMoveList(); len(moves) == 0 {
			p.log.Warn().Int("line", p.currentToken.Line).Msg("missing move list in variation")
		}
		p.parseResult()
		p.skipComments()

		if p.currentToken.Type == VariationEnd {
			p.depth--
			p.nextToken()
		} else {
			p.log.Warn().Int("line", p.currentToken.Line).Msg("missing ')' to close variation")
			p.depth--
		}
		p.skipComments()
	}
}

// parseResult parses a game result.
func (p *Parser) parseResult() string {
	if p.currentToken.Type != ResultToken {
		return ""
	}
	result := p.currentToken.Text
	if p.depth == 0 {
		// Set to noToken to help skip between games
		p.currentToken = &Token{Type: noToken}
	} else {
		p.nextToken()
	}
	return result
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		g, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if g == nil {
			return games, nil
		}
		games = append(games, g)
	}
}
