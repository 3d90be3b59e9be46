// Package game owns the state of one chess game: the position, move history,
// captured pieces and status. All mutation goes through Apply and ApplyMove.
//
// A Game is not safe for concurrent use; callers serialize access per game.
package game

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Game is a single game in progress.
type Game struct {
	pos      *chess.Position
	startFEN string
	history  []chess.Move
	captured map[chess.Colour][]chess.Piece // keyed by the capturing side

	status     Status
	drawReason DrawReason
	rules      DrawRules
	seen       *hashing.RepetitionTable
}

// Option configures a Game.
type Option func(*Game)

// WithDrawRules enables the optional draw rules.
func WithDrawRules(rules DrawRules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// New starts a game from the standard initial position.
func New(opts ...Option) *Game {
	return newGame(chess.NewInitialPosition(), opts)
}

// FromFEN starts a game from an arbitrary position.
func FromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos, opts), nil
}

func newGame(pos *chess.Position, opts []Option) *Game {
	g := &Game{
		pos:      pos,
		startFEN: engine.FEN(pos),
		captured: map[chess.Colour][]chess.Piece{},
		seen:     hashing.NewRepetitionTable(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.seen.Record(engine.PositionKey(g.pos))
	g.classify()
	return g
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.pos.Board.Copy()
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// DrawReason returns why the game was drawn, or NoDraw.
func (g *Game) DrawReason() DrawReason {
	return g.drawReason
}

// History returns the applied moves in order.
func (g *Game) History() []chess.Move {
	return slices.Clone(g.history)
}

// StartFEN returns the FEN of the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return engine.FEN(g.pos)
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return len(g.history)
}

// LegalMoves returns every legal move for the side to move. A finished game
// has none.
func (g *Game) LegalMoves() []chess.Move {
	if g.status.IsTerminal() {
		return nil
	}
	return engine.LegalMoves(g.pos)
}

// LegalMovesFrom returns the legal moves of the piece on from.
func (g *Game) LegalMovesFrom(from chess.Square) ([]chess.Move, error) {
	if !from.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "square %d", from)
	}
	if g.status.IsTerminal() {
		return nil, nil
	}
	return engine.LegalMovesFrom(g.pos, from), nil
}

// LegalDestinations returns the squares the piece on from may move to, in
// a1..h8 order. Promotion choices collapse to one destination. An empty
// square or a piece of the side not on move has no destinations.
func (g *Game) LegalDestinations(from chess.Square) ([]chess.Square, error) {
	moves, err := g.LegalMovesFrom(from)
	if err != nil {
		return nil, err
	}
	var set chess.SquareSet
	for _, m := range moves {
		set = set.Add(m.To)
	}
	return set.Squares(), nil
}

// ApplyMove plays the move from one square to another. promotion selects the
// piece for a pawn reaching the last rank; Empty means a queen. The returned
// move is the one applied. On error the game is unchanged.
func (g *Game) ApplyMove(from, to chess.Square, promotion chess.Kind) (chess.Move, error) {
	ply := len(g.history) + 1
	if !from.Valid() || !to.Valid() {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrInvalidSquare,
			From: squareText(from),
			To:   squareText(to),
			Ply:  ply,
		}
	}
	if g.status.IsTerminal() {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrGameOver,
			From: squareText(from),
			To:   squareText(to),
			Ply:  ply,
		}
	}

	m, reason := g.resolve(from, to, promotion)
	if reason != errors.ReasonUnknown {
		return chess.Move{}, errors.IllegalMove(from.String(), to.String(), ply, reason)
	}
	g.commit(m)
	return m, nil
}

// resolve finds the legal move matching the request, or the reason there is
// none.
func (g *Game) resolve(from, to chess.Square, promotion chess.Kind) (chess.Move, errors.Reason) {
	piece := g.pos.Board.At(from)
	switch {
	case !piece.IsPiece():
		return chess.Move{}, errors.ReasonNoPiece
	case piece.Colour != g.pos.ToMove:
		return chess.Move{}, errors.ReasonWrongSide
	}
	if promotion != chess.Empty && !slices.Contains(chess.PromotionKinds, promotion) {
		return chess.Move{}, errors.ReasonBadPromotion
	}

	for _, m := range engine.LegalMovesFrom(g.pos, from) {
		if m.To != to {
			continue
		}
		if !m.IsPromotion() {
			if promotion != chess.Empty {
				return chess.Move{}, errors.ReasonBadPromotion
			}
			return m, errors.ReasonUnknown
		}
		if m.Promotion == promotion || (promotion == chess.Empty && m.Promotion == chess.Queen) {
			return m, errors.ReasonUnknown
		}
	}

	for _, m := range engine.PseudoLegalMovesFrom(g.pos, from) {
		if m.To == to {
			return chess.Move{}, errors.ReasonLeavesKingInCheck
		}
	}
	return chess.Move{}, errors.ReasonUnreachable
}

// Apply plays a move previously produced by the move generator for this
// position.
func (g *Game) Apply(m chess.Move) error {
	ply := len(g.history) + 1
	if g.status.IsTerminal() {
		return &errors.MoveError{Err: errors.ErrGameOver, From: m.From.String(), To: m.To.String(), Ply: ply}
	}
	if !m.From.Valid() || !m.To.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, From: squareText(m.From), To: squareText(m.To), Ply: ply}
	}
	if !slices.Contains(engine.LegalMovesFrom(g.pos, m.From), m) {
		_, reason := g.resolve(m.From, m.To, m.Promotion)
		if reason == errors.ReasonUnknown {
			reason = errors.ReasonUnreachable
		}
		return errors.IllegalMove(m.From.String(), m.To.String(), ply, reason)
	}
	g.commit(m)
	return nil
}

func (g *Game) commit(m chess.Move) {
	mover := g.pos.ToMove
	engine.MakeMove(g.pos, m)
	g.history = append(g.history, m)
	if m.IsCapture() {
		g.captured[mover] = append(g.captured[mover], m.Captured)
	}
	g.seen.Record(engine.PositionKey(g.pos))
	g.classify()
}

// classify recomputes the status for the side to move. Enabled draw rules
// take precedence over check, mate and stalemate.
func (g *Game) classify() {
	g.drawReason = g.drawRuleReached()
	if g.drawReason != NoDraw {
		g.status = Draw
		return
	}

	inCheck := engine.IsInCheck(&g.pos.Board, g.pos.ToMove)
	hasMoves := engine.HasLegalMoves(g.pos)
	switch {
	case inCheck && !hasMoves:
		g.status = Checkmate
	case !hasMoves:
		g.status = Stalemate
	case inCheck:
		g.status = Check
	default:
		g.status = InProgress
	}
}

func (g *Game) drawRuleReached() DrawReason {
	switch {
	case g.rules.FiftyMove && engine.IsFiftyMoveRule(g.pos, g.rules.FiftyMoveLimit):
		return FiftyMoveRule
	case g.rules.Repetition && g.seen.Count(engine.PositionKey(g.pos)) >= repetitionCount(g.rules):
		return Repetition
	case g.rules.InsufficientMaterial && engine.HasInsufficientMaterial(&g.pos.Board):
		return InsufficientMaterial
	}
	return NoDraw
}

func repetitionCount(rules DrawRules) int {
	if rules.RepetitionCount > 0 {
		return rules.RepetitionCount
	}
	return engine.DefaultRepetitionCount
}

// Captured returns the pieces taken by the given side, in capture order.
func (g *Game) Captured(by chess.Colour) []chess.Piece {
	return slices.Clone(g.captured[by])
}

// MaterialAdvantage returns the value White has captured minus the value
// Black has captured, using pawn 1, knight 3, bishop 3, rook 5, queen 9.
// Positive favours White.
func (g *Game) MaterialAdvantage() int {
	return capturedValue(g.captured[chess.White]) - capturedValue(g.captured[chess.Black])
}

func capturedValue(pieces []chess.Piece) int {
	total := 0
	for _, p := range pieces {
		total += p.Kind.Value()
	}
	return total
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.pos = g.pos.Copy()
	c.history = slices.Clone(g.history)
	c.captured = maps.Clone(g.captured)
	for colour, pieces := range c.captured {
		c.captured[colour] = slices.Clone(pieces)
	}
	c.seen = g.seen.Clone()
	return &c
}

// squareText names a square for error messages, falling back to the raw
// index when it is off the board.
func squareText(sq chess.Square) string {
	if sq.Valid() {
		return sq.String()
	}
	return strconv.Itoa(int(sq))
}
