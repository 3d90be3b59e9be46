// chessrules replays chess moves from coordinates and reports the resulting
// position: board, status, legal destinations, JSON, PGN or perft counts.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, visitedFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessrules: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.Log.NewLogger(cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := runOptions{
		fen:    *startFEN,
		from:   *fromSquare,
		perft:  *perftDepth,
		divide: *divide,
	}
	switch {
	case opts.perft > 0:
	case *importFile != "":
		if *startFEN != "" || *moveList != "" {
			fmt.Fprintln(os.Stderr, "chessrules: -import cannot be combined with -fen or -moves")
			os.Exit(2)
		}
		opts.fen, opts.moves, err = importPGN(*importFile, os.Stdin, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chessrules: %v\n", err)
			os.Exit(1)
		}
	default:
		opts.moves, err = readMoves(*moveList, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chessrules: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(ctx, cfg, logger, opts); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "chessrules: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies flags over it.
func loadConfig(path string, set map[string]bool) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg, set)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "command line")
	}
	return cfg, nil
}

// runOptions holds the per-invocation inputs that are not configuration.
type runOptions struct {
	fen    string
	moves  []string
	from   string
	perft  int
	divide bool
}

// run replays the moves and writes the report, or runs perft.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, opts runOptions) error {
	if opts.perft > 0 {
		return runPerft(ctx, cfg.OutputFile, logger, opts.fen, opts.perft, opts.divide, cfg.Perft.Workers)
	}

	store := session.NewStore(logger, game.WithDrawRules(cfg.Draw.Rules()))
	id, err := store.Create(opts.fen)
	if err != nil {
		return err
	}

	report, err := replay(store, id, opts.moves)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	outOpts := cfg.Output.Options(isTerminal(cfg.OutputFile))

	var destinations []chess.Square
	if opts.from != "" {
		from, err := chess.ParseSquare(opts.from)
		if err != nil {
			return errors.Wrap(err, "-from")
		}
		if destinations, err = store.Destinations(id, from); err != nil {
			return err
		}
		for _, sq := range destinations {
			outOpts.Board.Highlight = outOpts.Board.Highlight.Add(sq)
		}
	}

	w := output.NewWriter(format, cfg.OutputFile, outOpts)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if opts.from != "" && format == output.FormatText {
		_, err = fmt.Fprintf(cfg.OutputFile, "Moves:    %s -> %s\n", opts.from, destinationText(destinations))
	}
	return err
}

// replay applies coordinate moves in order. The first rejected move stops
// the replay.
func replay(store *session.Store, id string, moves []string) (game.Report, error) {
	for i, text := range moves {
		from, to, promotion, err := chess.ParseMoveText(text)
		if err != nil {
			return game.Report{}, fmt.Errorf("move %d: %w", i+1, err)
		}
		if _, err := store.Move(id, from, to, promotion); err != nil {
			return game.Report{}, fmt.Errorf("move %d (%s): %w", i+1, text, err)
		}
	}
	return store.Report(id)
}

// readMoves returns the moves from text, or from stdin when text is empty
// and stdin is not a terminal.
func readMoves(text string, stdin io.Reader) ([]string, error) {
	if text != "" {
		return splitMoves(text), nil
	}
	if isTerminal(stdin) {
		return nil, nil
	}
	var moves []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		moves = append(moves, splitMoves(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading moves")
	}
	return moves, nil
}

// splitMoves splits a move list on spaces and commas, dropping move numbers
// such as "1." or "12...".
func splitMoves(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	moves := fields[:0]
	for _, f := range fields {
		if isMoveNumber(f) {
			continue
		}
		moves = append(moves, f)
	}
	return moves
}

func isMoveNumber(s string) bool {
	digits := strings.TrimRight(s, ".")
	if digits == s || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func destinationText(squares []chess.Square) string {
	if len(squares) == 0 {
		return "none"
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}

// isTerminal reports whether v is a terminal file.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessrules - replay chess moves and report the position

Usage: chessrules [options]
       echo "e2e4 e7e5 g1f3" | chessrules [options]

       chessrules -import game.pgn [options]

Moves are coordinates: e2e4, e2-e4, e7e8q (promotion letter optional, queen
by default). Move numbers such as "1." are ignored. With -import the first
game of a PGN file is replayed from its SAN move text.

Options:
`)
	flag.PrintDefaults()
}
