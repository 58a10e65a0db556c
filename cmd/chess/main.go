// Command chess searches a position for the best move and can play the
// engine against itself from there.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/pkg/profile"

	"minimax_chess/internal/game"
	"minimax_chess/internal/notation"
	"minimax_chess/internal/search"
)

func main() {
	// Flags (env fallbacks).
	fen := flag.String("fen", getenv("CHESS_FEN", game.StartFEN), "position to search")
	moves := flag.String("moves", getenv("CHESS_MOVES", ""), "moves to play first, SAN or UCI, space or comma separated")
	depth := flag.Int("depth", getenvInt("CHESS_DEPTH", search.DefaultDepth), "search depth in plies")
	plies := flag.Int("plies", getenvInt("CHESS_PLIES", 0), "self-play plies after the first search (0: search once)")
	unpruned := flag.Bool("minimax", getenb("CHESS_MINIMAX", false), "search without alpha-beta pruning")
	pgn := flag.Bool("pgn", getenb("CHESS_PGN", false), "print the game as PGN when done")
	level := flag.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "debug, info, warn, error")
	format := flag.String("log-format", getenv("CHESS_LOG_FORMAT", "cli"), "cli, text or json")
	cpuprofile := flag.String("cpuprofile", getenv("CHESS_CPUPROFILE", ""), "write a CPU profile into this directory")
	flag.Parse()

	logger, err := newLogger(*level, *format, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.Quiet).Stop()
	}

	board, err := game.ParseFEN(*fen)
	fatalIf(logger, err, "parse fen")
	for _, text := range splitMoves(*moves) {
		_, err := notation.Play(board, text)
		fatalIf(logger, err, "play "+text)
	}

	eng, err := search.New(search.Config{Depth: *depth}, search.WithLogger(logger))
	fatalIf(logger, err, "search config")

	for i := 0; i == 0 || i < *plies; i++ {
		if status := board.Status(); status.Over() {
			logger.WithField("status", status.String()).Info("game over")
			break
		}

		var res search.Result
		if *unpruned {
			res = eng.Minimax(board, board.Turn())
		} else {
			res = <-eng.Start(board, board.Turn())
		}
		if errors.Is(res.Err, search.ErrNoLegalMove) {
			logger.WithError(res.Err).Warn("search")
			break
		}
		fatalIf(logger, res.Err, "search")

		logger.WithFields(res.Stats).WithFields(log.Fields{
			"ply":   board.Ply() + 1,
			"color": board.Turn().String(),
			"move":  res.Move.String(),
			"score": res.Score,
		}).Info("best move")

		if *plies == 0 {
			fmt.Println(res.Move)
			return
		}
		board.ApplyMove(res.Move)
	}

	fmt.Print(board)
	fmt.Println(board.FEN())
	if *pgn {
		out, err := notation.PGN(board)
		fatalIf(logger, err, "pgn")
		fmt.Println(out)
	}
}

func newLogger(level, format string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	var h log.Handler
	switch strings.ToLower(format) {
	case "cli":
		h = cli.New(w)
	case "text":
		h = text.New(w)
	case "json":
		h = json.New(w)
	default:
		return nil, fmt.Errorf("log format %q: want cli, text or json", format)
	}
	return &log.Logger{Handler: h, Level: lvl}, nil
}

func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func fatalIf(logger log.Interface, err error, label string) {
	if err != nil {
		logger.WithError(err).Fatal(label)
	}
}
