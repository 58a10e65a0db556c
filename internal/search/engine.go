// Package search picks moves for one side with a depth-limited minimax search
// and alpha-beta pruning over game.Board.Evaluate.
package search

import (
	"fmt"
	"math"
	"time"

	"github.com/apex/log"

	"minimax_chess/internal/game"
)

// Engine holds the search settings. A search never touches the caller's
// board: it works on a clone made before it starts.
type Engine struct {
	depth int
	log   log.Interface
}

// Result is the outcome of one search.
type Result struct {
	Move  game.Move
	Score int
	Stats Stats
	Err   error
}

func New(cfg Config, opts ...Option) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Engine{depth: cfg.Depth, log: silentLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Depth() int { return e.depth }

// SetDepth changes the horizon for later searches. It must not be called while
// a search started with Start is running.
func (e *Engine) SetDepth(depth int) error {
	if err := (Config{Depth: depth}).validate(); err != nil {
		return err
	}
	e.depth = depth
	return nil
}

// BestMove searches b for color and returns the move with the highest score.
// Ties go to the move generated first. The board is left as it was.
func (e *Engine) BestMove(b *game.Board, color game.Color) (game.Move, error) {
	r := e.Search(b, color)
	return r.Move, r.Err
}

// Search is BestMove with the score and counters.
func (e *Engine) Search(b *game.Board, color game.Color) Result {
	return e.run(e.newSearcher(b, color), (*searcher).alphaBeta)
}

// Minimax runs the same search without pruning. It visits more positions and
// must agree with Search on both move and score.
func (e *Engine) Minimax(b *game.Board, color game.Color) Result {
	return e.run(e.newSearcher(b, color), (*searcher).minimax)
}

// Start clones b right away and searches the clone on its own goroutine. The
// channel yields exactly one Result and is then closed.
func (e *Engine) Start(b *game.Board, color game.Color) <-chan Result {
	s := e.newSearcher(b, color)
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- e.run(s, (*searcher).alphaBeta)
	}()
	return out
}

type scorer func(s *searcher, ply, alpha, beta int) int

func (e *Engine) run(s *searcher, score scorer) Result {
	start := time.Now()
	ctx := e.log.WithFields(log.Fields{
		"color": s.color.String(),
		"depth": s.depth,
		"ply":   s.board.Ply(),
	})

	moves := s.board.GenerateMovesWith(s.color, s.board.Threats(s.color))
	if len(moves) == 0 {
		ctx.Debug("no legal move")
		return Result{Err: fmt.Errorf("%w for %s", ErrNoLegalMove, s.color)}
	}

	best, bestScore := moves[0], math.MinInt
	for _, m := range moves {
		s.board.ApplyMove(m)
		v := score(s, 1, -Infinity, Infinity)
		s.undo()
		if v > bestScore {
			best, bestScore = m, v
		}
	}

	s.stats.Elapsed = time.Since(start)
	ctx.WithFields(s.stats).WithFields(log.Fields{
		"move":  best.String(),
		"score": bestScore,
		"moves": len(moves),
	}).Debug("search complete")
	return Result{Move: best, Score: bestScore, Stats: s.stats}
}
