package search

import "minimax_chess/internal/game"

type searcher struct {
	board *game.Board
	color game.Color
	depth int
	stats Stats
}

func (e *Engine) newSearcher(b *game.Board, color game.Color) *searcher {
	return &searcher{board: b.Clone(), color: color, depth: e.depth}
}

// mover is the side to move after ply plies: the searching color on even
// plies, its opponent on odd ones.
func (s *searcher) mover(ply int) game.Color {
	if ply%2 == 0 {
		return s.color
	}
	return s.color.Opposite()
}

func (s *searcher) undo() {
	if err := s.board.UndoMove(); err != nil {
		panic(err) // every undo follows an apply
	}
}

func (s *searcher) leaf(ply int) int {
	s.stats.Leaves++
	return s.board.Evaluate(s.color, ply%2 == 0)
}

// alphaBeta scores the position after ply plies. Scores are clamped to the
// (alpha, beta) window: a node returns its bound as soon as alpha >= beta,
// and a node without moves returns the bound it was given.
func (s *searcher) alphaBeta(ply, alpha, beta int) int {
	if ply == s.depth {
		return s.leaf(ply)
	}
	s.stats.Nodes++

	mover := s.mover(ply)
	moves := s.board.GenerateMovesWith(mover, s.board.Threats(mover))

	if mover == s.color {
		for _, m := range moves {
			s.board.ApplyMove(m)
			v := s.alphaBeta(ply+1, alpha, beta)
			s.undo()
			if v > alpha {
				alpha = v
			}
			if alpha >= beta {
				s.stats.Cutoffs++
				return alpha
			}
		}
		return alpha
	}

	for _, m := range moves {
		s.board.ApplyMove(m)
		v := s.alphaBeta(ply+1, alpha, beta)
		s.undo()
		if v < beta {
			beta = v
		}
		if alpha >= beta {
			s.stats.Cutoffs++
			return beta
		}
	}
	return beta
}
