package search

// minimax is alphaBeta without the window. A side with no moves scores
// -Infinity when it is the searching side and +Infinity otherwise, which is
// what alphaBeta's bounds reduce to at the root window.
func (s *searcher) minimax(ply, _, _ int) int {
	if ply == s.depth {
		return s.leaf(ply)
	}
	s.stats.Nodes++

	mover := s.mover(ply)
	moves := s.board.GenerateMovesWith(mover, s.board.Threats(mover))

	maximizing := mover == s.color
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, m := range moves {
		s.board.ApplyMove(m)
		v := s.minimax(ply+1, 0, 0)
		s.undo()
		// strict comparisons to match alphaBeta
		if maximizing && v > best || !maximizing && v < best {
			best = v
		}
	}
	return best
}
