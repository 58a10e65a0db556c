package game

import "minimax_chess/internal/shared"

// ApplyMove plays m, which must be legal in the current position, and pushes
// it onto the history. Every en-passant flag on the board is cleared first;
// a double pawn push then hands fresh flags to the enemy pawns beside it.
func (b *Board) ApplyMove(m Move) {
	if m.Flag == MovePromotion && m.Promotion == None {
		m.Promotion = Queen
	}
	m.epLeft, m.epRight = b.takeEnPassant()

	b.clear(m.From)
	if m.Captured != nil {
		b.clear(m.Captured.Square)
	}

	moved := m.Piece
	moved.Moved = true
	moved.EnPassantLeft, moved.EnPassantRight = false, false
	if m.Flag == MovePromotion {
		moved.Kind = m.Promotion
	}
	b.place(moved, m.To)

	rank := m.From.Rank()
	switch m.Flag {
	case MoveCastleLeft:
		b.moveRook(rank, 0, 3, true)
	case MoveCastleRight:
		b.moveRook(rank, 7, 5, true)
	}

	if m.Piece.Kind == Pawn && shared.Abs(m.To.Rank()-m.From.Rank()) == 2 {
		b.grantEnPassant(m.To, m.Piece.Color)
	}

	b.history = append(b.history, m)
	b.turn = b.turn.Opposite()
	b.refreshChecks()
}

// UndoMove reverts the most recent move and restores the position exactly,
// en-passant flags included.
func (b *Board) UndoMove() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.clear(m.To)
	rank := m.From.Rank()
	switch m.Flag {
	case MoveCastleLeft:
		b.moveRook(rank, 3, 0, false)
	case MoveCastleRight:
		b.moveRook(rank, 5, 7, false)
	}
	b.place(m.Piece, m.From)
	if m.Captured != nil {
		b.place(*m.Captured, m.Captured.Square)
	}

	b.takeEnPassant()
	m.epLeft.Iter(func(sq Square) { b.squares[sq].EnPassantLeft = true })
	m.epRight.Iter(func(sq Square) { b.squares[sq].EnPassantRight = true })

	b.turn = b.turn.Opposite()
	b.refreshChecks()
	return nil
}

// Play validates and applies a move for the side to move.
func (b *Board) Play(from, to Square, promo Kind) (Move, error) {
	m, err := b.MoveFor(from, to, promo)
	if err != nil {
		return Move{}, err
	}
	b.ApplyMove(m)
	return b.history[len(b.history)-1], nil
}

func (b *Board) moveRook(rank, fromFile, toFile int, moved bool) {
	from, _ := SquareFromCoords(rank, fromFile)
	to, _ := SquareFromCoords(rank, toFile)
	rook := b.squares[from]
	b.clear(from)
	rook.Moved = moved
	b.place(rook, to)
}

// takeEnPassant clears all en-passant flags and returns where they were.
func (b *Board) takeEnPassant() (left, right Bitboard) {
	for sq := range b.squares {
		pc := &b.squares[sq]
		if pc.EnPassantLeft {
			left = left.Add(Square(sq))
			pc.EnPassantLeft = false
		}
		if pc.EnPassantRight {
			right = right.Add(Square(sq))
			pc.EnPassantRight = false
		}
	}
	return left, right
}

// grantEnPassant flags the enemy pawns standing beside a pawn that just
// advanced two squares to sq.
func (b *Board) grantEnPassant(sq Square, pusher Color) {
	for _, df := range []int{-1, 1} {
		n, ok := sq.Offset(shared.Delta{DF: df})
		if !ok {
			continue
		}
		pc := &b.squares[n]
		if pc.Kind != Pawn || pc.Color == pusher {
			continue
		}
		// a pawn on the pusher's left captures toward file+1
		if df < 0 {
			pc.EnPassantRight = true
		} else {
			pc.EnPassantLeft = true
		}
	}
}
