package game

// Status summarizes the position for the side to move.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "?"
	}
}

// Over reports whether the game has ended.
func (s Status) Over() bool { return s == StatusCheckmate || s == StatusStalemate }

// IsCheck reports whether the king of c is attacked.
func (b *Board) IsCheck(c Color) bool { return b.inCheck[c] }

// HasLegalMove stops at the first piece of c with somewhere to go.
func (b *Board) HasLegalMove(c Color) bool {
	tc := b.Threats(c)
	for _, pc := range b.squares {
		if pc.Empty() || pc.Color != c {
			continue
		}
		if !b.destinations(pc, tc).Empty() {
			return true
		}
	}
	return false
}

func (b *Board) IsCheckmate(c Color) bool { return b.inCheck[c] && !b.HasLegalMove(c) }

func (b *Board) IsStalemate(c Color) bool { return !b.inCheck[c] && !b.HasLegalMove(c) }

func (b *Board) Status() Status {
	current := b.turn
	inCheck := b.inCheck[current]
	if !b.HasLegalMove(current) {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusOngoing
}

// Winner returns the side that delivered mate, if any.
func (b *Board) Winner() (Color, bool) {
	if b.Status() != StatusCheckmate {
		return White, false
	}
	return b.turn.Opposite(), true
}
