package game

import "minimax_chess/internal/shared"

// maxTrackedThreats bounds ThreatContext. Two attackers already force a king
// move, so a third adds nothing to legality.
const maxTrackedThreats = 2

// ThreatContext lists the enemy pieces attacking one king, in probe order.
// It is computed once per position and passed into move generation.
type ThreatContext struct {
	king      Square
	attackers [maxTrackedThreats]Piece
	n         int
	overflow  bool
}

func (t ThreatContext) King() Square { return t.king }

func (t ThreatContext) Count() int { return t.n }

func (t ThreatContext) InCheck() bool { return t.n > 0 }

func (t ThreatContext) DoubleCheck() bool { return t.n >= maxTrackedThreats }

func (t ThreatContext) Attackers() []Piece { return append([]Piece(nil), t.attackers[:t.n]...) }

// Overflowed reports that a third attacker was seen and dropped. Legal play
// never gets there; hand-built positions can.
func (t ThreatContext) Overflowed() bool { return t.overflow }

func (t *ThreatContext) add(p Piece) {
	if t.n == maxTrackedThreats {
		t.overflow = true
		return
	}
	t.attackers[t.n] = p
	t.n++
}

// Threats computes the ThreatContext for the king of color c. A color without
// a king gets an empty context.
func (b *Board) Threats(c Color) ThreatContext {
	tc := ThreatContext{king: b.kings[c]}
	if tc.king == NoSquare {
		return tc
	}
	b.probe(tc.king, c, NoSquare, &tc)
	return tc
}

// IsAttacked reports whether a piece of color c standing on sq would be
// attacked by the other side.
func (b *Board) IsAttacked(sq Square, c Color) bool {
	if !sq.Valid() {
		return false
	}
	return b.attacked(sq, c, NoSquare)
}

func (b *Board) attacked(sq Square, c Color, ignore Square) bool {
	return b.probe(sq, c, ignore, nil)
}

// probe looks for enemies of defender attacking sq. The ignore square reads as
// empty, which lets a king test squares along the ray it currently blocks.
// Without tc the probe stops at the first attacker; with tc every attacker is
// offered to it.
func (b *Board) probe(sq Square, defender Color, ignore Square, tc *ThreatContext) bool {
	enemy := defender.Opposite()
	found := false
	hit := func(p Piece) bool {
		found = true
		if tc == nil {
			return true
		}
		tc.add(p)
		return false
	}

	for _, d := range shared.BishopDirections {
		if p, ok := b.firstAlong(sq, d, ignore); ok && p.Color == enemy && p.Kind.slidesAlong(d) {
			if hit(p) {
				return true
			}
		}
	}
	for _, d := range shared.RookDirections {
		if p, ok := b.firstAlong(sq, d, ignore); ok && p.Color == enemy && p.Kind.slidesAlong(d) {
			if hit(p) {
				return true
			}
		}
	}

	for _, d := range shared.KnightOffsets {
		if t, ok := sq.Offset(d); ok && t != ignore {
			if p := b.squares[t]; p.Kind == Knight && p.Color == enemy {
				if hit(p) {
					return true
				}
			}
		}
	}

	// an enemy pawn attacks sq from one rank behind it, on either side
	for _, df := range []int{-1, 1} {
		if t, ok := sq.Offset(shared.Delta{DR: -enemy.forward(), DF: df}); ok && t != ignore {
			if p := b.squares[t]; p.Kind == Pawn && p.Color == enemy {
				if hit(p) {
					return true
				}
			}
		}
	}

	for _, d := range shared.KingOffsets {
		if t, ok := sq.Offset(d); ok {
			if p := b.squares[t]; p.Kind == King && p.Color == enemy {
				if hit(p) {
					return true
				}
			}
		}
	}

	return found
}

// firstAlong returns the first occupied square met walking from sq in d.
func (b *Board) firstAlong(sq Square, d shared.Delta, ignore Square) (Piece, bool) {
	cur := sq
	for {
		next, ok := cur.Offset(d)
		if !ok {
			return Piece{}, false
		}
		cur = next
		if cur == ignore {
			continue
		}
		if p := b.squares[cur]; !p.Empty() {
			return p, true
		}
	}
}
