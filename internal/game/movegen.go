package game

import (
	"fmt"

	"minimax_chess/internal/shared"
)

// generator returns the pseudo-legal destinations of one piece: geometry and
// occupancy only, with king safety left to destinations.
type generator func(b *Board, pc Piece) Bitboard

var generators = [...]generator{
	Pawn:   pawnTargets,
	Knight: knightTargets,
	Bishop: bishopTargets,
	Rook:   rookTargets,
	Queen:  queenTargets,
}

// LegalMoves returns the legal destinations of the piece on sq. An empty
// square has none.
func (b *Board) LegalMoves(sq Square) Bitboard {
	pc, ok := b.PieceAt(sq)
	if !ok {
		return 0
	}
	return b.destinations(pc, b.Threats(pc.Color))
}

// GenerateMoves lists every legal move for c. Pieces are visited from a1 to
// h8 and each piece's destinations in ascending order. Promotions come out as
// queen promotions.
func (b *Board) GenerateMoves(c Color) []Move {
	return b.GenerateMovesWith(c, b.Threats(c))
}

// GenerateMovesWith is GenerateMoves with a ThreatContext the caller already
// computed for c in this position.
func (b *Board) GenerateMovesWith(c Color, tc ThreatContext) []Move {
	moves := make([]Move, 0, 48)
	for _, pc := range b.squares {
		if pc.Empty() || pc.Color != c {
			continue
		}
		b.destinations(pc, tc).Iter(func(to Square) {
			moves = append(moves, b.newMove(pc, to, Queen))
		})
	}
	return moves
}

// MoveFor builds the move record for a legal move by the side to move.
// promo picks the promotion piece and defaults to a queen.
func (b *Board) MoveFor(from, to Square, promo Kind) (Move, error) {
	pc, ok := b.PieceAt(from)
	if !ok {
		return Move{}, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, from)
	}
	if pc.Color != b.turn {
		return Move{}, fmt.Errorf("%w: %s is not to move", ErrIllegalMove, pc.Color)
	}
	if !b.LegalMoves(from).Has(to) {
		return Move{}, fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	if promo == None {
		promo = Queen
	}
	switch promo {
	case Queen, Rook, Bishop, Knight:
	default:
		return Move{}, fmt.Errorf("%w: cannot promote to %s", ErrIllegalMove, promo)
	}
	return b.newMove(pc, to, promo), nil
}

func (b *Board) newMove(pc Piece, to Square, promo Kind) Move {
	m := Move{Piece: pc, From: pc.Square, To: to}
	switch df := to.File() - pc.Square.File(); {
	case pc.Kind == King && df == 2:
		m.Flag = MoveCastleRight
	case pc.Kind == King && df == -2:
		m.Flag = MoveCastleLeft
	case pc.Kind == Pawn && to.Rank() == pc.Color.lastRank():
		m.Flag = MovePromotion
		m.Promotion = promo
	}

	if victim := b.squares[to]; !victim.Empty() {
		m.Captured = &victim
	} else if pc.Kind == Pawn && to.File() != pc.Square.File() {
		sq, _ := SquareFromCoords(pc.Square.Rank(), to.File())
		victim := b.squares[sq]
		m.Captured = &victim
	}
	return m
}

// destinations narrows a piece's pseudo-legal targets to legal ones.
func (b *Board) destinations(pc Piece, tc ThreatContext) Bitboard {
	if pc.Kind == King {
		return b.kingDestinations(pc, tc)
	}
	if tc.DoubleCheck() {
		return 0
	}

	moves := generators[pc.Kind](b, pc)
	if moves.Empty() {
		return 0
	}
	if line, pinned := b.pinLine(pc); pinned {
		moves &= line
	}
	if tc.InCheck() {
		moves &= b.evasionMask(pc, tc.attackers[0])
	}
	if pc.Kind == Pawn {
		if to, victim, ok := b.enPassantTarget(pc); ok && moves.Has(to) && b.exposesKing(pc, to, victim) {
			moves = moves.Remove(to)
		}
	}
	return moves
}

// evasionMask is where a non-king piece may go to answer a single check:
// onto the checker, onto the line between a slider and the king, or onto the
// en-passant square when the checker is the pawn it captures.
func (b *Board) evasionMask(pc Piece, checker Piece) Bitboard {
	mask := BB(checker.Square)
	if checker.Kind.slider() {
		mask |= bitboardOf(shared.Line(b.kings[pc.Color], checker.Square)...)
	}
	if pc.Kind == Pawn {
		if to, victim, ok := b.enPassantTarget(pc); ok && victim == checker.Square {
			mask = mask.Add(to)
		}
	}
	return mask
}

// pinLine reports whether pc is the only piece between its king and an
// enemy slider, returning the squares pc may still reach: the line up to and
// including the pinning piece.
func (b *Board) pinLine(pc Piece) (Bitboard, bool) {
	king := b.kings[pc.Color]
	if king == NoSquare {
		return 0, false
	}
	d, ok := shared.DirectionOf(king, pc.Square)
	if !ok {
		return 0, false
	}

	var line Bitboard
	sq := king
	passed := false
	for {
		next, ok := sq.Offset(d)
		if !ok {
			return 0, false
		}
		sq = next
		line = line.Add(sq)
		if sq == pc.Square {
			passed = true
			continue
		}
		occupant := b.squares[sq]
		if occupant.Empty() {
			continue
		}
		if !passed || occupant.Color == pc.Color || !occupant.Kind.slidesAlong(d) {
			return 0, false
		}
		return line, true
	}
}

// exposesKing plays an en-passant capture on a scratch copy of the squares
// and probes the king. Two pawns leave the rank at once, which the pin test
// cannot see.
func (b *Board) exposesKing(pc Piece, to, victim Square) bool {
	king := b.kings[pc.Color]
	if king == NoSquare {
		return false
	}
	scratch := *b
	scratch.clear(pc.Square)
	scratch.clear(victim)
	scratch.place(pc, to)
	return scratch.attacked(king, pc.Color, NoSquare)
}

// enPassantTarget returns the capture square and the square of the pawn taken
// when pc holds an en-passant right.
func (b *Board) enPassantTarget(pc Piece) (Square, Square, bool) {
	var df int
	switch {
	case pc.EnPassantLeft:
		df = -1
	case pc.EnPassantRight:
		df = 1
	default:
		return NoSquare, NoSquare, false
	}
	victim, ok := pc.Square.Offset(shared.Delta{DR: 0, DF: df})
	if !ok {
		return NoSquare, NoSquare, false
	}
	if v := b.squares[victim]; v.Kind != Pawn || v.Color == pc.Color {
		return NoSquare, NoSquare, false
	}
	to, ok := pc.Square.Offset(shared.Delta{DR: pc.Color.forward(), DF: df})
	if !ok || !b.squares[to].Empty() {
		return NoSquare, NoSquare, false
	}
	return to, victim, true
}

func pawnTargets(b *Board, pc Piece) Bitboard {
	var moves Bitboard
	fwd := pc.Color.forward()

	if one, ok := pc.Square.Offset(shared.Delta{DR: fwd}); ok && b.squares[one].Empty() {
		moves = moves.Add(one)
		if pc.Square.Rank() == pc.Color.pawnRank() {
			if two, ok := one.Offset(shared.Delta{DR: fwd}); ok && b.squares[two].Empty() {
				moves = moves.Add(two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to, ok := pc.Square.Offset(shared.Delta{DR: fwd, DF: df})
		if !ok {
			continue
		}
		if target := b.squares[to]; !target.Empty() && target.Color != pc.Color {
			moves = moves.Add(to)
		}
	}

	if to, _, ok := b.enPassantTarget(pc); ok {
		moves = moves.Add(to)
	}
	return moves
}

func knightTargets(b *Board, pc Piece) Bitboard {
	return b.stepTargets(pc, shared.KnightOffsets[:])
}

func bishopTargets(b *Board, pc Piece) Bitboard {
	return b.slideTargets(pc, shared.BishopDirections[:])
}

func rookTargets(b *Board, pc Piece) Bitboard {
	return b.slideTargets(pc, shared.RookDirections[:])
}

func queenTargets(b *Board, pc Piece) Bitboard {
	return bishopTargets(b, pc) | rookTargets(b, pc)
}

func (b *Board) stepTargets(pc Piece, offsets []shared.Delta) Bitboard {
	var moves Bitboard
	for _, d := range offsets {
		to, ok := pc.Square.Offset(d)
		if !ok {
			continue
		}
		if target := b.squares[to]; target.Empty() || target.Color != pc.Color {
			moves = moves.Add(to)
		}
	}
	return moves
}

func (b *Board) slideTargets(pc Piece, dirs []shared.Delta) Bitboard {
	var moves Bitboard
	for _, d := range dirs {
		sq := pc.Square
		for {
			next, ok := sq.Offset(d)
			if !ok {
				break
			}
			sq = next
			target := b.squares[sq]
			if target.Empty() {
				moves = moves.Add(sq)
				continue
			}
			if target.Color != pc.Color {
				moves = moves.Add(sq)
			}
			break
		}
	}
	return moves
}

// kingDestinations probes every step with the king lifted off its square so
// that retreating along a checking ray is seen as unsafe.
func (b *Board) kingDestinations(pc Piece, tc ThreatContext) Bitboard {
	var moves Bitboard
	for _, to := range b.stepTargets(pc, shared.KingOffsets[:]).Squares() {
		if !b.attacked(to, pc.Color, pc.Square) {
			moves = moves.Add(to)
		}
	}
	if tc.InCheck() {
		return moves
	}
	for _, side := range []int{-1, 1} {
		if to, ok := b.castleDestination(pc, side); ok {
			moves = moves.Add(to)
		}
	}
	return moves
}

// castleDestination checks castling toward file 0 (side -1) or file 7
// (side 1). King and rook must be unmoved on their home squares, every square
// between them empty, and the two squares the king crosses unattacked.
func (b *Board) castleDestination(king Piece, side int) (Square, bool) {
	rank := king.Color.homeRank()
	if king.Moved || king.Square.Rank() != rank || king.Square.File() != 4 {
		return NoSquare, false
	}
	rookFile := 7
	if side < 0 {
		rookFile = 0
	}
	rookSq, _ := SquareFromCoords(rank, rookFile)
	rook := b.squares[rookSq]
	if rook.Kind != Rook || rook.Color != king.Color || rook.Moved {
		return NoSquare, false
	}
	for _, sq := range shared.Line(king.Square, rookSq) {
		if !b.squares[sq].Empty() {
			return NoSquare, false
		}
	}
	for step := 1; step <= 2; step++ {
		sq, _ := SquareFromCoords(rank, king.Square.File()+side*step)
		if b.attacked(sq, king.Color, king.Square) {
			return NoSquare, false
		}
	}
	return SquareFromCoords(rank, king.Square.File()+2*side)
}
