package game

// Material values in centipawns. The king's value dwarfs the rest so that
// losing it outweighs any material.
var materialValue = [...]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  1000,
	King:   9999,
}

// threatWeight is charged for each attacked piece when the evaluated side is
// on move and can still react.
var threatWeight = [...]int{
	Pawn:   0,
	Knight: -8,
	Bishop: -4,
	Rook:   -12,
	Queen:  -20,
	King:   -16,
}

// Evaluate scores the position from perspective's point of view: positive
// favours perspective.
//
// Material counts each piece at its value, signed by owner. Every piece that
// stands attacked is counted too, signed the same way. With perspectiveToMove
// the attacked counts are weighed with the small threatWeight table, so an
// attacked own piece costs a little and an attacked enemy piece earns a
// little. Otherwise the opponent moves next and attacked pieces are weighed at
// full value: an attacked own piece is taken off the score and an attacked
// enemy piece is added to it.
func (b *Board) Evaluate(perspective Color, perspectiveToMove bool) int {
	var material, threatened [King + 1]int
	for _, pc := range b.squares {
		if pc.Empty() {
			continue
		}
		sign := 1
		if pc.Color != perspective {
			sign = -1
		}
		material[pc.Kind] += sign
		if b.attacked(pc.Square, pc.Color, NoSquare) {
			threatened[pc.Kind] += sign
		}
	}

	score := 0
	for k := Pawn; k <= King; k++ {
		score += material[k] * materialValue[k]
		if perspectiveToMove {
			score += threatened[k] * threatWeight[k]
		} else {
			score -= threatened[k] * materialValue[k]
		}
	}
	return score
}

// Material is the plain material balance for perspective.
func (b *Board) Material(perspective Color) int {
	score := 0
	for _, pc := range b.squares {
		if pc.Empty() {
			continue
		}
		if pc.Color == perspective {
			score += materialValue[pc.Kind]
		} else {
			score -= materialValue[pc.Kind]
		}
	}
	return score
}
