package shared

import "golang.org/x/exp/constraints"

// Delta is a (rank, file) step.
type Delta struct {
	DR int
	DF int
}

func (d Delta) Reverse() Delta { return Delta{DR: -d.DR, DF: -d.DF} }

// Diagonal reports whether the step moves along a diagonal.
func (d Delta) Diagonal() bool { return d.DR != 0 && d.DF != 0 }

var (
	BishopDirections = [...]Delta{
		{DR: -1, DF: -1},
		{DR: 1, DF: 1},
		{DR: -1, DF: 1},
		{DR: 1, DF: -1},
	}
	RookDirections = [...]Delta{
		{DR: -1, DF: 0},
		{DR: 0, DF: 1},
		{DR: 1, DF: 0},
		{DR: 0, DF: -1},
	}
	KnightOffsets = [...]Delta{
		{DR: 2, DF: 1},
		{DR: 1, DF: 2},
		{DR: -1, DF: 2},
		{DR: -2, DF: 1},
		{DR: -2, DF: -1},
		{DR: -1, DF: -2},
		{DR: 1, DF: -2},
		{DR: 2, DF: -1},
	}
	KingOffsets = [...]Delta{
		{DR: 1, DF: 0}, {DR: 1, DF: 1}, {DR: 0, DF: 1}, {DR: -1, DF: 1},
		{DR: -1, DF: 0}, {DR: -1, DF: -1}, {DR: 0, DF: -1}, {DR: 1, DF: -1},
	}
)

// DirectionOf returns the unit step leading from one square to the other when
// both share a rank, file or diagonal.
func DirectionOf(from, to Square) (Delta, bool) {
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	if dr == 0 && df == 0 {
		return Delta{}, false
	}
	if dr != 0 && df != 0 && Abs(dr) != Abs(df) {
		return Delta{}, false
	}
	return Delta{DR: normalize(dr), DF: normalize(df)}, true
}

// Line returns the squares strictly between from and to, or nil when the two
// are not aligned or adjacent.
func Line(from, to Square) []Square {
	step, ok := DirectionOf(from, to)
	if !ok {
		return nil
	}
	distance := Max(Abs(to.Rank()-from.Rank()), Abs(to.File()-from.File())) - 1
	if distance <= 0 {
		return nil
	}

	squares := make([]Square, 0, distance)
	sq := from
	for i := 0; i < distance; i++ {
		sq, _ = sq.Offset(step)
		squares = append(squares, sq)
	}
	return squares
}

func normalize(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
