package shared

// Square indexes the board as rank*8 + file, a1 = 0 and h8 = 63.
type Square uint8

// NoSquare marks the absence of a square.
const NoSquare Square = 64

func (s Square) Rank() int { return int(s) >> 3 }
func (s Square) File() int { return int(s) & 7 }

func (s Square) Valid() bool { return s < NoSquare }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	file := byte('a' + s.File())
	rank := byte('1' + s.Rank())
	return string([]byte{file, rank})
}

// Offset steps the square by d, reporting false when the result leaves the board.
func (s Square) Offset(d Delta) (Square, bool) {
	return SquareFromCoords(s.Rank()+d.DR, s.File()+d.DF)
}

func SquareFromCoords(rank, file int) (Square, bool) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

func CoordToSquare(coord string) (Square, bool) {
	if len(coord) != 2 {
		return NoSquare, false
	}
	file := coord[0]
	rank := coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareFromCoords(int(rank-'1'), int(file-'a'))
}

// MustSquare is CoordToSquare for literals known to be valid.
func MustSquare(coord string) Square {
	sq, ok := CoordToSquare(coord)
	if !ok {
		panic("shared: invalid square " + coord)
	}
	return sq
}
