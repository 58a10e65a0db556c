// Package game implements the chess rules core: board state, legal move
// generation, move application and undo, and static evaluation.
package game

import "strings"

// Board is a position plus the history of moves that produced it.
//
// Squares form a flat arena indexed by Square. The king squares are kept in
// step with the arena by ApplyMove and UndoMove.
type Board struct {
	squares [64]Piece
	turn    Color
	kings   [2]Square
	inCheck [2]bool
	history []Move
	setup   string
}

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position with White to move.
func NewBoard() *Board {
	b := emptyBoard()
	for file := 0; file < 8; file++ {
		for _, color := range []Color{White, Black} {
			sq, _ := SquareFromCoords(color.homeRank(), file)
			b.place(Piece{Kind: backRank[file], Color: color}, sq)
			sq, _ = SquareFromCoords(color.pawnRank(), file)
			b.place(Piece{Kind: Pawn, Color: color}, sq)
		}
	}
	b.turn = White
	b.setup = StartFEN
	b.refreshChecks()
	return b
}

func emptyBoard() *Board {
	return &Board{kings: [2]Square{NoSquare, NoSquare}}
}

// Clone returns a deep copy, history and king squares included.
func (b *Board) Clone() *Board {
	out := *b
	out.history = make([]Move, len(b.history))
	for i, m := range b.history {
		if m.Captured != nil {
			captured := *m.Captured
			m.Captured = &captured
		}
		out.history[i] = m
	}
	return &out
}

// Equal compares placements, flags, side to move, check status and history.
func (b *Board) Equal(o *Board) bool {
	if b.squares != o.squares || b.turn != o.turn || b.kings != o.kings || b.inCheck != o.inCheck {
		return false
	}
	if len(b.history) != len(o.history) {
		return false
	}
	for i := range b.history {
		if !b.history[i].Same(o.history[i]) {
			return false
		}
	}
	return true
}

func (b *Board) Turn() Color { return b.turn }

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() || b.squares[sq].Empty() {
		return Piece{}, false
	}
	return b.squares[sq], true
}

// KingSquare returns NoSquare when the color has no king on the board.
func (b *Board) KingSquare(c Color) Square { return b.kings[c] }

// History returns a copy of the applied moves, oldest first.
func (b *Board) History() []Move { return append([]Move(nil), b.history...) }

func (b *Board) Ply() int { return len(b.history) }

// SetupFEN is the position the history starts from.
func (b *Board) SetupFEN() string { return b.setup }

// Pieces lists the pieces of one color in square order.
func (b *Board) Pieces(c Color) []Piece {
	var out []Piece
	for _, pc := range b.squares {
		if !pc.Empty() && pc.Color == c {
			out = append(out, pc)
		}
	}
	return out
}

func (b *Board) place(pc Piece, sq Square) {
	pc.Square = sq
	b.squares[sq] = pc
	if pc.Kind == King {
		b.kings[pc.Color] = sq
	}
}

func (b *Board) clear(sq Square) { b.squares[sq] = Piece{} }

func (b *Board) refreshChecks() {
	for _, c := range []Color{White, Black} {
		king := b.kings[c]
		b.inCheck[c] = king != NoSquare && b.attacked(king, c, NoSquare)
	}
}

// String draws the board from rank 8 down, upper case for White.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			sb.WriteByte(' ')
			sb.WriteString(b.squares[sq].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
