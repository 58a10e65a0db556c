package game

import (
	"fmt"
	"strings"

	"minimax_chess/internal/shared"
)

type Square = shared.Square

const NoSquare = shared.NoSquare

func SquareFromCoords(rank, file int) (Square, bool) { return shared.SquareFromCoords(rank, file) }

func CoordToSquare(coord string) (Square, bool) { return shared.CoordToSquare(coord) }

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank step a pawn of this color advances by.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) homeRank() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) pawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

func (c Color) lastRank() int {
	if c == White {
		return 7
	}
	return 0
}

func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white", "light":
		return White, true
	case "b", "black", "dark":
		return Black, true
	default:
		return White, false
	}
}

// Kind tags what stands on a square. None is an empty square.
type Kind uint8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case None:
		return "."
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

func (k Kind) slider() bool { return k == Bishop || k == Rook || k == Queen }

// slidesAlong reports whether the kind attacks along rays in direction d.
func (k Kind) slidesAlong(d shared.Delta) bool {
	if d.Diagonal() {
		return k == Bishop || k == Queen
	}
	return k == Rook || k == Queen
}

func ParsePromotion(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "queen":
		return Queen, true
	case "r", "rook":
		return Rook, true
	case "b", "bishop":
		return Bishop, true
	case "n", "knight":
		return Knight, true
	default:
		return None, false
	}
}

// Piece is the record of one piece. The zero value is an empty square.
//
// Moved is set once the piece has left its square; castling reads it on the
// king and rooks. The en-passant flags live on the pawn that may capture:
// EnPassantLeft toward file-1, EnPassantRight toward file+1. They only survive
// until the next move is applied.
type Piece struct {
	Kind           Kind
	Color          Color
	Square         Square
	Moved          bool
	EnPassantLeft  bool
	EnPassantRight bool
}

func (p Piece) Empty() bool { return p.Kind == None }

func (p Piece) String() string {
	if p.Empty() {
		return "."
	}
	s := p.Kind.String()
	if p.Color == Black {
		s = strings.ToLower(s)
	}
	return s
}

// MoveFlag marks moves that touch more than the moving piece.
type MoveFlag uint8

const (
	MoveNormal MoveFlag = iota
	MoveCastleLeft
	MoveCastleRight
	MovePromotion
)

func (f MoveFlag) String() string {
	switch f {
	case MoveNormal:
		return "normal"
	case MoveCastleLeft:
		return "castle-left"
	case MoveCastleRight:
		return "castle-right"
	case MovePromotion:
		return "promotion"
	default:
		return "?"
	}
}

// Move is the record of one move. Piece is the mover as it stood before the
// move (for a promotion, the pawn). Captured holds the removed piece, which
// sits beside To rather than on it for an en-passant capture.
type Move struct {
	Piece     Piece
	From      Square
	To        Square
	Captured  *Piece
	Flag      MoveFlag
	Promotion Kind

	// en-passant flags cleared when the move was applied
	epLeft  Bitboard
	epRight Bitboard
}

// Same reports whether two records describe the same move.
func (m Move) Same(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Flag == o.Flag && m.Promotion == o.Promotion
}

func (m Move) IsCapture() bool { return m.Captured != nil }

func (m Move) IsEnPassant() bool { return m.Captured != nil && m.Captured.Square != m.To }

func (m Move) IsCastle() bool { return m.Flag == MoveCastleLeft || m.Flag == MoveCastleRight }

// String renders the move in long algebraic (UCI) form, e.g. e7e8q.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Flag == MovePromotion {
		s += strings.ToLower(m.Promotion.String())
	}
	return s
}
