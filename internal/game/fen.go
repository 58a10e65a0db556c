package game

import (
	"fmt"
	"strconv"
	"strings"
)

// CastlingRights is the FEN castling field as a bit set.
type CastlingRights uint8

const (
	CastlingNone          CastlingRights = 0
	CastlingWhiteKingside CastlingRights = 1 << iota
	CastlingWhiteQueenside
	CastlingBlackKingside
	CastlingBlackQueenside
	CastlingAll = CastlingWhiteKingside | CastlingWhiteQueenside | CastlingBlackKingside | CastlingBlackQueenside
)

// castlingRight maps a color and a rook file (0 or 7) to its right.
func castlingRight(c Color, rookFile int) CastlingRights {
	switch {
	case c == White && rookFile == 7:
		return CastlingWhiteKingside
	case c == White && rookFile == 0:
		return CastlingWhiteQueenside
	case c == Black && rookFile == 7:
		return CastlingBlackKingside
	case c == Black && rookFile == 0:
		return CastlingBlackQueenside
	default:
		return CastlingNone
	}
}

func (cr CastlingRights) Has(right CastlingRights) bool { return cr&right != 0 }

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteKingside) {
		b.WriteByte('K')
	}
	if cr.Has(CastlingWhiteQueenside) {
		b.WriteByte('Q')
	}
	if cr.Has(CastlingBlackKingside) {
		b.WriteByte('k')
	}
	if cr.Has(CastlingBlackQueenside) {
		b.WriteByte('q')
	}
	return b.String()
}

func ParseCastlingRights(s string) (CastlingRights, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return CastlingNone, nil
	}
	var rights CastlingRights
	for _, r := range trimmed {
		switch r {
		case 'K':
			rights |= CastlingWhiteKingside
		case 'Q':
			rights |= CastlingWhiteQueenside
		case 'k':
			rights |= CastlingBlackKingside
		case 'q':
			rights |= CastlingBlackQueenside
		default:
			return CastlingNone, fmt.Errorf("invalid castling flag %q", string(r))
		}
	}
	return rights, nil
}

// Castling derives the rights still open from the Moved flags of the kings
// and corner rooks.
func (b *Board) Castling() CastlingRights {
	var rights CastlingRights
	for _, c := range []Color{White, Black} {
		king := b.kings[c]
		if king == NoSquare {
			continue
		}
		kp := b.squares[king]
		if kp.Moved || king.Rank() != c.homeRank() || king.File() != 4 {
			continue
		}
		for _, file := range []int{7, 0} {
			sq, _ := SquareFromCoords(c.homeRank(), file)
			if rook := b.squares[sq]; rook.Kind == Rook && rook.Color == c && !rook.Moved {
				rights |= castlingRight(c, file)
			}
		}
	}
	return rights
}

// EnPassantSquare returns the square a pawn of the side to move may capture
// onto en passant, if any.
func (b *Board) EnPassantSquare() (Square, bool) {
	for _, pc := range b.squares {
		if pc.Kind != Pawn || pc.Color != b.turn {
			continue
		}
		if to, _, ok := b.enPassantTarget(pc); ok {
			return to, true
		}
	}
	return NoSquare, false
}

// ParseFEN sets up a board from Forsyth-Edwards Notation. The clocks are
// optional. Castling rights decide the Moved flags of kings and corner rooks;
// an en-passant square is kept only when a pawn can capture onto it.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: want 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	b := emptyBoard()
	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	for _, c := range []Color{White, Black} {
		if b.kings[c] == NoSquare {
			return nil, fmt.Errorf("%w: no %s king", ErrInvalidFEN, c)
		}
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	rights, err := ParseCastlingRights(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	b.applyCastlingRights(rights)

	if fields[3] != "-" {
		sq, ok := CoordToSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("%w: en-passant square %q", ErrInvalidFEN, fields[3])
		}
		b.applyEnPassantSquare(sq)
	}

	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 6:
		if _, err := strconv.Atoi(fields[4]); err != nil {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		if n, err := strconv.Atoi(fields[5]); err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
	default:
		return nil, fmt.Errorf("%w: want 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	b.setup = strings.Join(fields, " ")
	b.refreshChecks()
	return b, nil
}

func (b *Board) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range row {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			kind, color, ok := pieceFromRune(r)
			if !ok {
				return fmt.Errorf("%w: piece %q", ErrInvalidFEN, string(r))
			}
			sq, ok := SquareFromCoords(rank, file)
			if !ok {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			if kind == King && b.kings[color] != NoSquare {
				return fmt.Errorf("%w: two %s kings", ErrInvalidFEN, color)
			}
			b.place(Piece{Kind: kind, Color: color, Moved: kind == King || kind == Rook}, sq)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

// applyCastlingRights clears Moved on the king and rook behind each right.
// Rights whose pieces are not on their home squares are dropped.
func (b *Board) applyCastlingRights(rights CastlingRights) {
	for _, c := range []Color{White, Black} {
		kingSq, _ := SquareFromCoords(c.homeRank(), 4)
		if b.kings[c] != kingSq {
			continue
		}
		for _, file := range []int{7, 0} {
			if !rights.Has(castlingRight(c, file)) {
				continue
			}
			rookSq, _ := SquareFromCoords(c.homeRank(), file)
			if rook := b.squares[rookSq]; rook.Kind == Rook && rook.Color == c {
				b.squares[rookSq].Moved = false
				b.squares[kingSq].Moved = false
			}
		}
	}
}

// applyEnPassantSquare hands the capture right to the pawns beside the pawn
// that just passed over sq.
func (b *Board) applyEnPassantSquare(sq Square) {
	pusher := b.turn.Opposite()
	pawnSq, ok := SquareFromCoords(sq.Rank()+pusher.forward(), sq.File())
	if !ok {
		return
	}
	if pc := b.squares[pawnSq]; pc.Kind != Pawn || pc.Color != pusher {
		return
	}
	b.grantEnPassant(pawnSq, pusher)
}

// FEN renders the position. The halfmove clock is not tracked and is written
// as 0; the fullmove number counts on from the setup position.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			pc := b.squares[sq]
			if pc.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.turn == Black {
		side = "b"
	}
	ep := "-"
	if sq, ok := b.EnPassantSquare(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%s %s %s %s 0 %d", sb.String(), side, b.Castling(), ep, b.fullmove())
}

func (b *Board) fullmove() int {
	start, startTurn := 1, White
	if fields := strings.Fields(b.setup); len(fields) == 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			start = n
		}
		if fields[1] == "b" {
			startTurn = Black
		}
	}
	plies := len(b.history)
	if startTurn == Black {
		plies++
	}
	return start + plies/2
}

func pieceFromRune(r rune) (Kind, Color, bool) {
	color := White
	if r >= 'a' && r <= 'z' {
		color = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'P':
		return Pawn, color, true
	case 'N':
		return Knight, color, true
	case 'B':
		return Bishop, color, true
	case 'R':
		return Rook, color, true
	case 'Q':
		return Queen, color, true
	case 'K':
		return King, color, true
	default:
		return None, color, false
	}
}
