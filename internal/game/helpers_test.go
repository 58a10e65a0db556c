package game

import (
	"sort"
	"testing"

	"minimax_chess/internal/shared"
)

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func sq(coord string) Square { return shared.MustSquare(coord) }

func coords(bb Bitboard) []string {
	out := make([]string, 0, bb.Count())
	bb.Iter(func(s Square) { out = append(out, s.String()) })
	sort.Strings(out)
	return out
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func play(t *testing.T, b *Board, uci ...string) {
	t.Helper()
	for _, s := range uci {
		promo := None
		if len(s) == 5 {
			promo, _ = ParsePromotion(s[4:])
		}
		if _, err := b.Play(sq(s[:2]), sq(s[2:4]), promo); err != nil {
			t.Fatalf("play %s: %v\n%s", s, err, b)
		}
	}
}

func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range b.GenerateMoves(b.Turn()) {
		b.ApplyMove(m)
		n += perft(b, depth-1)
		if err := b.UndoMove(); err != nil {
			panic(err)
		}
	}
	return n
}
