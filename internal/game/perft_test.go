package game

import (
	"reflect"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

var perftPositions = []struct {
	name string
	fen  string
}{
	{name: "Start", fen: StartFEN},
	{name: "Kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{name: "RankPins", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	{name: "Promotions", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"},
	{name: "Mirrored", fen: "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1"},
}

func TestPerftKnownCounts(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		want  uint64
	}{
		{fen: StartFEN, depth: 1, want: 20},
		{fen: StartFEN, depth: 2, want: 400},
		{fen: StartFEN, depth: 3, want: 8902},
		{fen: perftPositions[1].fen, depth: 1, want: 48},
		{fen: perftPositions[1].fen, depth: 2, want: 2039},
		{fen: perftPositions[2].fen, depth: 1, want: 14},
		{fen: perftPositions[2].fen, depth: 2, want: 191},
		{fen: perftPositions[2].fen, depth: 3, want: 2812},
	}
	for _, tt := range tests {
		if got := perft(mustFEN(t, tt.fen), tt.depth); got != tt.want {
			t.Fatalf("perft(%q, %d) = %d, want %d", tt.fen, tt.depth, got, tt.want)
		}
	}
}

// oraclePerft counts with dragontoothmg, leaving out under-promotions, which
// GenerateMoves does not list.
func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range b.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		unapply := b.Apply(m)
		n += oraclePerft(b, depth-1)
		unapply()
	}
	return n
}

func TestPerftMatchesDragontooth(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			oracle := dragontoothmg.ParseFen(pos.fen)
			for d := 1; d <= depth; d++ {
				want := oraclePerft(&oracle, d)
				if got := perft(mustFEN(t, pos.fen), d); got != want {
					t.Fatalf("depth %d: perft = %d, dragontoothmg = %d", d, got, want)
				}
			}
		})
	}
}

// TestLegalMovesMatchNotnil compares full move lists along a short line of
// play in every position.
func TestLegalMovesMatchNotnil(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			b := mustFEN(t, pos.fen)
			for ply := 0; ply < 6; ply++ {
				opt, err := chess.FEN(b.FEN())
				if err != nil {
					t.Fatalf("notnil FEN %q: %v", b.FEN(), err)
				}
				var want []string
				for _, m := range chess.NewGame(opt).ValidMoves() {
					if p := m.Promo(); p != chess.NoPieceType && p != chess.Queen {
						continue
					}
					want = append(want, m.String())
				}
				sort.Strings(want)

				moves := b.GenerateMoves(b.Turn())
				got := moveStrings(moves)
				if len(want) == 0 && len(got) == 0 {
					return
				}
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("ply %d %s:\n got  %v\n want %v", ply, b.FEN(), got, want)
				}
				// walk the middle move so the line is deterministic but not trivial
				b.ApplyMove(moves[len(moves)/2])
			}
		})
	}
}
