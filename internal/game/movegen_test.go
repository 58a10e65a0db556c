package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestOpeningHasTwentyMoves(t *testing.T) {
	b := NewBoard()
	moves := b.GenerateMoves(White)
	if len(moves) != 20 {
		t.Fatalf("expected 20 opening moves, got %d: %v", len(moves), moveStrings(moves))
	}
	if got := moves[0].String(); got != "b1a3" {
		t.Fatalf("first generated move = %s, want b1a3", got)
	}
	if got := len(b.GenerateMoves(Black)); got != 20 {
		t.Fatalf("expected 20 moves for black, got %d", got)
	}
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "KnightFromStart",
			fen:  StartFEN,
			from: "g1",
			want: []string{"f3", "h3"},
		},
		{
			name: "EmptySquare",
			fen:  StartFEN,
			from: "e4",
			want: []string{},
		},
		{
			name: "AbsolutelyPinnedKnight",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "PinnedRookSlidesAlongPin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4", "e5", "e6", "e7"},
		},
		{
			name: "PinnedBishopCapturesPinner",
			fen:  "4k3/8/8/8/8/2b5/3B4/4K3 w - - 0 1",
			from: "d2",
			want: []string{"c3"},
		},
		{
			name: "KingLeavesCheckingFile",
			fen:  "4r2k/8/8/8/8/8/8/4K3 w - - 0 1",
			from: "e1",
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "BlockOrCaptureChecker",
			fen:  "4r2k/8/8/8/8/8/R7/4K3 w - - 0 1",
			from: "a2",
			want: []string{"e2"},
		},
		{
			name: "KingCannotTakeDefendedPiece",
			fen:  "7k/8/8/8/8/8/3qr3/4K3 w - - 0 1",
			from: "e1",
			want: []string{"f1"},
		},
		{
			name: "KingsKeepApart",
			fen:  "8/8/8/3k4/8/3K4/8/8 w - - 0 1",
			from: "d3",
			want: []string{"c2", "c3", "d2", "e2", "e3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			got := coords(b.LegalMoves(sq(tt.from)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("LegalMoves(%s) = %v, want %v\n%s", tt.from, got, tt.want, b)
			}
		})
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/1b6/8/8/r3K2N w - - 0 1")
	tc := b.Threats(White)
	if !tc.DoubleCheck() || tc.Count() != 2 {
		t.Fatalf("expected double check, got %d attackers", tc.Count())
	}
	got := moveStrings(b.GenerateMoves(White))
	want := []string{"e1e2", "e1f2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("moves under double check = %v, want %v", got, want)
	}
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "BothSides",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "TransitSquareAttacked",
			fen:  "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: []string{"c1", "d1", "d2", "e2"},
		},
		{
			name: "RookPathAttackedIsFine",
			fen:  "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "NotOutOfCheck",
			fen:  "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1",
			want: []string{"d1", "e2", "f1"},
		},
		{
			name: "PathBlocked",
			fen:  "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1",
			want: []string{"d1", "d2", "e2", "f1", "f2"},
		},
		{
			name: "NoRights",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w - - 0 1",
			want: []string{"d1", "d2", "e2", "f1", "f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			got := coords(b.LegalMoves(sq("e1")))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("king moves = %v, want %v\n%s", got, tt.want, b)
			}
		})
	}
}

func TestCastleMovesRook(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := b.MoveFor(sq("e1"), sq("g1"), None)
	if err != nil {
		t.Fatalf("MoveFor: %v", err)
	}
	if m.Flag != MoveCastleRight {
		t.Fatalf("flag = %s, want castle-right", m.Flag)
	}
	b.ApplyMove(m)
	if pc, ok := b.PieceAt(sq("f1")); !ok || pc.Kind != Rook || !pc.Moved {
		t.Fatalf("rook not on f1 after castling: %+v", pc)
	}
	if _, ok := b.PieceAt(sq("h1")); ok {
		t.Fatalf("h1 should be empty")
	}
	if b.KingSquare(White) != sq("g1") {
		t.Fatalf("king square = %s", b.KingSquare(White))
	}

	play(t, b, "e8c8")
	if pc, ok := b.PieceAt(sq("d8")); !ok || pc.Kind != Rook || pc.Color != Black {
		t.Fatalf("rook not on d8 after long castling: %+v", pc)
	}
	if got := b.Castling(); got != CastlingNone {
		t.Fatalf("castling rights after both castled = %s", got)
	}
}

func TestEnPassantWindow(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "a7a6", "e4e5", "d7d5")

	pawn, _ := b.PieceAt(sq("e5"))
	if !pawn.EnPassantLeft || pawn.EnPassantRight {
		t.Fatalf("e5 pawn flags = left %v right %v", pawn.EnPassantLeft, pawn.EnPassantRight)
	}
	if got := coords(b.LegalMoves(sq("e5"))); !reflect.DeepEqual(got, []string{"d6", "e6"}) {
		t.Fatalf("e5 moves = %v, want [d6 e6]", got)
	}

	capture := b.Clone()
	m, err := capture.Play(sq("e5"), sq("d6"), None)
	if err != nil {
		t.Fatalf("en passant: %v", err)
	}
	if !m.IsEnPassant() || m.Captured.Square != sq("d5") {
		t.Fatalf("expected en-passant capture of d5, got %+v", m)
	}
	if _, ok := capture.PieceAt(sq("d5")); ok {
		t.Fatalf("captured pawn still on d5")
	}

	play(t, b, "a2a3", "a6a5")
	if got := coords(b.LegalMoves(sq("e5"))); !reflect.DeepEqual(got, []string{"e6"}) {
		t.Fatalf("en passant should expire, e5 moves = %v", got)
	}
}

func TestEnPassantEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "CapturesCheckingPawn",
			fen:  "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
			from: "e4",
			want: []string{"d3"},
		},
		{
			name: "RankDiscoveredCheck",
			fen:  "8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1",
			from: "e4",
			want: []string{"e3"},
		},
		{
			name: "DiagonalPinAllowsCaptureAlongPin",
			fen:  "8/8/8/5k2/3Pp3/8/8/1B2K3 b - d3 0 1",
			from: "e4",
			want: []string{"d3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			got := coords(b.LegalMoves(sq(tt.from)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("LegalMoves(%s) = %v, want %v\n%s", tt.from, got, tt.want, b)
			}
		})
	}
}

func TestPromotion(t *testing.T) {
	b := mustFEN(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	var promo Move
	for _, m := range b.GenerateMoves(White) {
		if m.From == sq("a7") {
			promo = m
		}
	}
	if promo.Flag != MovePromotion || promo.Promotion != Queen || promo.String() != "a7a8q" {
		t.Fatalf("unexpected promotion record %+v", promo)
	}

	under, err := b.Clone().Play(sq("a7"), sq("a8"), Knight)
	if err != nil {
		t.Fatalf("under-promotion: %v", err)
	}
	if under.Promotion != Knight {
		t.Fatalf("promotion kind = %s", under.Promotion)
	}

	if _, err := b.MoveFor(sq("a7"), sq("a8"), King); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("promotion to king should be illegal, got %v", err)
	}

	b.ApplyMove(promo)
	if pc, _ := b.PieceAt(sq("a8")); pc.Kind != Queen || pc.Color != White {
		t.Fatalf("a8 holds %+v after promotion", pc)
	}
	if err := b.UndoMove(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if pc, _ := b.PieceAt(sq("a7")); pc.Kind != Pawn {
		t.Fatalf("undo should restore the pawn, got %+v", pc)
	}
}

func TestMoveForRejects(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		name     string
		from, to string
	}{
		{name: "EmptySquare", from: "e4", to: "e5"},
		{name: "WrongSide", from: "e7", to: "e5"},
		{name: "IllegalDestination", from: "e2", to: "e5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Clone()
			if _, err := b.Play(sq(tt.from), sq(tt.to), None); !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("expected ErrIllegalMove, got %v", err)
			}
			if !b.Equal(before) {
				t.Fatalf("rejected move changed the board")
			}
		})
	}
}
