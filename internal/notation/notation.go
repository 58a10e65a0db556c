// Package notation converts between game boards and the text forms of chess
// moves: standard algebraic notation, UCI long algebraic notation and PGN.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"minimax_chess/internal/game"
)

var ErrUnknownMove = errors.New("notation: cannot read move")

// SAN returns the history of b in standard algebraic notation, oldest first.
func SAN(b *game.Board) ([]string, error) {
	_, sans, err := replay(b)
	return sans, err
}

// PGN renders the history of b as a PGN movetext, with a FEN tag when the
// game did not start from the standard position.
func PGN(b *game.Board) (string, error) {
	g, _, err := replay(b)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// Play reads a move in SAN (Nf3, exd6, O-O, e8=Q) or UCI (g1f3, e7e8q) form
// and applies it to b for the side to move.
func Play(b *game.Board, text string) (game.Move, error) {
	pos, err := position(b.FEN())
	if err != nil {
		return game.Move{}, err
	}
	text = strings.TrimSpace(text)
	mv, err := chess.UCINotation{}.Decode(pos, text)
	if err != nil {
		mv, err = chess.AlgebraicNotation{}.Decode(pos, text)
	}
	if err != nil {
		return game.Move{}, fmt.Errorf("%w %q: %v", ErrUnknownMove, text, err)
	}

	from, ok := game.CoordToSquare(mv.S1().String())
	if !ok {
		return game.Move{}, fmt.Errorf("%w %q", ErrUnknownMove, text)
	}
	to, ok := game.CoordToSquare(mv.S2().String())
	if !ok {
		return game.Move{}, fmt.Errorf("%w %q", ErrUnknownMove, text)
	}
	return b.Play(from, to, promotion(mv.Promo()))
}

func replay(b *game.Board) (*chess.Game, []string, error) {
	opt, err := chess.FEN(b.SetupFEN())
	if err != nil {
		return nil, nil, fmt.Errorf("notation: setup position: %w", err)
	}
	g := chess.NewGame(opt)

	history := b.History()
	sans := make([]string, 0, len(history))
	for i, m := range history {
		mv, err := chess.UCINotation{}.Decode(g.Position(), m.String())
		if err != nil {
			return nil, nil, fmt.Errorf("notation: move %d %s: %w", i+1, m, err)
		}
		sans = append(sans, chess.AlgebraicNotation{}.Encode(g.Position(), mv))
		if err := g.Move(mv); err != nil {
			return nil, nil, fmt.Errorf("notation: move %d %s: %w", i+1, m, err)
		}
	}
	return g, sans, nil
}

func position(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}
	return chess.NewGame(opt).Position(), nil
}

func promotion(pt chess.PieceType) game.Kind {
	switch pt {
	case chess.Queen:
		return game.Queen
	case chess.Rook:
		return game.Rook
	case chess.Bishop:
		return game.Bishop
	case chess.Knight:
		return game.Knight
	default:
		return game.None
	}
}
