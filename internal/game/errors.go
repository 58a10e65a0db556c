package game

import "errors"

var (
	ErrEmptyHistory = errors.New("no move to undo")
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidFEN   = errors.New("invalid FEN")
)
