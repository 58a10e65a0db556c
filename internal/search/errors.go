package search

import "errors"

var (
	ErrNoLegalMove  = errors.New("no legal move available")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
)
