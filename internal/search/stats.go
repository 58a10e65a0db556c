package search

import (
	"time"

	"github.com/apex/log"
)

// Stats counts the work done by one search.
type Stats struct {
	Nodes   uint64 // interior positions expanded
	Leaves  uint64 // positions evaluated at the horizon
	Cutoffs uint64 // interior positions abandoned once alpha >= beta
	Elapsed time.Duration
}

// Fields implements log.Fielder.
func (s Stats) Fields() log.Fields {
	return log.Fields{
		"nodes":   s.Nodes,
		"leaves":  s.Leaves,
		"cutoffs": s.Cutoffs,
		"elapsed": s.Elapsed.String(),
	}
}
