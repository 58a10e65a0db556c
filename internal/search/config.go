package search

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
)

// DefaultDepth is the number of plies searched when Config leaves it unset.
const DefaultDepth = 4

// Infinity bounds every score the evaluation can produce.
const Infinity = 1_000_000

type Config struct {
	// Depth is the search horizon in plies. Zero means DefaultDepth.
	Depth int
}

func (c Config) withDefaults() Config {
	if c.Depth == 0 {
		c.Depth = DefaultDepth
	}
	return c
}

func (c Config) validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.Depth)
	}
	return nil
}

type Option func(*Engine)

// WithLogger routes search summaries to l. Without it the engine is silent.
func WithLogger(l log.Interface) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func silentLogger() log.Interface {
	return &log.Logger{Handler: discard.Default, Level: log.FatalLevel}
}
