package lpinstance

import (
	"log/slog"

	"github.com/Tarheel-Formal-Methods/hylaa/glpk"
)

// Stats accumulates run statistics across Minimize calls: how many
// optimizations ran and how many simplex pivot iterations they consumed.
// Both counters are monotone. The counters are plain fields with a
// single-writer contract: an instance-owned Stats is written only by that
// instance's goroutine, and a Stats shared between instances via WithStats
// must not be written concurrently.
type Stats struct {
	Optimizations uint64
	Iterations    uint64
}

// Option configures an LPInstance at construction.
type Option func(*LPInstance)

// WithStats makes the instance record run statistics into s instead of an
// instance-owned object, letting a caller aggregate counts across several
// instances.
func WithStats(s *Stats) Option {
	return func(li *LPInstance) {
		if s != nil {
			li.stats = s
		}
	}
}

// WithLogger sets the logger used for recovery warnings and teardown
// diagnostics. By default the instance logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(li *LPInstance) {
		if l != nil {
			li.log = l
		}
	}
}

// WithPresolve enables the GLPK LP presolver for every simplex call.
func WithPresolve(on bool) Option {
	return func(li *LPInstance) {
		li.smcp.Presolve = on
	}
}

// WithMessageLevel sets the terminal verbosity of the simplex driver.
// The default is glpk.MsgOff.
func WithMessageLevel(lev glpk.MsgLev) Option {
	return func(li *LPInstance) {
		li.smcp.MsgLev = lev
	}
}
