package level

import (
	"io"
	"log/slog"
	"math/rand"
)

// Options configures a Generator beyond its Config.
//
// Logger – receives Debug per stage and Warn per skipped corridor.
// Rand   – source for loop-edge selection; nil derives one from Config.Seed.
type Options struct {
	Logger *slog.Logger
	Rand   *rand.Rand
}

// Option is a functional option for NewGenerator.
type Option func(*Options)

// WithLogger routes generator logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand injects the random source used for loop edges.
// The Generator takes ownership: do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns a discarding logger and no injected RNG.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Rand:   nil,
	}
}
