// SPDX-License-Identifier: MIT
// Package: envision
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • A meaningless value does not panic; the first violation is recorded and
//     Build returns it wrapped in ErrOptionViolation before doing any work.
//   • Defaults live in DefaultOptions and are applied before user options.

package envision

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/envision/logging"
)

// DefaultMaxCandidates is the default ceiling on the candidate space (about 4.2M states).
const DefaultMaxCandidates uint64 = 1 << 22

// Option customizes a Build call.
type Option func(*config)

type config struct {
	workers       int
	maxCandidates uint64
	logger        *slog.Logger
	metrics       *Metrics
	err           error // first option violation, if any
}

func (c *config) violate(format string, args ...interface{}) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// DefaultOptions returns the baseline: one worker per available CPU,
// DefaultMaxCandidates, a discarding logger and no metrics.
func DefaultOptions() []Option {
	return []Option{
		WithWorkers(runtime.GOMAXPROCS(0)),
		WithMaxCandidates(DefaultMaxCandidates),
		WithLogger(logging.Discard()),
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range DefaultOptions() {
		opt(&c)
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithWorkers sets the number of enumeration shards run in parallel. n must be ≥ 1.
// The result does not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.violate("WithWorkers(%d): need at least one worker", n)
			return
		}
		c.workers = n
	}
}

// WithMaxCandidates sets the candidate ceiling checked before enumeration. n must be ≥ 1.
func WithMaxCandidates(n uint64) Option {
	return func(c *config) {
		if n == 0 {
			c.violate("WithMaxCandidates(0)")
			return
		}
		c.maxCandidates = n
	}
}

// WithLogger injects a structured logger. nil restores the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = logging.Discard()
		}
		c.logger = l
	}
}

// WithMetrics records run metrics into m. nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}
