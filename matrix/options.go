// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernels.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "runtime"

// DefaultWorkers selects the pool size for MulPool when no WithWorkers
// option is given: 0 means "resolve to the available hardware
// concurrency at call time" (runtime.GOMAXPROCS(0), never below 1).
const DefaultWorkers = 0

const panicWorkersInvalid = "matrix: WithWorkers: n must be > 0"

// Option mutates internal options. Safe to apply repeatedly; the last
// writer wins.
type Option func(*options)

// options is the internal, unexported option state consumed by kernels.
type options struct {
	workers int // fixed pool size; 0 ⇒ hardware concurrency
}

// WithWorkers pins the MulPool worker count to n.
// Panics if n <= 0 (programmer error); use DefaultWorkers semantics by
// omitting the option instead.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions folds opts onto the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// resolveWorkers maps the configured worker count to a concrete pool
// size: an explicit count is used as-is; the default resolves to the
// available hardware concurrency, falling back to 1 if undeterminable.
func (o options) resolveWorkers() int {
	if o.workers > 0 {
		return o.workers
	}
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}

	return 1
}
