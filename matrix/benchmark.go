// SPDX-License-Identifier: MIT

// Package matrix: wall-clock comparison harness for the three
// multiplication strategies.

package matrix

import (
	"fmt"
	"io"
	"time"
)

// Labels of the three strategies, in the fixed reporting order.
const (
	LabelSerial = "Serial"
	LabelAsync  = "Async"
	LabelPool   = "Thread Pool"
)

// Timing is one measured run: which strategy and how long it took.
type Timing struct {
	Label   string
	Elapsed time.Duration
}

// Microseconds returns the elapsed time truncated to whole microseconds,
// the unit the report prints.
func (t Timing) Microseconds() int64 {
	return t.Elapsed.Microseconds()
}

// Benchmark runs MulSerial, MulAsync and MulPool in that fixed order
// against the same operand pair, measuring wall-clock time for each and
// writing one line per strategy to w:
//
//	<Label> Multiplication Time: <integer> µs
//
// The computed products are discarded; this measures, it does not
// cross-validate (the equivalence of the three strategies is covered by
// tests instead). The measured timings are returned for callers that
// want to post-process them. opts are forwarded to MulPool only.
// Errors: ErrNilMatrix, ErrDimensionMismatch — validation failures abort
// the whole run on the first failing strategy, with nothing reported
// for it.
func Benchmark[T Real](w io.Writer, a, b *Dense[T], opts ...Option) ([]Timing, error) {
	runs := []struct {
		label string
		mul   func() (*Dense[T], error)
	}{
		{LabelSerial, func() (*Dense[T], error) { return MulSerial(a, b) }},
		{LabelAsync, func() (*Dense[T], error) { return MulAsync(a, b) }},
		{LabelPool, func() (*Dense[T], error) { return MulPool(a, b, opts...) }},
	}

	timings := make([]Timing, 0, len(runs))
	for _, run := range runs {
		start := time.Now()
		if _, err := run.mul(); err != nil {
			return nil, err
		}
		t := Timing{Label: run.label, Elapsed: time.Since(start)}
		timings = append(timings, t)

		if _, err := fmt.Fprintf(w, "%s Multiplication Time: %d µs\n", t.Label, t.Microseconds()); err != nil {
			return nil, err
		}
	}

	return timings, nil
}
