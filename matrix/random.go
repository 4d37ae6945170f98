// Package matrix: uniform random initialization of Dense contents.
package matrix

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// DefaultRandomMin and DefaultRandomMax bound the reference fill range
// [0, 100) used by the benchmark driver.
const (
	DefaultRandomMin = 0
	DefaultRandomMax = 100
)

// seedCounter decorrelates sources created within the same nanosecond
// (coarse clocks on some platforms would otherwise seed identically).
var seedCounter atomic.Int64

// newSource returns a freshly seeded, non-cryptographic random source.
func newSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano() + seedCounter.Add(1)))
}

// RandomInit fills every cell independently with a value drawn uniformly
// from the half-open interval [min, max). The matrix is mutated in place
// and may be re-randomized any number of times; each call uses a freshly
// seeded source, so distinct matrices are not trivially correlated.
// For integer element types the sampled value is truncated toward zero,
// which keeps it inside [min, max).
// Errors: ErrBadRange when min >= max. Complexity: O(r*c).
func (m *Dense[T]) RandomInit(min, max T) error {
	return m.RandomInitFrom(newSource(), min, max)
}

// RandomInitFrom is RandomInit with a caller-supplied source, for
// deterministic fills in tests and benchmarks.
// Errors: ErrNilRand when rng is nil, ErrBadRange when min >= max.
// Complexity: O(r*c).
func (m *Dense[T]) RandomInitFrom(rng *rand.Rand, min, max T) error {
	if rng == nil {
		return validatorErrorf("RandomInitFrom", ErrNilRand)
	}
	if err := ValidateRange(min, max); err != nil {
		return err
	}

	span := float64(max) - float64(min)
	for i := range m.data {
		// rng.Float64() ∈ [0,1) ⇒ sample ∈ [min, max)
		m.data[i] = min + T(rng.Float64()*span)
	}

	return nil
}
