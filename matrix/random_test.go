package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/mohammed-hamdan-alom/matrix-multiplication/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomInit_Range verifies that every sampled cell lies in the
// half-open interval [min, max).
func TestRandomInit_Range(t *testing.T) {
	m := mustDense(t, 40, 25)
	const min, max = -3.5, 12.25
	require.NoError(t, m.RandomInit(min, max))

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, min, "cell (%d,%d)", i, j)
			assert.Less(t, v, max, "cell (%d,%d)", i, j)
		}
	}
}

// TestRandomInit_BadRange verifies min >= max is rejected up front.
func TestRandomInit_BadRange(t *testing.T) {
	m := mustDense(t, 2, 2)
	assert.ErrorIs(t, m.RandomInit(5, 5), matrix.ErrBadRange, "empty interval")
	assert.ErrorIs(t, m.RandomInit(9, 1), matrix.ErrBadRange, "inverted interval")

	// A failed fill must leave the zero contents untouched.
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestRandomInitFrom_NilSource verifies the nil-rng guard.
func TestRandomInitFrom_NilSource(t *testing.T) {
	m := mustDense(t, 2, 2)
	assert.ErrorIs(t, m.RandomInitFrom(nil, 0, 1), matrix.ErrNilRand)
}

// TestRandomInitFrom_Deterministic verifies that an identical seed
// reproduces the exact same fill, and that re-randomizing with a new
// seed actually changes the contents.
func TestRandomInitFrom_Deterministic(t *testing.T) {
	a := mustDense(t, 8, 8)
	b := mustDense(t, 8, 8)
	require.NoError(t, a.RandomInitFrom(rand.New(rand.NewSource(1337)), 0, 100))
	require.NoError(t, b.RandomInitFrom(rand.New(rand.NewSource(1337)), 0, 100))
	assert.True(t, a.Equal(b), "same seed ⇒ same fill")

	require.NoError(t, b.RandomInitFrom(rand.New(rand.NewSource(4242)), 0, 100))
	assert.False(t, a.Equal(b), "different seed ⇒ different fill (64 cells)")
}

// TestRandomInit_Decorrelated verifies that two back-to-back fresh fills
// do not produce identical matrices.
func TestRandomInit_Decorrelated(t *testing.T) {
	a := mustDense(t, 16, 16)
	b := mustDense(t, 16, 16)
	require.NoError(t, a.RandomInit(0, 100))
	require.NoError(t, b.RandomInit(0, 100))
	assert.False(t, a.Equal(b), "fresh seeds must not correlate 256 cells")
}

// TestRandomInit_IntegerRange verifies truncation keeps integer samples
// inside [min, max).
func TestRandomInit_IntegerRange(t *testing.T) {
	m, err := matrix.NewDense[int](30, 30)
	require.NoError(t, err)
	require.NoError(t, m.RandomInitFrom(rand.New(rand.NewSource(7)), -5, 5))

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, atErr := m.At(i, j)
			require.NoError(t, atErr)
			assert.GreaterOrEqual(t, v, -5)
			assert.Less(t, v, 5)
		}
	}
}
