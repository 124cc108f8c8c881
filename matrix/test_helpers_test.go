// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the handle, views and operators.
//   - Keep all data finite and integral where exact comparison is required.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AtsushiSakai/Totsu/matrix"
	"github.com/AtsushiSakai/Totsu/rng"
)

// mustNew allocates a rows×cols zero matrix or fails the test.
func mustNew(tb testing.TB, rows, cols int) *matrix.Mat {
	tb.Helper()
	m, err := matrix.New(rows, cols)
	require.NoError(tb, err)

	return m
}

// mustIdentity allocates I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Mat {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err)

	return m
}

// mustRowMajor builds a rows×cols matrix from values listed row by row.
func mustRowMajor(tb testing.TB, rows, cols int, values ...float64) *matrix.Mat {
	tb.Helper()
	m, err := matrix.NewFromRowMajor(rows, cols, values)
	require.NoError(tb, err)

	return m
}

// mustSeq builds a rows×cols matrix holding 1, 2, 3, ... in row-major order.
func mustSeq(tb testing.TB, rows, cols int) *matrix.Mat {
	tb.Helper()
	m, err := matrix.NewBy(rows, cols, func(r, c int) float64 { return float64(r*cols + c + 1) })
	require.NoError(tb, err)

	return m
}

// mustRandom fills a rows×cols matrix from the xor64 generator seeded with seed.
func mustRandom(tb testing.TB, rows, cols int, seed uint64) *matrix.Mat {
	tb.Helper()
	src := rng.NewSource(seed)
	m, err := matrix.NewBy(rows, cols, func(int, int) float64 { return src.Float64() })
	require.NoError(tb, err)

	return m
}

// mustAt reads m[r,c] or fails the test.
func mustAt(tb testing.TB, m *matrix.Mat, r, c int) float64 {
	tb.Helper()
	v, err := m.At(r, c)
	require.NoError(tb, err)

	return v
}

// mustRelease ends a view's borrow or fails the test.
func mustRelease(tb testing.TB, views ...*matrix.Mat) {
	tb.Helper()
	for _, v := range views {
		require.NoError(tb, v.Release())
	}
}

// requireGetPanicsWith runs f and checks it panics with an error matching target.
func requireGetPanicsWith(tb testing.TB, target error, f func()) {
	tb.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		f()
	}()
	err, ok := got.(error)
	require.True(tb, ok, "expected a panic with an error, got %v", got)
	require.ErrorIs(tb, err, target)
}

// requireMatEqual compares two matrices cell by cell with a readable diff.
func requireMatEqual(tb testing.TB, want, got matrix.Accessor) {
	tb.Helper()
	wr, wc := want.Size()
	gr, gc := got.Size()
	require.Equal(tb, [2]int{wr, wc}, [2]int{gr, gc}, "shape")
	for r := 0; r < wr; r++ {
		for c := 0; c < wc; c++ {
			require.Equal(tb, want.Get(r, c), got.Get(r, c), "cell (%d,%d)", r, c)
		}
	}
}

// requireMatInDelta compares two matrices cell by cell within delta.
func requireMatInDelta(tb testing.TB, want, got matrix.Accessor, delta float64) {
	tb.Helper()
	wr, wc := want.Size()
	gr, gc := got.Size()
	require.Equal(tb, [2]int{wr, wc}, [2]int{gr, gc}, "shape")
	for r := 0; r < wr; r++ {
		for c := 0; c < wc; c++ {
			require.InDelta(tb, want.Get(r, c), got.Get(r, c), delta, "cell (%d,%d)", r, c)
		}
	}
}
