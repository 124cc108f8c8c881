// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Mat handle and element access.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AtsushiSakai/Totsu/matrix"
)

func TestNew_ZeroInitialized(t *testing.T) {
	m := mustNew(t, 3, 2)
	rows, cols := m.Size()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, matrix.Owned, m.Kind())
	require.False(t, m.Transposed())
	require.Equal(t, 3, m.Stride())
	require.Equal(t, 0, m.Offset())
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			require.Equal(t, 0.0, mustAt(t, m, r, c))
		}
	}
}

func TestNew_BadShape(t *testing.T) {
	_, err := matrix.New(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.New(2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_EmptyShapesAreLegal(t *testing.T) {
	for _, sh := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m := mustNew(t, sh[0], sh[1])
		require.Equal(t, sh[0], m.Rows())
		require.Equal(t, sh[1], m.Cols())
	}
}

func TestNewLike_And_ColumnVector(t *testing.T) {
	a := mustSeq(t, 2, 5)
	at, err := a.T()
	require.NoError(t, err)

	like, err := matrix.NewLike(at)
	require.NoError(t, err)
	require.Equal(t, 5, like.Rows())
	require.Equal(t, 2, like.Cols())
	require.False(t, like.Transposed())

	v, err := matrix.NewColumnVector(4)
	require.NoError(t, err)
	rows, cols := v.Size()
	require.Equal(t, [2]int{4, 1}, [2]int{rows, cols})

	_, err = matrix.NewLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSetAt_ColumnMajorLayout checks that consecutive rows are adjacent in memory.
func TestSetAt_ColumnMajorLayout(t *testing.T) {
	m := mustNew(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, 7.0, mustAt(t, m, 1, 2))
	require.Equal(t, 2, m.Stride())

	// Row-major fill then column-major read-back.
	m = mustRowMajor(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, 4.0, mustAt(t, m, 1, 0))
	require.Equal(t, 3.0, mustAt(t, m, 0, 2))
}

func TestAt_OutOfRange(t *testing.T) {
	m := mustNew(t, 2, 2)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(rc[0], rc[1], 1), matrix.ErrOutOfRange)
	}
}

func TestUpdate_ReadModifyWrite(t *testing.T) {
	m := mustRowMajor(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.Update(1, 0, func(old float64) float64 { return old + 10 }))
	require.Equal(t, 13.0, mustAt(t, m, 1, 0))
	err := m.Update(5, 0, func(old float64) float64 { return old })
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestGet_PanicsOutOfRange(t *testing.T) {
	m := mustNew(t, 2, 2)
	require.Equal(t, 0.0, m.Get(1, 1))
	require.Panics(t, func() { m.Get(2, 0) })
	require.Panics(t, func() { m.Get(0, -1) })
	requireGetPanicsWith(t, matrix.ErrOutOfRange, func() { m.Get(2, 0) })
}

func TestGet_PanicsOnUnreadableHandle(t *testing.T) {
	m := mustSeq(t, 2, 2)
	w, err := m.AsViewMut()
	require.NoError(t, err)
	requireGetPanicsWith(t, matrix.ErrBorrowConflict, func() { m.Get(0, 0) })
	require.Equal(t, 1.0, w.Get(0, 0))
	mustRelease(t, w)
	require.Equal(t, 1.0, m.Get(0, 0))

	_, err = m.IntoNeg()
	require.NoError(t, err)
	requireGetPanicsWith(t, matrix.ErrReleased, func() { m.Get(0, 0) })

	var zero matrix.Mat
	requireGetPanicsWith(t, matrix.ErrNilMatrix, func() { zero.Get(0, 0) })
}

func TestMatValue_IsAccessor(t *testing.T) {
	m := mustSeq(t, 2, 2)
	var a matrix.Accessor = *m
	rows, cols := a.Size()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 3.0, a.Get(1, 0))
	require.True(t, matrix.Equal(a, m))
}

func TestNilAndZeroHandles(t *testing.T) {
	var nilMat *matrix.Mat
	_, err := nilMat.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var zero matrix.Mat
	_, err = zero.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, zero.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Equal(t, matrix.Owned, zero.Kind())
}

func TestT_TransposedView(t *testing.T) {
	a := mustSeq(t, 2, 3) // [1 2 3; 4 5 6]
	at, err := a.T()
	require.NoError(t, err)
	require.Equal(t, matrix.Borrowed, at.Kind())
	require.True(t, at.Transposed())
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, mustAt(t, a, r, c), mustAt(t, at, c, r))
		}
	}
	require.ErrorIs(t, at.Set(0, 0, 1), matrix.ErrReadOnly)

	// Double transpose is the identity view.
	att, err := at.T()
	require.NoError(t, err)
	require.False(t, att.Transposed())
	requireMatEqual(t, a, att)
	mustRelease(t, att, at)
}

func TestTMut_WritesThrough(t *testing.T) {
	a := mustSeq(t, 2, 3)
	at, err := a.TMut()
	require.NoError(t, err)
	require.Equal(t, matrix.BorrowedMut, at.Kind())
	require.NoError(t, at.Set(2, 1, 60))
	mustRelease(t, at)
	require.Equal(t, 60.0, mustAt(t, a, 1, 2))
}

func TestSetTransposed_FlipsInPlace(t *testing.T) {
	a := mustSeq(t, 2, 3)
	same, err := a.SetTransposed()
	require.NoError(t, err)
	require.Same(t, a, same)
	require.Equal(t, matrix.Owned, a.Kind())
	require.Equal(t, 3, a.Rows())
	require.Equal(t, 2, a.Cols())
	require.Equal(t, 4.0, mustAt(t, a, 0, 1))

	v, err := a.AsView()
	require.NoError(t, err)
	_, err = a.SetTransposed()
	require.ErrorIs(t, err, matrix.ErrBorrowConflict)
	mustRelease(t, v)
	_, err = a.SetTransposed()
	require.NoError(t, err)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Owned", matrix.Owned.String())
	require.Equal(t, "Borrowed", matrix.Borrowed.String())
	require.Equal(t, "BorrowedMut", matrix.BorrowedMut.String())
}

func TestConstants(t *testing.T) {
	one := 1.0
	require.Equal(t, one, one+matrix.Epsilon/2)
	require.NotEqual(t, one, one+matrix.Epsilon)
	require.Greater(t, matrix.MinPositive, 0.0)
}
