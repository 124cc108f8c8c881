// SPDX-License-Identifier: MIT

// Package matrix - Mat handle (column-major) & safe accessors.
//
// Purpose:
//   - Provide a column-major buffer addressed through offset/stride/transpose
//     bookkeeping, so sub-blocks and transposes are O(1) handles over shared storage.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal deterministic (fixed column-major loops, no map iteration).
//
// Index formula:
//   - not transposed: offset + stride*col + row
//   - transposed:     offset + stride*row + col
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Get: O(1); T/TMut/SetTransposed: O(1).

package matrix

import "fmt"

// Scalar limits of the float64 element type.
const (
	// Epsilon is the difference between 1 and the next representable float64.
	Epsilon = 0x1p-52
	// MinPositive is the smallest positive normal float64.
	MinPositive = 0x1p-1022
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxUpdate = "Update"
	ctxGet    = "Get"
)

// Mat is a column-major matrix handle.
//   - nrows, ncols are the physical extents; Size swaps them when transposed.
//   - offset is the buffer index of logical (0,0); stride separates physical columns.
//   - buf is the storage kind (owned, immutable view, mutable view).
//   - ledger tracks borrows lent out by this handle; lender is the ledger of
//     the handle this one borrowed from (nil for owners).
type Mat struct {
	nrows, ncols   int
	offset, stride int
	transposed     bool

	buf    storage
	ledger *ledger
	lender *ledger
}

var (
	_ Accessor      = Mat{}
	_ Accessor      = (*Mat)(nil)
	_ fmt.Stringer  = (*Mat)(nil)
	_ fmt.Formatter = (*Mat)(nil)
)

// New creates a rows×cols zero matrix in packed column-major layout.
// MAIN DESCRIPTION:
//   - Public constructor; stride == rows, offset == 0, len(buffer) == rows*cols.
//
// Inputs:
//   - rows, cols: non-negative extents (zero is legal).
//
// Errors:
//   - ErrBadShape when an extent is negative.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Mat, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newOwned(rows, cols), nil
}

// newOwned allocates a packed owner; extents are already validated.
func newOwned(rows, cols int) *Mat {
	return &Mat{
		nrows:  rows,
		ncols:  cols,
		stride: rows,
		buf:    ownedBuf{data: make([]float64, rows*cols)},
		ledger: &ledger{},
	}
}

// NewLike creates a zero matrix with the logical shape of a.
func NewLike(a Accessor) (*Mat, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("NewLike", err)
	}
	rows, cols := a.Size()

	return New(rows, cols)
}

// NewColumnVector creates an n×1 zero matrix.
func NewColumnVector(n int) (*Mat, error) {
	return New(n, 1)
}

// Size returns the logical (rows, cols), honoring the transpose flag.
// Complexity: O(1).
func (m Mat) Size() (rows, cols int) {
	if m.transposed {
		return m.ncols, m.nrows
	}

	return m.nrows, m.ncols
}

// Get returns the element at logical (row, col).
// It is the panicking counterpart of At: the caller guarantees the indices
// are inside Size() and the handle is readable. Get panics with a wrapped
// ErrOutOfRange, or with the At error (ErrReleased, ErrBorrowConflict,
// ErrNilMatrix) when the handle cannot be read.
func (m Mat) Get(row, col int) float64 {
	if err := m.checkRead(); err != nil {
		panic(matIndexErrorf(ctxGet, row, col, err))
	}
	rows, cols := m.Size()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(matIndexErrorf(ctxGet, row, col, ErrOutOfRange))
	}

	return m.buf.ref()[m.index(row, col)]
}

// Rows returns the logical row count.
func (m *Mat) Rows() int {
	rows, _ := m.Size()

	return rows
}

// Cols returns the logical column count.
func (m *Mat) Cols() int {
	_, cols := m.Size()

	return cols
}

// Kind reports the storage kind of the handle.
func (m *Mat) Kind() Kind {
	if m.buf == nil {
		return Owned
	}

	return m.buf.kind()
}

// Transposed reports the transpose flag.
func (m *Mat) Transposed() bool { return m.transposed }

// Stride returns the physical distance between consecutive columns.
func (m *Mat) Stride() int { return m.stride }

// Offset returns the buffer index of the logical (0,0) element.
func (m *Mat) Offset() int { return m.offset }

// index maps logical (row, col) to the physical buffer index; no bounds check.
func (m *Mat) index(row, col int) int {
	if !m.transposed {
		return m.offset + m.stride*col + row
	}

	return m.offset + m.stride*row + col
}

// indexOf bounds-checks (row, col) against the logical shape and maps it.
// Returns a bare ErrOutOfRange; At/Set/Update wrap it with coordinates.
func (m *Mat) indexOf(row, col int) (int, error) {
	rows, cols := m.Size()
	if row < 0 || row >= rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= cols {
		return 0, ErrOutOfRange
	}

	return m.index(row, col), nil
}

// At returns the value at logical (row, col).
// MAIN DESCRIPTION:
//   - Safe element read; never panics.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrBorrowConflict (handle frozen by a mutable borrow).
//   - ErrOutOfRange for indices outside Size().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Mat) At(row, col int) (float64, error) {
	if err := m.checkRead(); err != nil {
		return 0, matIndexErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matIndexErrorf(ctxAt, row, col, err)
	}

	return m.buf.ref()[off], nil
}

// Set stores v at logical (row, col).
// MAIN DESCRIPTION:
//   - Safe element write through owners and mutable views.
//
// Errors:
//   - ErrReadOnly through an immutable view.
//   - ErrBorrowConflict while the handle has outstanding borrows.
//   - ErrOutOfRange for indices outside Size().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Mat) Set(row, col int, v float64) error {
	return m.write(ctxSet, row, col, func(float64) float64 { return v })
}

// Update replaces the value at (row, col) with f(old).
// This is the read-write element form (the analogue of an indexed compound
// assignment such as m[r,c] += x).
func (m *Mat) Update(row, col int, f func(old float64) float64) error {
	return m.write(ctxUpdate, row, col, f)
}

func (m *Mat) write(method string, row, col int, f func(old float64) float64) error {
	if err := m.checkWrite(); err != nil {
		return matIndexErrorf(method, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return matIndexErrorf(method, row, col, err)
	}
	data, _ := m.buf.mut() // writability checked above
	data[off] = f(data[off])

	return nil
}

// T returns an immutable view of the transpose, sharing the buffer.
// The view must be released before m can be written again.
// Complexity: O(1).
func (m *Mat) T() (*Mat, error) {
	return m.transposeView("T", false)
}

// TMut returns a mutable view of the transpose, sharing the buffer.
// m is frozen until the view is released.
// Complexity: O(1).
func (m *Mat) TMut() (*Mat, error) {
	return m.transposeView("TMut", true)
}

func (m *Mat) transposeView(method string, mutable bool) (*Mat, error) {
	st, err := m.lend(mutable)
	if err != nil {
		return nil, matErrorf(method, err)
	}

	return &Mat{
		nrows:      m.nrows,
		ncols:      m.ncols,
		offset:     m.offset,
		stride:     m.stride,
		transposed: !m.transposed,
		buf:        st,
		ledger:     &ledger{},
		lender:     m.ledger,
	}, nil
}

// SetTransposed flips the transpose flag of m in place and returns m.
// No data moves. Outstanding borrows of m must be released first.
func (m *Mat) SetTransposed() (*Mat, error) {
	if err := m.checkUnshared(); err != nil {
		return nil, matErrorf("SetTransposed", err)
	}
	m.transposed = !m.transposed

	return m, nil
}
