// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with call-site
// context) and tests check them via errors.Is. The only public panics are the
// documented Get precondition and option constructors given nonsensical values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released handle -> borrow conflict -> read-only -> index/shape.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative extent).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an element index or a slice bound lies
	// outside the logical shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Assign/AddAssign of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidOperation is the parent of every "operation not allowed on this
	// handle or shape" condition below.
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrBorrowConflict signals a violation of the aliasing discipline: a mutable
	// borrow requested while other borrows are outstanding, or access through a
	// handle that is frozen by an outstanding mutable borrow.
	ErrBorrowConflict = errors.New("matrix: borrow conflict")

	// ErrReleased signals use of a view after Release, or of a handle whose
	// buffer was moved out by Own or a consuming operator.
	ErrReleased = errors.New("matrix: handle released or moved")

	// ErrNilMatrix indicates that a nil or zero-value handle was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Specialised invalid operations; each wraps ErrInvalidOperation so that
// errors.Is(err, ErrInvalidOperation) holds for all of them.
var (
	// ErrReadOnly is returned when mutable access is requested through an
	// immutable view.
	ErrReadOnly = fmt.Errorf("%w: immutable view", ErrInvalidOperation)

	// ErrNotOwner is returned when ownership of a buffer is requested from a view.
	ErrNotOwner = fmt.Errorf("%w: handle does not own its buffer", ErrInvalidOperation)

	// ErrNotColumnVector is returned by CloneDiagonal when the source has more
	// or fewer than one column.
	ErrNotColumnVector = fmt.Errorf("%w: column vector required", ErrInvalidOperation)
)

// matErrorf wraps an error with a uniform Mat method context.
func matErrorf(method string, err error) error {
	return fmt.Errorf("Mat.%s: %w", method, err)
}

// matIndexErrorf wraps an error with Mat method context and callsite indices.
func matIndexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Mat.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps an underlying error with the given package-function tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
