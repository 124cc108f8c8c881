// SPDX-License-Identifier: MIT

// Package matrix provides a dense, column-major float64 matrix with
// zero-copy views, slicing and transposition, and an operator algebra.
//
// A *Mat is a handle over a flat buffer. The handle records where its block
// starts (Offset), the distance between columns (Stride), and whether it is
// read transposed. Slicing and transposing produce new handles over the same
// buffer in O(1):
//
//	a, _ := matrix.NewFromRowMajor(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	col, _ := a.Col(1)  // 2×1 view: [2, 5]
//	at, _ := a.T()      // 3×2 view of the same buffer
//
// Every handle has a Kind:
//
//   - Owned: it owns its buffer and may read, write, lend and be consumed.
//   - Borrowed: a read-only view; writes return ErrReadOnly.
//   - BorrowedMut: an exclusive writable view.
//
// Aliasing rules are enforced at run time. A handle may lend any number of
// read-only views, or exactly one writable view. While a writable view is
// outstanding its lender can be neither read nor written; while read-only
// views are outstanding the lender cannot be written. Release ends a view's
// borrow. Violations return ErrBorrowConflict.
//
// Operators come in three forms:
//
//   - compound (AddAssign, ScaleAssign, ...) mutate the receiver;
//   - reference (Add, Scale, ...) return a new owned matrix;
//   - consuming (IntoAdd, IntoScale, ...) move the receiver and reuse an
//     owner's buffer for the result.
//
// Right-hand operands are taken as Accessor, so a *Mat, a view or a gonum
// mat.Matrix (via GonumAccessor) are interchangeable. Matrix products of two
// handles run on gonum's blas64.Gemm. (*Mat).Gonum lends a handle to gonum as a
// GonumView, a shared borrow that must be released like any other view.
//
// Errors are sentinel values (ErrBadShape, ErrDimensionMismatch, ...)
// wrapped with the failing method; match them with errors.Is.
package matrix
