// SPDX-License-Identifier: MIT

// Package matrix - public API facades.
//
// Purpose:
//   - Provide intention-revealing constructors for the common starting points.
//   - Each facade allocates once via New and delegates to the canonical filler,
//     so no fill logic is duplicated here.

package matrix

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Mat, error) {
	return NewRectIdentity(n, n)
}

// NewRectIdentity returns a rows×cols matrix with ones on the main diagonal.
func NewRectIdentity(rows, cols int) (*Mat, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewRectIdentity", err)
	}

	return m.FillIdentity()
}

// NewConstant returns a rows×cols matrix with every element set to v.
func NewConstant(rows, cols int, v float64) (*Mat, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewConstant", err)
	}

	return m.FillConstant(v)
}

// NewBy returns a rows×cols matrix filled by f(row, col), visited column-major.
func NewBy(rows, cols int, f func(row, col int) float64) (*Mat, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewBy", err)
	}

	return m.FillBy(f)
}

// NewFromRowMajor returns a rows×cols matrix filled from values listed row by
// row. Missing trailing values stay zero; surplus values are ignored.
func NewFromRowMajor(rows, cols int, values []float64) (*Mat, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewFromRowMajor", err)
	}

	return m.FillFromRowMajor(values)
}
