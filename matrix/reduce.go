// SPDX-License-Identifier: MIT

// Package matrix - reductions & queries.
// All loops run column-major over the logical shape and visit each cell once.

package matrix

import "math"

// NormP2Squared returns the sum of squared elements.
// Complexity: O(r*c).
func (m *Mat) NormP2Squared() (float64, error) {
	if err := m.checkRead(); err != nil {
		return 0, matErrorf("NormP2Squared", err)
	}

	return m.normP2Squared(), nil
}

func (m *Mat) normP2Squared() float64 {
	rows, cols := m.Size()
	data := m.buf.ref()
	sum := 0.0
	var r, c int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			v := data[m.index(r, c)]
			sum += v * v
		}
	}

	return sum
}

// NormP2 returns the Frobenius (element-wise p=2) norm.
func (m *Mat) NormP2() (float64, error) {
	if err := m.checkRead(); err != nil {
		return 0, matErrorf("NormP2", err)
	}

	return math.Sqrt(m.normP2Squared()), nil
}

// Trace returns the sum of m[i,i] for i < min(rows, cols).
func (m *Mat) Trace() (float64, error) {
	if err := m.checkRead(); err != nil {
		return 0, matErrorf("Trace", err)
	}
	rows, cols := m.Size()
	n := min(rows, cols)
	data := m.buf.ref()
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += data[m.index(i, i)]
	}

	return sum, nil
}

// InnerProduct returns the sum of element-wise products of m and b.
//
// Errors:
//   - ErrDimensionMismatch when the logical shapes differ.
func (m *Mat) InnerProduct(b Accessor) (float64, error) {
	if err := m.checkRead(); err != nil {
		return 0, matErrorf("InnerProduct", err)
	}
	if err := readable(b); err != nil {
		return 0, matErrorf("InnerProduct", err)
	}
	if err := ValidateSameShape(m, b); err != nil {
		return 0, matErrorf("InnerProduct", err)
	}
	rows, cols := m.Size()
	data := m.buf.ref()
	get := reader(b)
	sum := 0.0
	var r, c int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			sum += data[m.index(r, c)] * get(r, c)
		}
	}

	return sum, nil
}

// Max returns the largest element. ok is false for an empty matrix
// (rows == 0 or cols == 0). NaN elements never compare greater.
func (m *Mat) Max() (v float64, ok bool, err error) {
	return m.extreme("Max", func(x, best float64) bool { return x > best })
}

// Min returns the smallest element. ok is false for an empty matrix.
func (m *Mat) Min() (v float64, ok bool, err error) {
	return m.extreme("Min", func(x, best float64) bool { return x < best })
}

func (m *Mat) extreme(method string, better func(x, best float64) bool) (float64, bool, error) {
	if err := m.checkRead(); err != nil {
		return 0, false, matErrorf(method, err)
	}
	rows, cols := m.Size()
	if rows == 0 || cols == 0 {
		return 0, false, nil
	}
	data := m.buf.ref()
	best := data[m.index(0, 0)]
	var r, c int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			if x := data[m.index(r, c)]; better(x, best) {
				best = x
			}
		}
	}

	return best, true, nil
}
