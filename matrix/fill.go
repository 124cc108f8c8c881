// SPDX-License-Identifier: MIT

// Package matrix - mutation primitives (assign_* in place, fill_* chainable).
//
// Traversal policy:
//   - Generator-driven writes (AssignBy/AssignWhere/FillBy) visit cells in
//     column-major order (column 0 top to bottom, then column 1, ...), one call
//     per logical cell. Generators with call-order side effects observe exactly
//     this order.
//   - Sequence-driven writes (AssignFromRowMajor/FillFromRowMajor) consume the
//     values in row-major order; missing trailing values are 0, surplus is ignored.

package matrix

// AssignWhere sets every logical cell (r,c) for which f returns ok == true to v;
// cells where f returns ok == false keep their value.
// MAIN DESCRIPTION:
//   - The single write loop behind every generator-driven mutator.
//
// Errors:
//   - ErrReadOnly, ErrBorrowConflict, ErrReleased (see checkWrite).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Mat) AssignWhere(f func(row, col int) (v float64, ok bool)) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf("AssignWhere", err)
	}
	m.assignWhere(f)

	return nil
}

// assignWhere is AssignWhere without the writability check.
func (m *Mat) assignWhere(f func(row, col int) (float64, bool)) {
	rows, cols := m.Size()
	data, _ := m.buf.mut()
	var (
		r, c int
		v    float64
		ok   bool
	)
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			if v, ok = f(r, c); ok {
				data[m.index(r, c)] = v
			}
		}
	}
}

// AssignBy sets every logical cell (r,c) to f(r,c), column-major.
func (m *Mat) AssignBy(f func(row, col int) float64) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf("AssignBy", err)
	}
	m.assignWhere(func(r, c int) (float64, bool) { return f(r, c), true })

	return nil
}

// AssignFromRowMajor copies values into m in row-major order.
// Missing trailing values default to 0; surplus values are ignored.
func (m *Mat) AssignFromRowMajor(values []float64) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf("AssignFromRowMajor", err)
	}
	rows, cols := m.Size()
	data, _ := m.buf.mut()
	var r, c, k int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			v := 0.0
			if k < len(values) {
				v = values[k]
			}
			data[m.index(r, c)] = v
			k++
		}
	}

	return nil
}

// AssignIdentity sets 1 on the main diagonal and 0 elsewhere.
func (m *Mat) AssignIdentity() error {
	if err := m.checkWrite(); err != nil {
		return matErrorf("AssignIdentity", err)
	}
	m.assignWhere(func(r, c int) (float64, bool) {
		if r == c {
			return 1, true
		}

		return 0, true
	})

	return nil
}

// AssignConstant sets every cell to v.
func (m *Mat) AssignConstant(v float64) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf("AssignConstant", err)
	}
	m.assignWhere(func(int, int) (float64, bool) { return v, true })

	return nil
}

// Assign copies src into m cell by cell.
//
// Errors:
//   - ErrDimensionMismatch when the logical shapes differ; m is left untouched.
func (m *Mat) Assign(src Accessor) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf("Assign", err)
	}
	if err := readable(src); err != nil {
		return matErrorf("Assign", err)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return matErrorf("Assign", err)
	}
	get := reader(src)
	m.assignWhere(func(r, c int) (float64, bool) { return get(r, c), true })

	return nil
}

// ---------- chainable builders (return the receiver) ----------

// FillBy is the chainable form of AssignBy.
func (m *Mat) FillBy(f func(row, col int) float64) (*Mat, error) {
	if err := m.AssignBy(f); err != nil {
		return nil, err
	}

	return m, nil
}

// FillFromRowMajor is the chainable form of AssignFromRowMajor.
func (m *Mat) FillFromRowMajor(values []float64) (*Mat, error) {
	if err := m.AssignFromRowMajor(values); err != nil {
		return nil, err
	}

	return m, nil
}

// FillIdentity is the chainable form of AssignIdentity.
func (m *Mat) FillIdentity() (*Mat, error) {
	if err := m.AssignIdentity(); err != nil {
		return nil, err
	}

	return m, nil
}

// FillConstant is the chainable form of AssignConstant.
func (m *Mat) FillConstant(v float64) (*Mat, error) {
	if err := m.AssignConstant(v); err != nil {
		return nil, err
	}

	return m, nil
}
