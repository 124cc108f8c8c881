// SPDX-License-Identifier: MIT

// Package matrix - ownership conversion & cloning.
//
// Own is the own-if-needed policy that lets one code path serve owned and
// borrowed left operands: an owner hands over its buffer (no copy), a view is
// copied into a fresh packed buffer.

package matrix

// Own converts m into an owned matrix and consumes m.
// MAIN DESCRIPTION:
//   - Owner: the buffer is moved to the returned handle (no copy); offset,
//     stride and transpose flag are kept. m is marked moved.
//   - View: the logical window is copied into a packed column-major buffer
//     (stride == rows, offset == 0) and the view's borrow is released.
//
// Errors:
//   - ErrBorrowConflict when m has outstanding borrows.
//   - ErrReleased when m was already released or moved.
//
// Complexity:
//   - Owner O(1); view O(r*c).
func (m *Mat) Own() (*Mat, error) {
	if err := m.checkUnshared(); err != nil {
		return nil, matErrorf("Own", err)
	}
	if !m.buf.owning() {
		out, err := m.CloneShrink()
		if err != nil {
			return nil, matErrorf("Own", err)
		}
		if err = m.Release(); err != nil {
			return nil, matErrorf("Own", err)
		}

		return out, nil
	}

	data, _ := m.buf.take() // owning() checked above
	out := &Mat{
		nrows:      m.nrows,
		ncols:      m.ncols,
		offset:     m.offset,
		stride:     m.stride,
		transposed: m.transposed,
		buf:        ownedBuf{data: data},
		ledger:     &ledger{},
	}
	m.buf = ownedBuf{}
	m.ledger.released = true

	return out, nil
}

// Clone returns an owned, independent copy of m. It is CloneShrink.
func (m *Mat) Clone() (*Mat, error) {
	return m.CloneShrink()
}

// CloneShrink returns an owned copy sized exactly to m's logical shape.
// MAIN DESCRIPTION:
//   - When the underlying buffer holds exactly rows*cols elements (no slack),
//     the buffer is bulk-copied and the geometry (offset/stride/transpose) kept.
//   - Otherwise m is a window into a larger buffer and the logical cells are
//     copied one by one into a packed column-major buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Mat) CloneShrink() (*Mat, error) {
	if err := m.checkRead(); err != nil {
		return nil, matErrorf("CloneShrink", err)
	}
	rows, cols := m.Size()
	src := m.buf.ref()

	if len(src) == rows*cols {
		cp := make([]float64, len(src))
		copy(cp, src)

		return &Mat{
			nrows:      m.nrows,
			ncols:      m.ncols,
			offset:     m.offset,
			stride:     m.stride,
			transposed: m.transposed,
			buf:        ownedBuf{data: cp},
			ledger:     &ledger{},
		}, nil
	}

	out := newOwned(rows, cols)
	dst, _ := out.buf.mut()
	var r, c int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			dst[c*rows+r] = src[m.index(r, c)]
		}
	}

	return out, nil
}

// CloneDiagonal turns an n×1 column vector into an owned n×n diagonal matrix.
//
// Errors:
//   - ErrNotColumnVector (an ErrInvalidOperation) when cols != 1.
func (m *Mat) CloneDiagonal() (*Mat, error) {
	if err := m.checkRead(); err != nil {
		return nil, matErrorf("CloneDiagonal", err)
	}
	if err := ValidateColumnVector(m); err != nil {
		return nil, matErrorf("CloneDiagonal", err)
	}
	n := m.Rows()
	out := newOwned(n, n)
	dst, _ := out.buf.mut()
	src := m.buf.ref()
	for i := 0; i < n; i++ {
		dst[i*n+i] = src[m.index(i, 0)]
	}

	return out, nil
}
