// SPDX-License-Identifier: MIT

// Package matrix - slicing engine (zero-copy sub-blocks).
//
// Purpose:
//   - Resolve open/closed/unbounded ranges against the LOGICAL shape.
//   - Derive a handle over the same buffer: offset' = offset + stride*colStart + rowStart,
//     same stride, same transpose flag, extents = resolved range lengths.
//
// Notes:
//   - When the source is transposed the logical row range addresses physical
//     columns, so the ranges are swapped before computing the offset.
//   - Slicing never copies; use Clone/Own to obtain an independent matrix.

package matrix

import (
	"fmt"
	"strconv"
)

// Range selects a contiguous run of indices along one axis.
// The zero value is the unbounded range (equivalent to All()).
type Range struct {
	lo, hi       int
	loSet, hiSet bool
	loExcl       bool // lower bound excluded (lo+1 is the first index)
	hiIncl       bool // upper bound included (hi is the last index)
}

// All selects every index of the axis.
func All() Range { return Range{} }

// Span selects the half-open run [lo, hi).
func Span(lo, hi int) Range { return Range{lo: lo, hi: hi, loSet: true, hiSet: true} }

// Closed selects the inclusive run [lo, hi].
func Closed(lo, hi int) Range {
	return Range{lo: lo, hi: hi, loSet: true, hiSet: true, hiIncl: true}
}

// From selects [lo, extent).
func From(lo int) Range { return Range{lo: lo, loSet: true} }

// After selects (lo, extent), i.e. starting at lo+1.
func After(lo int) Range { return Range{lo: lo, loSet: true, loExcl: true} }

// To selects [0, hi).
func To(hi int) Range { return Range{hi: hi, hiSet: true} }

// Through selects [0, hi].
func Through(hi int) Range { return Range{hi: hi, hiSet: true, hiIncl: true} }

// Index selects the single index i.
func Index(i int) Range { return Closed(i, i) }

// resolve turns r into a half-open [lo, hi) inside [0, extent].
func (r Range) resolve(extent int) (lo, hi int, err error) {
	lo, hi = 0, extent
	if r.loSet {
		lo = r.lo
		if r.loExcl {
			lo++
		}
	}
	if r.hiSet {
		hi = r.hi
		if r.hiIncl {
			hi++
		}
	}
	if lo < 0 || hi < lo || hi > extent {
		return 0, 0, ErrOutOfRange
	}

	return lo, hi, nil
}

// String renders the range in interval notation, e.g. "1..=2" or "..".
func (r Range) String() string {
	var s string
	if r.loSet {
		s = strconv.Itoa(r.lo)
		if r.loExcl {
			s = "(" + s
		}
	}
	s += ".."
	if r.hiSet {
		if r.hiIncl {
			s += "="
		}
		s += strconv.Itoa(r.hi)
	}

	return s
}

// physicalBounds resolves logical ranges and returns physical [lo,hi) pairs.
func (m *Mat) physicalBounds(rows, cols Range) (pr, pc [2]int, err error) {
	lr, lc := m.Size()
	r0, r1, err := rows.resolve(lr)
	if err != nil {
		return pr, pc, err
	}
	c0, c1, err := cols.resolve(lc)
	if err != nil {
		return pr, pc, err
	}
	if m.transposed {
		return [2]int{c0, c1}, [2]int{r0, r1}, nil
	}

	return [2]int{r0, r1}, [2]int{c0, c1}, nil
}

// slice is the single implementation behind every slicing entry point.
func (m *Mat) slice(method string, rows, cols Range, mutable bool) (*Mat, error) {
	if err := m.checkRead(); err != nil {
		return nil, matErrorf(method, err)
	}
	pr, pc, err := m.physicalBounds(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Mat.%s(%v,%v): %w", method, rows, cols, err)
	}
	st, err := m.lend(mutable)
	if err != nil {
		return nil, matErrorf(method, err)
	}

	return &Mat{
		nrows:      pr[1] - pr[0],
		ncols:      pc[1] - pc[0],
		offset:     m.offset + m.stride*pc[0] + pr[0],
		stride:     m.stride,
		transposed: m.transposed,
		buf:        st,
		ledger:     &ledger{},
		lender:     m.ledger,
	}, nil
}

// Slice returns an immutable view of the logical block rows×cols.
// MAIN DESCRIPTION:
//   - O(1) window over the same buffer; no data is copied.
//
// Errors:
//   - ErrOutOfRange when a resolved range leaves the logical shape.
//   - ErrBorrowConflict when m is frozen by a mutable borrow.
//
// Notes:
//   - Release the view to end the borrow; m stays read-only until then.
func (m *Mat) Slice(rows, cols Range) (*Mat, error) {
	return m.slice("Slice", rows, cols, false)
}

// SliceMut returns a mutable view of the logical block rows×cols.
// Writes through the view land in m's buffer at the corresponding coordinates.
// m is frozen until the view is released.
func (m *Mat) SliceMut(rows, cols Range) (*Mat, error) {
	return m.slice("SliceMut", rows, cols, true)
}

// RowsView returns an immutable view of the selected rows (all columns).
func (m *Mat) RowsView(rows Range) (*Mat, error) { return m.slice("RowsView", rows, All(), false) }

// ColsView returns an immutable view of the selected columns (all rows).
func (m *Mat) ColsView(cols Range) (*Mat, error) { return m.slice("ColsView", All(), cols, false) }

// Row returns an immutable 1×cols view of row i.
func (m *Mat) Row(i int) (*Mat, error) { return m.slice("Row", Index(i), All(), false) }

// Col returns an immutable rows×1 view of column i.
func (m *Mat) Col(i int) (*Mat, error) { return m.slice("Col", All(), Index(i), false) }

// RowsMut returns a mutable view of the selected rows (all columns).
func (m *Mat) RowsMut(rows Range) (*Mat, error) { return m.slice("RowsMut", rows, All(), true) }

// ColsMut returns a mutable view of the selected columns (all rows).
func (m *Mat) ColsMut(cols Range) (*Mat, error) { return m.slice("ColsMut", All(), cols, true) }

// RowMut returns a mutable 1×cols view of row i.
func (m *Mat) RowMut(i int) (*Mat, error) { return m.slice("RowMut", Index(i), All(), true) }

// ColMut returns a mutable rows×1 view of column i.
func (m *Mat) ColMut(i int) (*Mat, error) { return m.slice("ColMut", All(), Index(i), true) }

// AsView returns an immutable view of the whole logical matrix.
func (m *Mat) AsView() (*Mat, error) { return m.slice("AsView", All(), All(), false) }

// AsViewMut returns a mutable view of the whole logical matrix.
func (m *Mat) AsViewMut() (*Mat, error) { return m.slice("AsViewMut", All(), All(), true) }
