// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.
//
// A column-major buffer read as row-major is the transpose of the matrix it
// holds, so a handle maps onto a blas64.General without copying:
//   - not transposed: General{Rows: ncols, Cols: nrows} holds Aᵀ;
//   - transposed:     General{Rows: ncols, Cols: nrows} holds A.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxGonum        = "Gonum"
	ctxToGonumDense = "ToGonumDense"
	ctxFromGonum    = "FromGonum"
)

// general returns the row-major blas64 view of m's physical block and the
// transpose flag that turns it into the logical Aᵀ.
// Requires a non-empty block.
func (m *Mat) general() (blas64.General, blas.Transpose) {
	g := blas64.General{
		Rows:   m.ncols,
		Cols:   m.nrows,
		Stride: m.stride,
		Data:   m.buf.ref()[m.offset:],
	}
	if m.transposed {
		return g, blas.Trans
	}

	return g, blas.NoTrans
}

// gemm writes m × b into a fresh owned matrix using blas64.Gemm.
// Computes Cᵀ = Bᵀ·Aᵀ over the row-major views of the column-major buffers.
func (m *Mat) gemm(b *Mat) *Mat {
	rows, _ := m.Size()
	_, cols := b.Size()
	out := newOwned(rows, cols)
	dst, _ := out.buf.mut()

	ga, ta := m.general()
	gb, tb := b.general()
	gc := blas64.General{Rows: cols, Cols: rows, Stride: rows, Data: dst}
	blas64.Gemm(tb, ta, 1, gb, ga, 0, gc)

	return out
}

// GonumView exposes a handle as a read-only mat.Matrix. It holds a shared
// borrow of the handle it was taken from until Release is called.
type GonumView struct {
	v *Mat
	t bool
}

var _ mat.Matrix = GonumView{}

// Dims returns the dimensions of the view, swapped after T.
func (g GonumView) Dims() (r, c int) {
	r, c = g.v.Size()
	if g.t {
		return c, r
	}

	return r, c
}

// At returns the element at (i, j). Like Get it panics on a bad index or
// when the view has been released.
func (g GonumView) At(i, j int) float64 {
	if g.t {
		return g.v.Get(j, i)
	}

	return g.v.Get(i, j)
}

// T returns the transpose over the same borrow.
func (g GonumView) T() mat.Matrix { return GonumView{v: g.v, t: !g.t} }

// Release ends the shared borrow; the view must not be read afterwards.
// Releasing twice is a no-op.
func (g GonumView) Release() error {
	if err := g.v.Release(); err != nil {
		return matErrorf(ctxGonum, err)
	}

	return nil
}

// Gonum returns m as a mat.Matrix that reads through the handle (no copy).
// The view takes a shared borrow: until it is released m cannot be lent
// mutably, moved or written.
func (m *Mat) Gonum() (GonumView, error) {
	v, err := m.slice(ctxGonum, All(), All(), false)
	if err != nil {
		return GonumView{}, err
	}

	return GonumView{v: v}, nil
}

// ToGonumDense copies m into a new *mat.Dense.
//
// Errors:
//   - ErrBadShape for an empty matrix (mat.Dense has no zero-size form).
func (m *Mat) ToGonumDense() (*mat.Dense, error) {
	if err := m.checkRead(); err != nil {
		return nil, matErrorf(ctxToGonumDense, err)
	}
	rows, cols := m.Size()
	if rows == 0 || cols == 0 {
		return nil, matErrorf(ctxToGonumDense, ErrBadShape)
	}
	data := make([]float64, rows*cols)
	src := m.buf.ref()
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			data[r*cols+c] = src[m.index(r, c)]
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any mat.Matrix into a new owned Mat.
// A packed *mat.Dense is copied in one pass and comes back as a transposed
// column-major handle over its row-major data.
func FromGonum(src mat.Matrix) (*Mat, error) {
	if isNil(src) {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if d, ok := src.(*mat.Dense); ok && rows > 0 && cols > 0 {
		raw := d.RawMatrix()
		if raw.Stride == cols {
			out := newOwned(cols, rows)
			dst, _ := out.buf.mut()
			copy(dst, raw.Data[:rows*cols])
			out.transposed = true

			return out, nil
		}
	}
	out := newOwned(rows, cols)
	out.assignWhere(func(r, c int) (float64, bool) { return src.At(r, c), true })

	return out, nil
}

// gonumAccessor adapts a mat.Matrix to Accessor.
type gonumAccessor struct{ src mat.Matrix }

func (g gonumAccessor) Size() (rows, cols int)   { return g.src.Dims() }
func (g gonumAccessor) Get(row, col int) float64 { return g.src.At(row, col) }

// GonumAccessor wraps src so it can be used as the right-hand operand of any
// operator. A nil src yields a nil Accessor.
func GonumAccessor(src mat.Matrix) Accessor {
	if isNil(src) {
		return nil
	}

	return gonumAccessor{src: src}
}
