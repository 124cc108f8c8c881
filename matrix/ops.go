// SPDX-License-Identifier: MIT

// Package matrix - arithmetic algebra.
//
// Three forms per operator:
//   - Compound (XxxAssign): mutates the receiver in place.
//   - Reference (Xxx): never mutates the receiver; materializes a copy first
//     (exactly one allocation) and applies the compound form to it.
//   - Consuming (IntoXxx): takes the receiver by value via Own; an owner's
//     buffer is reused for the result (no allocation) and the receiver is moved.
//
// Validation always happens before any allocation or move, so a failing call
// leaves every operand intact. Matrix multiplication always allocates.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNeg       = "Neg"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScale     = "Scale"
	opDiv       = "Div"
)

// operand is a prepared right-hand side: a getter plus, when the operand is a
// packed matrix handle, its contiguous cells for the flat fast-path.
type operand struct {
	get        func(row, col int) float64
	flat       []float64
	isFlat     bool
	transposed bool
}

// operandOf captures b's getter and buffer window up front, so the operand
// stays valid even if b is the receiver being moved by a consuming operator.
func operandOf(b Accessor) operand {
	op := operand{get: reader(b)}
	if h, ok := handleOf(b); ok {
		op.flat, op.isFlat = h.flatWindow()
		op.transposed = h.transposed
	}

	return op
}

// flatWindow returns the handle's cells as one contiguous slice in physical
// column-major order, when its geometry allows it.
func (m *Mat) flatWindow() ([]float64, bool) {
	n := m.nrows * m.ncols
	if n == 0 {
		return nil, true
	}
	if m.stride != m.nrows && m.ncols > 1 {
		return nil, false
	}

	return m.buf.ref()[m.offset : m.offset+n], true
}

// combine applies m[r,c] = f(m[r,c], b[r,c]) over the logical shape.
// Shapes and writability are validated by the caller.
func (m *Mat) combine(b operand, f func(x, y float64) float64) {
	// Fast-path: both flat with the same orientation share the physical order.
	if b.isFlat && b.transposed == m.transposed {
		if dst, ok := m.flatWindow(); ok {
			for i := range dst {
				dst[i] = f(dst[i], b.flat[i])
			}

			return
		}
	}

	// Fallback: logical column-major loop.
	rows, cols := m.Size()
	data, _ := m.buf.mut()
	var r, c, idx int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			idx = m.index(r, c)
			data[idx] = f(data[idx], b.get(r, c))
		}
	}
}

// mapCells applies m[r,c] = f(m[r,c]) to every cell.
func (m *Mat) mapCells(f func(x float64) float64) {
	if dst, ok := m.flatWindow(); ok {
		for i := range dst {
			dst[i] = f(dst[i])
		}

		return
	}
	rows, cols := m.Size()
	data, _ := m.buf.mut()
	var r, c, idx int
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			idx = m.index(r, c)
			data[idx] = f(data[idx])
		}
	}
}

func addFn(x, y float64) float64 { return x + y }
func subFn(x, y float64) float64 { return x - y }

// validateBinary runs the shared checks of element-wise binary operators.
func (m *Mat) validateBinary(b Accessor) error {
	if err := readable(b); err != nil {
		return err
	}

	return ValidateSameShape(m, b)
}

// ---------- compound (in place) ----------

// AddAssign adds b to m element-wise, in place.
//
// Errors:
//   - ErrDimensionMismatch when the logical shapes differ; m is left untouched.
//   - ErrReadOnly / ErrBorrowConflict when m cannot be written.
func (m *Mat) AddAssign(b Accessor) error {
	return m.binaryAssign(opAdd+"Assign", b, addFn)
}

// SubAssign subtracts b from m element-wise, in place.
func (m *Mat) SubAssign(b Accessor) error {
	return m.binaryAssign(opSub+"Assign", b, subFn)
}

func (m *Mat) binaryAssign(method string, b Accessor, f func(x, y float64) float64) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf(method, err)
	}
	if err := m.validateBinary(b); err != nil {
		return matErrorf(method, err)
	}
	m.combine(operandOf(b), f)

	return nil
}

// NegAssign negates every element in place.
func (m *Mat) NegAssign() error {
	return m.scalarAssign(opNeg+"Assign", func(x float64) float64 { return -x })
}

// AddScalarAssign adds v to every element in place.
func (m *Mat) AddScalarAssign(v float64) error {
	return m.scalarAssign(opAddScalar+"Assign", func(x float64) float64 { return x + v })
}

// SubScalarAssign subtracts v from every element in place.
func (m *Mat) SubScalarAssign(v float64) error {
	return m.scalarAssign(opSubScalar+"Assign", func(x float64) float64 { return x - v })
}

// ScaleAssign multiplies every element by v in place.
func (m *Mat) ScaleAssign(v float64) error {
	return m.scalarAssign(opScale+"Assign", func(x float64) float64 { return x * v })
}

// DivAssign divides every element by v in place. Division by zero follows
// IEEE-754 (±Inf or NaN); it is not an error.
func (m *Mat) DivAssign(v float64) error {
	return m.scalarAssign(opDiv+"Assign", func(x float64) float64 { return x / v })
}

func (m *Mat) scalarAssign(method string, f func(x float64) float64) error {
	if err := m.checkWrite(); err != nil {
		return matErrorf(method, err)
	}
	m.mapCells(f)

	return nil
}

// ---------- reference forms (receiver untouched) ----------

// Neg returns -m as a new owned matrix.
func (m *Mat) Neg() (*Mat, error) {
	return m.scalarRef(opNeg, func(x float64) float64 { return -x })
}

// Add returns m + b as a new owned matrix.
//
// Stage 1 (Validate): m readable, b readable, identical shapes.
// Stage 2 (Prepare): copy m (own-if-needed on a borrowed receiver).
// Stage 3 (Execute): in-place addition on the copy.
// Complexity: O(r*c) time and memory.
func (m *Mat) Add(b Accessor) (*Mat, error) {
	return m.binaryRef(opAdd, b, addFn)
}

// Sub returns m - b as a new owned matrix.
func (m *Mat) Sub(b Accessor) (*Mat, error) {
	return m.binaryRef(opSub, b, subFn)
}

// AddScalar returns m + v (v broadcast to every element).
func (m *Mat) AddScalar(v float64) (*Mat, error) {
	return m.scalarRef(opAddScalar, func(x float64) float64 { return x + v })
}

// SubScalar returns m - v (v broadcast to every element).
func (m *Mat) SubScalar(v float64) (*Mat, error) {
	return m.scalarRef(opSubScalar, func(x float64) float64 { return x - v })
}

// Scale returns v*m.
func (m *Mat) Scale(v float64) (*Mat, error) {
	return m.scalarRef(opScale, func(x float64) float64 { return x * v })
}

// Div returns m / v. Only matrix-by-scalar division is defined.
func (m *Mat) Div(v float64) (*Mat, error) {
	return m.scalarRef(opDiv, func(x float64) float64 { return x / v })
}

func (m *Mat) binaryRef(method string, b Accessor, f func(x, y float64) float64) (*Mat, error) {
	if err := m.checkRead(); err != nil {
		return nil, matErrorf(method, err)
	}
	if err := m.validateBinary(b); err != nil {
		return nil, matErrorf(method, err)
	}
	out, err := m.CloneShrink()
	if err != nil {
		return nil, matErrorf(method, err)
	}
	out.combine(operandOf(b), f)

	return out, nil
}

func (m *Mat) scalarRef(method string, f func(x float64) float64) (*Mat, error) {
	out, err := m.CloneShrink()
	if err != nil {
		return nil, matErrorf(method, err)
	}
	out.mapCells(f)

	return out, nil
}

// ---------- consuming forms (receiver moved) ----------

// IntoNeg consumes m and returns -m, reusing m's buffer when m is an owner.
func (m *Mat) IntoNeg() (*Mat, error) {
	return m.scalarInto(opNeg, func(x float64) float64 { return -x })
}

// IntoAdd consumes m and returns m + b, reusing m's buffer when m is an owner.
// On error m is left intact.
func (m *Mat) IntoAdd(b Accessor) (*Mat, error) {
	return m.binaryInto(opAdd, b, addFn)
}

// IntoSub consumes m and returns m - b.
func (m *Mat) IntoSub(b Accessor) (*Mat, error) {
	return m.binaryInto(opSub, b, subFn)
}

// IntoAddScalar consumes m and returns m + v.
func (m *Mat) IntoAddScalar(v float64) (*Mat, error) {
	return m.scalarInto(opAddScalar, func(x float64) float64 { return x + v })
}

// IntoSubScalar consumes m and returns m - v.
func (m *Mat) IntoSubScalar(v float64) (*Mat, error) {
	return m.scalarInto(opSubScalar, func(x float64) float64 { return x - v })
}

// IntoScale consumes m and returns v*m.
func (m *Mat) IntoScale(v float64) (*Mat, error) {
	return m.scalarInto(opScale, func(x float64) float64 { return x * v })
}

// IntoDiv consumes m and returns m / v.
func (m *Mat) IntoDiv(v float64) (*Mat, error) {
	return m.scalarInto(opDiv, func(x float64) float64 { return x / v })
}

func (m *Mat) binaryInto(method string, b Accessor, f func(x, y float64) float64) (*Mat, error) {
	if err := m.checkUnshared(); err != nil {
		return nil, matErrorf(method, err)
	}
	if err := m.validateBinary(b); err != nil {
		return nil, matErrorf(method, err)
	}
	rhs := operandOf(b) // captured before m is moved
	out, err := m.Own()
	if err != nil {
		return nil, matErrorf(method, err)
	}
	out.combine(rhs, f)

	return out, nil
}

func (m *Mat) scalarInto(method string, f func(x float64) float64) (*Mat, error) {
	out, err := m.Own()
	if err != nil {
		return nil, matErrorf(method, err)
	}
	out.mapCells(f)

	return out, nil
}

// ---------- matrix multiplication ----------

// Mul returns the matrix product m × b as a new (m.Rows × b.Cols) matrix.
//
// Stage 1 (Validate): both readable; m.Cols == b.Rows.
// Stage 2 (Prepare): allocate the result.
// Stage 3 (Execute): blas64.Gemm when both operands are matrix handles,
// otherwise a column-major triple loop over the Accessor.
// Complexity: O(r*n*c) time and O(r*c) memory.
func (m *Mat) Mul(b Accessor) (*Mat, error) {
	if err := m.checkRead(); err != nil {
		return nil, matErrorf(opMul, err)
	}
	if err := readable(b); err != nil {
		return nil, matErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matErrorf(opMul, err)
	}

	rows, inner := m.Size()
	_, cols := b.Size()
	if h, ok := handleOf(b); ok && rows > 0 && inner > 0 && cols > 0 {
		return m.gemm(h), nil
	}
	out := newOwned(rows, cols)
	dst, _ := out.buf.mut()
	src := m.buf.ref()
	get := reader(b)

	var (
		r, c, k int
		acc     float64
	)
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += src[m.index(r, k)] * get(k, c)
			}
			dst[c*rows+r] = acc
		}
	}

	return out, nil
}

// ---------- package-level forms over any Accessor ----------

// materialize returns an owned copy of a (CloneShrink for handles).
func materialize(a Accessor) (*Mat, error) {
	if err := readable(a); err != nil {
		return nil, err
	}
	if h, ok := handleOf(a); ok {
		return h.CloneShrink()
	}
	rows, cols := a.Size()
	out := newOwned(rows, cols)
	out.assignWhere(func(r, c int) (float64, bool) { return a.Get(r, c), true })

	return out, nil
}

// Add returns a + b as a new owned matrix.
func Add(a, b Accessor) (*Mat, error) {
	return combineAccessors(opAdd, a, b, addFn)
}

// Sub returns a - b as a new owned matrix.
func Sub(a, b Accessor) (*Mat, error) {
	return combineAccessors(opSub, a, b, subFn)
}

func combineAccessors(tag string, a, b Accessor, f func(x, y float64) float64) (*Mat, error) {
	if err := readable(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := readable(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := materialize(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out.combine(operandOf(b), f)

	return out, nil
}

// Mul returns the matrix product a × b.
func Mul(a, b Accessor) (*Mat, error) {
	if h, ok := handleOf(a); ok {
		return h.Mul(b)
	}
	left, err := materialize(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return left.Mul(b)
}

// ScalarAdd returns v + a; it delegates to the matrix-first form a + v.
func ScalarAdd(v float64, a Accessor) (*Mat, error) {
	out, err := materialize(a)
	if err != nil {
		return nil, matrixErrorf("ScalarAdd", err)
	}
	out.mapCells(func(x float64) float64 { return x + v })

	return out, nil
}

// ScalarSub returns v - a, computed as (-a) + v.
func ScalarSub(v float64, a Accessor) (*Mat, error) {
	out, err := materialize(a)
	if err != nil {
		return nil, matrixErrorf("ScalarSub", err)
	}
	out.mapCells(func(x float64) float64 { return -x + v })

	return out, nil
}

// ScalarMul returns v*a; it delegates to the matrix-first form a*v.
func ScalarMul(v float64, a Accessor) (*Mat, error) {
	out, err := materialize(a)
	if err != nil {
		return nil, matrixErrorf("ScalarMul", err)
	}
	out.mapCells(func(x float64) float64 { return x * v })

	return out, nil
}
