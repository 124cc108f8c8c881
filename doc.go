// Package totsu is a small dense linear-algebra kernel built around a
// column-major matrix handle with zero-copy views.
//
// What is inside?
//
//	A pure-Go library that brings together:
//		• Matrix handle: column-major storage addressed by offset/stride/transpose
//		• Views: immutable and mutable sub-blocks, rows, columns, O(1) transpose
//		• Runtime-checked aliasing: many readers or one writer, never both
//		• Operator algebra: in-place, by-reference and consuming forms of + - * /
//		• Interop: gonum mat.Matrix adapters, blas64-backed products
//		• Fixtures: a reproducible xorshift generator
//
// The subpackages are:
//
//	matrix/: the Mat handle, slicing, ownership, reductions, operators, display
//	rng/:    the xor64 generator and a math/rand Source over it
//
// Quick example:
//
//	a, _ := matrix.NewIdentity(4)
//	center, _ := a.SliceMut(matrix.Closed(1, 2), matrix.Closed(1, 2))
//	_ = center.AssignConstant(2)
//	_ = center.Release()
//	fmt.Print(a)
//
// prints the 4×4 identity with its central 2×2 block set to 2.
//
//	go get github.com/AtsushiSakai/Totsu/matrix
package totsu
