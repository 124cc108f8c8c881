// SPDX-License-Identifier: MIT

// Package matrix - Accessor: the read-only operand capability.
//
// Operators take their right-hand operand as an Accessor, so a Mat value, a
// *Mat, a view, or a foreign matrix (see GonumAccessor) are all accepted by a
// single implementation.

package matrix

// Accessor is a read-only matrix capability: a logical shape and an element getter.
// Both Mat and *Mat implement it (the methods are declared on the value receiver).
type Accessor interface {
	// Size returns the logical (rows, cols).
	Size() (rows, cols int)

	// Get returns the element at logical (row, col).
	// Indices are guaranteed by the caller to be inside Size().
	Get(row, col int) float64
}

// handleOf unwraps the *Mat behind an Accessor, if any.
func handleOf(a Accessor) (*Mat, bool) {
	switch v := a.(type) {
	case *Mat:
		return v, true
	case Mat:
		return &v, true
	}

	return nil, false
}

// readable validates that a can be read: non-nil, and for matrix handles not
// released or frozen by a mutable borrow.
func readable(a Accessor) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if h, ok := handleOf(a); ok {
		return h.checkRead()
	}

	return nil
}

// reader returns a getter over a; for matrix handles it indexes the buffer
// directly and skips the per-call bounds check of Get.
func reader(a Accessor) func(row, col int) float64 {
	if h, ok := handleOf(a); ok {
		data := h.buf.ref()

		return func(row, col int) float64 { return data[h.index(row, col)] }
	}

	return a.Get
}
