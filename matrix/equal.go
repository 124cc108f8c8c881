// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b have the same logical shape and exactly equal
// elements (IEEE ==, so NaN never equals NaN). Shapes are compared first; a
// shape mismatch is "not equal", never an error.
// An operand that cannot be read (nil, released, frozen) compares unequal.
// Complexity: O(r*c) worst case; early exit on the first differing cell.
func Equal(a, b Accessor) bool {
	if readable(a) != nil || readable(b) != nil {
		return false
	}
	ar, ac := a.Size()
	br, bc := b.Size()
	if ar != br || ac != bc {
		return false
	}
	getA, getB := reader(a), reader(b)
	var r, c int
	for c = 0; c < ac; c++ {
		for r = 0; r < ar; r++ {
			if getA(r, c) != getB(r, c) {
				return false
			}
		}
	}

	return true
}

// Equal reports whether m equals b; see the package-level Equal.
func (m *Mat) Equal(b Accessor) bool {
	return Equal(m, b)
}
