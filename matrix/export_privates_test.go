// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes buffer identity to matrix_test for allocation checks.

// BufferID returns the address of the first element of m's backing buffer,
// or nil for an empty or moved handle.
func BufferID(m *Mat) *float64 {
	data := m.buf.ref()
	if len(data) == 0 {
		return nil
	}

	return &data[0]
}

// SameBuffer reports whether a and b address the same non-empty buffer.
func SameBuffer(a, b *Mat) bool {
	x := BufferID(a)

	return x != nil && x == BufferID(b)
}

// BufferLen returns the length of the backing buffer.
func BufferLen(m *Mat) int {
	return len(m.buf.ref())
}

// FormatOptionsSnapshot is a read-only copy of the resolved format options.
type FormatOptionsSnapshot struct {
	Precision int
	Verb      byte
	RowOpen   string
	RowClose  string
}

// GatherFormatOptionsSnapshot resolves opts over the defaults.
func GatherFormatOptionsSnapshot(opts ...FormatOption) FormatOptionsSnapshot {
	o := gatherFormatOptions(opts...)

	return FormatOptionsSnapshot{
		Precision: o.precision,
		Verb:      o.verb,
		RowOpen:   o.rowOpen,
		RowClose:  o.rowClose,
	}
}
