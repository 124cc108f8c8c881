// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders m with the default options: one "[a, b, c]" line per
// logical row, scientific notation with DefaultPrecision digits.
// A handle that cannot be read renders as "Mat(<error>)".
func (m *Mat) String() string {
	return m.Text()
}

// Text renders m with the given format options.
// Complexity: O(r*c).
func (m *Mat) Text(opts ...FormatOption) string {
	var b strings.Builder
	m.render(&b, gatherFormatOptions(opts...))

	return b.String()
}

// Format implements fmt.Formatter. The verbs e, E, f, F, g and G select the
// float format, v and s use DefaultVerb; an explicit precision (e.g. %.5e)
// overrides DefaultPrecision.
func (m *Mat) Format(f fmt.State, verb rune) {
	o := defaultFormatOptions()
	switch verb {
	case 'e', 'E', 'f', 'g', 'G':
		o.verb = byte(verb)
	case 'F':
		o.verb = 'f'
	case 'v', 's':
	default:
		fmt.Fprintf(f, "%%!%c(*matrix.Mat)", verb)
		return
	}
	if p, ok := f.Precision(); ok {
		o.precision = p
	}
	m.render(f, o)
}

// render writes the logical grid row by row into w.
func (m *Mat) render(w io.Writer, o FormatOptions) {
	if err := m.checkRead(); err != nil {
		_, _ = io.WriteString(w, "Mat("+err.Error()+")")
		return
	}
	rows, cols := m.Size()
	data := m.buf.ref()
	var (
		sb   strings.Builder
		r, c int
		cell []byte
	)
	for r = 0; r < rows; r++ {
		sb.WriteString(o.rowOpen)
		for c = 0; c < cols; c++ {
			cell = strconv.AppendFloat(cell[:0], data[m.index(r, c)], o.verb, o.precision, 64)
			sb.Write(cell)
			if c+1 < cols {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(o.rowClose)
	}
	_, _ = io.WriteString(w, sb.String())
}
