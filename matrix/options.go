// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for textual rendering.
// This file defines:
//   - FormatOption / FormatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of digits after the decimal point.
	DefaultPrecision = 3

	// DefaultVerb selects scientific notation (strconv.FormatFloat format byte).
	DefaultVerb = 'e'
)

// Row delimiters and cell separator.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be non-negative"
	panicVerbInvalid      = "matrix: WithVerb: verb must be one of e, E, f, g, G"
)

// FormatOption mutates internal format options. Safe to apply repeatedly.
type FormatOption func(*FormatOptions)

// FormatOptions stores the effective rendering configuration after applying
// FormatOption setters. Fields are unexported; use WithX constructors.
type FormatOptions struct {
	precision int    // >= 0; DefaultPrecision
	verb      byte   // DefaultVerb
	rowOpen   string // _fmtRowOpen
	rowClose  string // _fmtRowClose
}

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() FormatOptions {
	return FormatOptions{
		precision: DefaultPrecision,
		verb:      DefaultVerb,
		rowOpen:   _fmtRowOpen,
		rowClose:  _fmtRowClose,
	}
}

// gatherFormatOptions applies opts over the defaults, in order; nil options are skipped.
func gatherFormatOptions(opts ...FormatOption) FormatOptions {
	o := defaultFormatOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithPrecision sets the number of digits after the decimal point.
// Panics if p < 0.
func WithPrecision(p int) FormatOption {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *FormatOptions) { o.precision = p }
}

// WithVerb selects the float format: 'e'/'E' scientific (default),
// 'f' fixed, 'g'/'G' shortest. Panics on any other verb.
func WithVerb(verb byte) FormatOption {
	switch verb {
	case 'e', 'E', 'f', 'g', 'G':
	default:
		panic(panicVerbInvalid)
	}

	return func(o *FormatOptions) { o.verb = verb }
}

// WithRowDelimiters sets the text written before and after each row.
func WithRowDelimiters(openRow, closeRow string) FormatOption {
	return func(o *FormatOptions) {
		o.rowOpen = openRow
		o.rowClose = closeRow
	}
}
