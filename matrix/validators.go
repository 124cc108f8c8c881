// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the operand is present: neither a nil interface nor
// a typed nil pointer. Readability of handles is checked separately.
// Complexity: O(1).
func ValidateNotNil(a Accessor) error {
	if isNil(a) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNil reports whether x is a nil interface or a typed nil pointer behind one.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateSameShape ensures a and b are non-nil with identical logical shapes.
// Complexity: O(1).
func ValidateSameShape(a, b Accessor) error {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	ar, ac := a.Size()
	br, bc := b.Size()
	if ar != br {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: Rows %d != %d", ar, br), ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: Columns %d != %d", ac, bc), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a × b.
// Complexity: O(1).
func ValidateMulCompatible(a, b Accessor) error {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	_, ac := a.Size()
	br, _ := b.Size()
	if ac != br {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %d != %d", ac, br), ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumnVector ensures a has exactly one column.
// Complexity: O(1).
func ValidateColumnVector(a Accessor) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateColumnVector", err)
	}
	if _, c := a.Size(); c != 1 {
		return validatorErrorf("ValidateColumnVector", ErrNotColumnVector)
	}

	return nil
}
