// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AtsushiSakai/Totsu/matrix"
)

// TestValidateNotNil covers untyped, typed-nil and present operands.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var nilMat *matrix.Mat
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilMat), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustNew(t, 1, 1)))
	require.NoError(t, matrix.ValidateNotNil(matrix.Mat{}))
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Accessor
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, mustNew(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", mustNew(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", mustNew(t, 2, 3), mustNew(t, 2, 3), nil},
		{"empty 0x3", mustNew(t, 0, 3), mustNew(t, 0, 3), nil},
		{"row mismatch", mustNew(t, 2, 3), mustNew(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustNew(t, 2, 3), mustNew(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(mustNew(t, 2, 3), mustNew(t, 3, 5)))
	require.NoError(t, matrix.ValidateMulCompatible(mustNew(t, 2, 0), mustNew(t, 0, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(mustNew(t, 2, 3), mustNew(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, mustNew(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateColumnVector accepts exactly one column.
func TestValidateColumnVector(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateColumnVector(mustNew(t, 4, 1)))
	require.NoError(t, matrix.ValidateColumnVector(mustNew(t, 0, 1)))
	err := matrix.ValidateColumnVector(mustNew(t, 1, 4))
	require.ErrorIs(t, err, matrix.ErrNotColumnVector)
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)
	require.ErrorIs(t, matrix.ValidateColumnVector(nil), matrix.ErrNilMatrix)
}
