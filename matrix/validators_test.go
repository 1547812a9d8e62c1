// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powerpca/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare checks nil and non-square detection.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(NewFilledDense(t, 1, 2, []float64{1, 2})), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(NewFilledDense(t, 1, 1, []float64{1})))
}

// TestValidateSymmetric checks tolerance handling and asymmetry detection.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	S := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-9, 1})
	require.NoError(t, matrix.ValidateSymmetric(S, 1e-8))
	require.ErrorIs(t, matrix.ValidateSymmetric(S, 1e-12), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(S, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(NewFilledDense(t, 1, 2, []float64{1, 2}), 0), matrix.ErrNonSquare)
}

// TestValidateVecLen checks nil and length mismatches.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
}
