// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/powerpca/matrix"
)

const epsTight = 1e-12

// ------------------------------
// CenterColumns
// ------------------------------

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	// Column averages of Y ≈ 0.
	for j := 0; j < 3; j++ {
		sum := MustAt(t, Yf, 0, j) + MustAt(t, Yf, 1, j)
		require.InDelta(t, 0, sum/2, epsTight, "col %d", j)
	}
	// Input untouched.
	require.Equal(t, 1.0, MustAt(t, X, 0, 0))
}

// ------------------------------
// Covariance
// ------------------------------

func TestCovariance_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	one := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	_, _, err = matrix.Covariance(one)
	require.ErrorIs(t, err, matrix.ErrTooFewRows)
}

func TestCovariance_TwoByOneIsSampleVariance(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 1, []float64{1, 3})
	C, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.Equal(t, 1, C.Rows())
	require.Equal(t, 1, C.Cols())
	require.InDelta(t, 2.0, MustAt(t, C, 0, 0), epsTight) // ((1-2)² + (3-2)²) / 1
	sliceClose(t, means, []float64{2}, 0, 0)
}

func TestCovariance_MatchesGonum(t *testing.T) {
	t.Parallel()

	data := []float64{
		2.5, 2.4, 0.5,
		0.5, 0.7, 1.1,
		2.2, 2.9, 0.3,
		1.9, 2.2, 0.8,
		3.1, 3.0, 0.1,
		2.3, 2.7, 0.9,
	}
	X := NewFilledDense(t, 6, 3, data)

	got, _, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(got, epsTight))

	var want mat.SymDense
	stat.CovarianceMatrix(&want, mat.NewDense(6, 3, data), nil)
	for i := 0; i < 3; i++ {
		require.GreaterOrEqual(t, MustAt(t, got, i, i), 0.0)
		for j := 0; j < 3; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestCovariance_ConstantColumnIsZero(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{5, 1, 5, 2, 5, 3})
	C, _, err := matrix.Covariance(hide{X})
	require.NoError(t, err)
	require.Zero(t, MustAt(t, C, 0, 0))
	require.Zero(t, MustAt(t, C, 0, 1))
	require.InDelta(t, 1.0, MustAt(t, C, 1, 1), epsTight)
	require.False(t, math.IsNaN(MustAt(t, C, 1, 0)))
}
