// SPDX-License-Identifier: MIT

package pca_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powerpca/pca"
)

func TestCovariance_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := pca.Covariance(nil)
	require.ErrorIs(t, err, pca.ErrInvalidInput)

	_, err = pca.Covariance(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, pca.ErrInvalidInput)
}

func TestCovariance_TwoRowsOneColumn(t *testing.T) {
	t.Parallel()

	C, err := pca.Covariance(mustRows(t, [][]float64{{1}, {4}}))
	require.NoError(t, err)
	require.Equal(t, 1, C.Rows())
	v, _ := C.At(0, 0)
	require.InDelta(t, 4.5, v, 1e-12)
}

func TestCovariance_EqualVarianceScenario(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{2, 0}, {0, 2}, {-2, 0}, {0, -2}})
	C, err := pca.Covariance(X)
	require.NoError(t, err)

	// Σx² = 8 per column over R−1 = 3.
	want := [][]float64{{8.0 / 3, 0}, {0, 8.0 / 3}}
	for i := range want {
		for j := range want[i] {
			v, _ := C.At(i, j)
			require.InDelta(t, want[i][j], v, 1e-12)
		}
	}
}

func TestCovariance_RecentersInput(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 10}, {2, 20}, {3, 30}})
	shifted := mustRows(t, [][]float64{{101, 1010}, {102, 1020}, {103, 1030}})

	a, err := pca.Covariance(X)
	require.NoError(t, err)
	b, err := pca.Covariance(shifted)
	require.NoError(t, err)
	ar, br := a.RawRows(), b.RawRows()
	for i := range ar {
		require.InDeltaSlice(t, ar[i], br[i], 1e-9)
	}
}
