// SPDX-License-Identifier: MIT

package pca_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powerpca/pca"
)

func sampleData(t *testing.T) [][]float64 {
	t.Helper()

	return [][]float64{
		{2.5, 2.4, 0.5},
		{0.5, 0.7, 1.1},
		{2.2, 2.9, 0.3},
		{1.9, 2.2, 0.8},
		{3.1, 3.0, 0.1},
		{2.3, 2.7, 0.9},
	}
}

func TestModel_UninitializedRejectsUse(t *testing.T) {
	t.Parallel()

	m := pca.NewModel()
	require.Equal(t, pca.StateUninitialized, m.State())
	require.Equal(t, "uninitialized", m.State().String())

	X := mustRows(t, sampleData(t))
	_, err := m.Project(X)
	require.ErrorIs(t, err, pca.ErrUninitializedBasis)
	_, err = m.ProjectComponents(X, 1)
	require.ErrorIs(t, err, pca.ErrUninitializedBasis)
	_, err = m.Basis()
	require.ErrorIs(t, err, pca.ErrUninitializedBasis)
	require.ErrorIs(t, m.Save(&bytes.Buffer{}), pca.ErrUninitializedBasis)
}

func TestModel_FitProjectSave(t *testing.T) {
	t.Parallel()

	X := mustRows(t, sampleData(t))
	m := pca.NewModel()
	require.NoError(t, m.Fit(X))
	require.Equal(t, pca.StateReady, m.State())

	full, err := m.Project(X)
	require.NoError(t, err)
	require.Equal(t, 6, full.Rows())
	require.Equal(t, 3, full.Cols())

	reduced, err := m.ProjectComponents(X, 2)
	require.NoError(t, err)
	require.Equal(t, 2, reduced.Cols())
	fullRows, reducedRows := full.RawRows(), reduced.RawRows()
	for r := range fullRows {
		require.Equal(t, fullRows[r][:2], reducedRows[r])
	}

	_, err = m.ProjectComponents(X, 0)
	require.ErrorIs(t, err, pca.ErrDimensionMismatch)
	_, err = m.Project(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, pca.ErrDimensionMismatch)
}

func TestModel_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	X := mustRows(t, sampleData(t))
	src := pca.NewModel()
	require.NoError(t, src.Fit(X))

	var buf bytes.Buffer
	require.NoError(t, src.Save(&buf))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
	require.Len(t, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), 3)

	dst := pca.NewModel()
	require.NoError(t, dst.Load(&buf))
	require.Equal(t, pca.StateReady, dst.State())

	a, err := src.Basis()
	require.NoError(t, err)
	b, err := dst.Basis()
	require.NoError(t, err)
	require.Equal(t, a.Matrix().RawRows(), b.Matrix().RawRows())
	require.Equal(t, a.Found(), b.Found())

	pa, err := src.Project(X)
	require.NoError(t, err)
	pb, err := dst.Project(X)
	require.NoError(t, err)
	require.Equal(t, pa.RawRows(), pb.RawRows())
}

func TestModel_LoadErrorsKeepState(t *testing.T) {
	t.Parallel()

	m := pca.NewModel()
	require.ErrorIs(t, m.Load(strings.NewReader("1,2\n3,x\n")), pca.ErrInvalidInput)
	require.ErrorIs(t, m.Load(strings.NewReader("")), pca.ErrInvalidInput)
	require.ErrorIs(t, m.Load(strings.NewReader("1,0,0\n0,1,0\n")), pca.ErrDimensionMismatch)
	require.Equal(t, pca.StateUninitialized, m.State())

	require.ErrorIs(t, m.Fit(mustRows(t, [][]float64{{1, 2}})), pca.ErrInvalidInput)
	require.Equal(t, pca.StateUninitialized, m.State())

	// A failed load does not discard an existing basis.
	require.NoError(t, m.Load(strings.NewReader("1,0\n0,1\n")))
	require.ErrorIs(t, m.Load(strings.NewReader("1,2\n")), pca.ErrDimensionMismatch)
	b, err := m.Basis()
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
}

func TestModel_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	X := mustRows(t, sampleData(t))
	m := pca.NewModel()
	require.NoError(t, m.Fit(X))
	want, err := m.Project(X)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := m.Project(X)
			if err == nil && !equalRows(got.RawRows(), want.RawRows()) {
				err = pca.ErrDimensionMismatch
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func equalRows(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
