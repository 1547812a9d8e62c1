// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powerpca/pca"
)

func TestSolverDefaults(t *testing.T) {
	t.Parallel()

	s := pca.NewSolver()
	require.Equal(t, 1e-4, s.Tolerance())
	require.Equal(t, 1000, s.MaxIterations())
	require.Equal(t, 1e-10, s.DeflationThreshold())
}

func TestSolverOptions_LastWins(t *testing.T) {
	t.Parallel()

	s := pca.NewSolver(
		pca.WithTolerance(1e-6),
		pca.WithMaxIterations(50),
		pca.WithDeflationThreshold(0),
		pca.WithTolerance(1e-8),
		nil,
	)
	require.Equal(t, 1e-8, s.Tolerance())
	require.Equal(t, 50, s.MaxIterations())
	require.Zero(t, s.DeflationThreshold())
}

func TestSolverOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { pca.WithTolerance(0) })
	require.Panics(t, func() { pca.WithTolerance(-1) })
	require.Panics(t, func() { pca.WithTolerance(math.NaN()) })
	require.Panics(t, func() { pca.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { pca.WithMaxIterations(0) })
	require.Panics(t, func() { pca.WithDeflationThreshold(-1e-3) })
	require.Panics(t, func() { pca.WithDeflationThreshold(math.NaN()) })
	require.NotPanics(t, func() { pca.WithObserver(nil) })
}

func TestMultiObserver(t *testing.T) {
	t.Parallel()

	a, b := &recorder{}, &recorder{}
	obs := pca.MultiObserver{a, nil, b}
	obs.OnComponent(pca.ComponentEvent{Index: 3})
	obs.OnPadding(1, 4)

	for _, r := range []*recorder{a, b} {
		require.Len(t, r.events, 1)
		require.Equal(t, 3, r.events[0].Index)
		require.Equal(t, [][2]int{{1, 4}}, r.padding)
	}
}
