// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/powerpca/matrix"
	"github.com/katalvlaran/powerpca/pca"
)

// mustRows builds a *Dense from rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// householder returns H = I − 2uuᵀ/uᵀu, a symmetric orthogonal matrix whose
// columns make a known orthonormal basis.
func householder(u []float64) [][]float64 {
	n := len(u)
	uu := 0.0
	for _, x := range u {
		uu += x * x
	}
	h := make([][]float64, n)
	for i := range h {
		h[i] = make([]float64, n)
		for j := range h[i] {
			h[i][j] = -2 * u[i] * u[j] / uu
		}
		h[i][i] += 1
	}

	return h
}

// spectral returns Q·diag(lambdas)·Qᵀ for Q = householder(u).
func spectral(t *testing.T, u, lambdas []float64) (*matrix.Dense, [][]float64) {
	t.Helper()
	q := householder(u)
	n := len(u)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			for k := 0; k < n; k++ {
				rows[i][j] += q[i][k] * lambdas[k] * q[j][k]
			}
		}
	}

	return mustRows(t, rows), q
}

// spreadData returns 2·len(scales) rows ±scales[i]·q_i. The rows are mean
// zero and their covariance has eigenvectors q_i with eigenvalues
// 2·scales[i]² / (R−1).
func spreadData(t *testing.T, q [][]float64, scales []float64) *matrix.Dense {
	t.Helper()
	n := len(q)
	rows := make([][]float64, 0, 2*len(scales))
	for i, s := range scales {
		plus := make([]float64, n)
		minus := make([]float64, n)
		for j := 0; j < n; j++ {
			plus[j] = s * q[j][i] // column i of q
			minus[j] = -plus[j]
		}
		rows = append(rows, plus, minus)
	}

	return mustRows(t, rows)
}

// column returns column k of the basis.
func column(t *testing.T, b *pca.Basis, k int) []float64 {
	t.Helper()
	v, err := b.Column(k)
	require.NoError(t, err)

	return v
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm(v []float64) float64 { return math.Sqrt(dot(v, v)) }

// symEigen returns gonum's eigenvalues (descending) and matching eigenvectors.
func symEigen(t *testing.T, m matrix.Matrix) ([]float64, [][]float64) {
	t.Helper()
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			sym.SetSym(i, j, v)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, true))
	asc := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	values := make([]float64, n)
	vectors := make([][]float64, n)
	for k := 0; k < n; k++ {
		src := n - 1 - k
		values[k] = asc[src]
		vectors[k] = mat.Col(nil, src, &vecs)
	}

	return values, vectors
}

// recorder is an Observer that keeps every notification.
type recorder struct {
	events  []pca.ComponentEvent
	padding [][2]int
}

func (r *recorder) OnComponent(ev pca.ComponentEvent) { r.events = append(r.events, ev) }
func (r *recorder) OnPadding(from, to int)           { r.padding = append(r.padding, [2]int{from, to}) }
