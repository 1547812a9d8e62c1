// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Orchestrate Dominant + Deflate into a full C×C basis, one column per pass,
//     padding with zero vectors once the remaining covariance is negligible.
//
// State (per BuildBasis call, never shared):
//   - covar: remaining covariance, replaced by its deflation after every column.
//   - found: number of real columns extracted so far.
//
// The loop is strictly sequential: column k+1 depends on the matrix deflated by column k.

package pca

import (
	"fmt"

	"github.com/katalvlaran/powerpca/matrix"
)

// Basis is an immutable C×K set of column vectors ordered by decreasing
// explained covariance. Columns past Found() are zero vectors.
// A Basis keeps no reference to the data it was built from.
type Basis struct {
	vectors    *matrix.Dense // C×K, column k = k-th component
	values     []float64     // Rayleigh quotient per column (0 for padding / unknown)
	iterations []int         // power iterations per column (0 for padding / loaded)
	found      int           // leading non-padding columns
}

// BuildBasis computes the basis of X with default solver options.
func BuildBasis(X matrix.Matrix) (*Basis, error) {
	return NewSolver().BuildBasis(X)
}

// BuildBasis computes the C×C principal basis of the data matrix X.
// Implementation:
//   - Stage 1: covar = Covariance(X); C = covar order.
//   - Stage 2: while found < C and max|covar| ≥ deflation threshold:
//     v = dominant(covar); column[found] = v; covar = Deflate(covar, v).
//   - Stage 3: columns [found, C) stay zero (padding).
//
// Errors:
//   - ErrInvalidInput from Covariance.
//   - *ConvergenceError (ErrConvergence) from any component; not recovered.
//
// Complexity:
//   - Time O(R·C² + C·maxIter·C²), Space O(C²).
func (s *Solver) BuildBasis(X matrix.Matrix) (*Basis, error) {
	covar, err := Covariance(X)
	if err != nil {
		return nil, pcaErrorf(opBuildBasis, err)
	}

	n := covar.Rows()
	vectors, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, pcaErrorf(opBuildBasis, err)
	}
	b := &Basis{
		vectors:    vectors,
		values:     make([]float64, n),
		iterations: make([]int, n),
	}

	var (
		peak   float64
		lambda float64
		res    eigenResult
	)
	for b.found < n {
		if peak, err = matrix.MaxAbs(covar); err != nil {
			return nil, pcaErrorf(opBuildBasis, err)
		}
		if peak < s.opts.deflationThreshold {
			break
		}
		if res, err = s.dominant(covar); err != nil {
			return nil, pcaErrorf(opBuildBasis, fmt.Errorf("component %d: %w", b.found, err))
		}
		if isZero(res.vector) {
			break
		}
		if lambda, err = RayleighQuotient(covar, res.vector); err != nil {
			return nil, pcaErrorf(opBuildBasis, err)
		}
		if err = vectors.SetCol(b.found, res.vector); err != nil {
			return nil, pcaErrorf(opBuildBasis, err)
		}
		if covar, err = Deflate(covar, res.vector); err != nil {
			return nil, pcaErrorf(opBuildBasis, err)
		}
		b.values[b.found] = lambda
		b.iterations[b.found] = res.iterations

		remaining, _ := matrix.MaxAbs(covar)
		s.opts.observer.OnComponent(ComponentEvent{
			Index:        b.found,
			Iterations:   res.iterations,
			Residual:     res.residual,
			Eigenvalue:   lambda,
			RemainingMax: remaining,
		})
		b.found++
	}
	if b.found < n {
		s.opts.observer.OnPadding(b.found, n)
	}

	return b, nil
}

// NewBasis wraps an existing C×K matrix (e.g. a persisted basis) as a Basis.
// Eigenvalues are unknown and reported as 0; Found counts the leading
// columns that are not all zero.
//
// Errors:
//   - ErrInvalidInput for a nil or non-finite matrix.
func NewBasis(m matrix.Matrix) (*Basis, error) {
	if m == nil {
		return nil, pcaErrorf(opNewBasis, ErrInvalidInput)
	}
	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, pcaErrorf(opNewBasis, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}
	vectors := src.Clone().(*matrix.Dense)
	k := vectors.Cols()

	found := 0
	for ; found < k; found++ {
		col, _ := vectors.Col(found)
		if isZero(col) {
			break
		}
	}

	return &Basis{
		vectors:    vectors,
		values:     make([]float64, k),
		iterations: make([]int, k),
		found:      found,
	}, nil
}

// Dim returns the number of variables (rows of the basis).
func (b *Basis) Dim() int { return b.vectors.Rows() }

// Len returns the number of basis columns.
func (b *Basis) Len() int { return b.vectors.Cols() }

// Found returns how many leading columns are real components (not padding).
func (b *Basis) Found() int { return b.found }

// Matrix returns a copy of the basis as a C×K matrix.
func (b *Basis) Matrix() *matrix.Dense { return b.vectors.Clone().(*matrix.Dense) }

// Column returns a copy of basis column k.
func (b *Basis) Column(k int) ([]float64, error) { return b.vectors.Col(k) }

// Values returns a copy of the per-column eigenvalue estimates.
func (b *Basis) Values() []float64 { return append([]float64(nil), b.values...) }

// Iterations returns a copy of the per-column power-iteration counts.
func (b *Basis) Iterations() []int { return append([]int(nil), b.iterations...) }

// ExplainedVarianceRatio returns values[k] / Σ values. All zeros when the
// total is not positive (loaded bases, all-constant data).
func (b *Basis) ExplainedVarianceRatio() []float64 {
	out := make([]float64, len(b.values))
	total := 0.0
	for _, v := range b.values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return out
	}
	for k, v := range b.values {
		if v > 0 {
			out[k] = v / total
		}
	}

	return out
}

// Truncate returns a new Basis holding only the first k columns (C×k), the
// reduced basis used for dimensionality reduction.
//
// Errors:
//   - ErrDimensionMismatch when k < 1 or k > Len().
func (b *Basis) Truncate(k int) (*Basis, error) {
	if k < 1 || k > b.Len() {
		return nil, pcaErrorf(opTruncate, fmt.Errorf("k=%d outside [1,%d]: %w", k, b.Len(), ErrDimensionMismatch))
	}
	n := b.Dim()
	vectors, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, pcaErrorf(opTruncate, err)
	}
	for j := 0; j < k; j++ {
		col, _ := b.vectors.Col(j)
		if err = vectors.SetCol(j, col); err != nil {
			return nil, pcaErrorf(opTruncate, err)
		}
	}

	return &Basis{
		vectors:    vectors,
		values:     append([]float64(nil), b.values[:k]...),
		iterations: append([]int(nil), b.iterations[:k]...),
		found:      min(b.found, k),
	}, nil
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}
