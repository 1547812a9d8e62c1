// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Extract the dominant eigenvector of a symmetric matrix by power iteration:
//     v ← M·v / ‖M·v‖ until ‖v_k+1 − v_k‖ ≤ tolerance or the iteration cap is hit.
//
// Determinism:
//   - Fixed seed sequence and update rule; identical M gives identical v and
//     iteration count. The sign of v is whatever the iteration lands on.

package pca

import (
	"fmt"
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/powerpca/matrix"
)

// Solver runs power iteration and deflation with a fixed configuration.
// A Solver is immutable after NewSolver and safe for concurrent use.
type Solver struct {
	opts options
}

// NewSolver resolves opts over the defaults.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// Tolerance returns the configured convergence tolerance.
func (s *Solver) Tolerance() float64 { return s.opts.tolerance }

// MaxIterations returns the configured iteration cap.
func (s *Solver) MaxIterations() int { return s.opts.maxIterations }

// DeflationThreshold returns the configured negligible-covariance cutoff.
func (s *Solver) DeflationThreshold() float64 { return s.opts.deflationThreshold }

// eigenResult is one converged power iteration.
type eigenResult struct {
	vector     []float64
	iterations int
	residual   float64
}

// DominantEigenvector runs power iteration on m with default options.
func DominantEigenvector(m matrix.Matrix) ([]float64, error) {
	return NewSolver().Dominant(m)
}

// Dominant returns a unit vector approximating the eigenvector of the
// largest-magnitude eigenvalue of the symmetric matrix m.
// Implementation:
//   - Stage 1: validate m square; pick the seed (see seed).
//   - Stage 2: repeat v' = m·v, normalize when ‖v'‖ ≠ 0, residual = ‖v' − v‖.
//   - Stage 3: stop at residual ≤ tolerance or iterations == cap.
//
// Returns:
//   - []float64 of length n, unit norm; the zero vector when m annihilates every seed.
//
// Errors:
//   - ErrDimensionMismatch (nil or non-square m).
//   - *ConvergenceError (matches ErrConvergence) when the cap is reached first.
//     There is no fallback vector.
//
// Complexity:
//   - Time O(iterations·n²), Space O(n).
func (s *Solver) Dominant(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, pcaErrorf(opDominant, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	a, err := matrix.AsDense(m)
	if err != nil {
		return nil, pcaErrorf(opDominant, err)
	}
	res, err := s.dominant(a)
	if err != nil {
		return nil, pcaErrorf(opDominant, err)
	}

	return res.vector, nil
}

func (s *Solver) dominant(a *matrix.Dense) (eigenResult, error) {
	n := a.Rows()
	v, ok, err := s.seed(a)
	if err != nil {
		return eigenResult{}, err
	}
	if !ok {
		// a maps every seed to (numerically) zero: degenerate zero component.
		return eigenResult{vector: make([]float64, n)}, nil
	}

	var (
		iter     int
		residual = math.Inf(1)
		next     []float64
	)
	for residual > s.opts.tolerance && iter < s.opts.maxIterations {
		if next, err = matrix.MatVec(a, v); err != nil {
			return eigenResult{}, err
		}
		normalize(next)
		residual = vek.Distance(next, v)
		v = next
		iter++
	}
	if residual > s.opts.tolerance {
		return eigenResult{}, &ConvergenceError{
			Iterations: iter,
			Residual:   residual,
			Tolerance:  s.opts.tolerance,
		}
	}

	return eigenResult{vector: v, iterations: iter, residual: residual}, nil
}

// seed returns the normalized starting vector: the all-ones vector first,
// then e_0, e_1, … when a·seed falls below the deflation threshold. After
// deflation the all-ones vector can lie in the null space of the remaining
// matrix (equal-variance data), and iterating from it would converge to the
// zero vector while real covariance is still left. ok is false when every
// seed collapses.
func (s *Solver) seed(a *matrix.Dense) ([]float64, bool, error) {
	n := a.Rows()
	ones := vek.Ones(n)
	normalize(ones)

	probe, err := matrix.MatVec(a, ones)
	if err != nil {
		return nil, false, err
	}
	if vek.Norm(probe) > s.opts.deflationThreshold {
		return ones, true, nil
	}

	for k := 0; k < n; k++ {
		col, err := a.Col(k) // a·e_k; a is symmetric so column == row
		if err != nil {
			return nil, false, err
		}
		if vek.Norm(col) > s.opts.deflationThreshold {
			e := make([]float64, n)
			e[k] = 1

			return e, true, nil
		}
	}

	return nil, false, nil
}

// normalize scales v to unit Euclidean norm in place; the zero vector is left as is.
func normalize(v []float64) {
	if norm := vek.Norm(v); norm != 0 {
		vek.DivNumber_Inplace(v, norm)
	}
}
