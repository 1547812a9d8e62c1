// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics (centering, sample covariance) as deterministic
//     compositions over the canonical kernels (Transpose/Mul/Scale).
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "fmt"

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil, at least one row and one column).
//   - Stage 2: Accumulate column sums in a deterministic pass (Dense fast-path; At fallback).
//   - Stage 3: Build the centered copy Xc[i,j] = X[i,j] − mean[j].
//
// Returns:
//   - *Dense: centered copy (r×c); X is not mutated.
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (r==0 or c==0), wrapped At errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xd, err := AsDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := Xd.r, Xd.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += Xd.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	Xc := Xd.Clone().(*Dense)
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Xc.data[base+j] -= means[j]
		}
	}

	return Xc, means, nil
}

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X; require c>0 and r>=2 (sample denominator).
//   - Stage 2: Center columns once (CenterColumns).
//   - Stage 3: Cov = Scale(Mul(Transpose(Xc), Xc), 1/(r-1)).
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances (≥ 0).
//   - Re-centers even already-centered data, so callers need not pre-center.
//
// Returns:
//   - Matrix: Covariance (c×c), dynamic type *Dense.
//   - []float64: column means used for centering.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (c==0), ErrTooFewRows (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, nil, matrixErrorf(opCovariance, ErrInvalidDimensions)
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, fmt.Errorf("got %d: %w", r, ErrTooFewRows))
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
