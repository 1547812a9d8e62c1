// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/powerpca/matrix"
)

// Covariance builds the C×C sample covariance of the columns of X.
// X is re-centered by its column means, then Cov = (Xcᵀ Xc)/(R−1).
//
// Errors:
//   - ErrInvalidInput when X is nil, has fewer than two rows, or has no columns.
//
// Complexity:
//   - Time O(R·C²), Space O(C²). Pure: X is not mutated.
func Covariance(X matrix.Matrix) (*matrix.Dense, error) {
	if X == nil {
		return nil, pcaErrorf(opCovariance, fmt.Errorf("nil data: %w", ErrInvalidInput))
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, pcaErrorf(opCovariance, fmt.Errorf("data has no columns: %w", ErrInvalidInput))
	}
	if r < 2 {
		return nil, pcaErrorf(opCovariance, fmt.Errorf("need at least 2 rows, got %d: %w", r, ErrInvalidInput))
	}

	cov, _, err := matrix.Covariance(X)
	if err != nil {
		// Remaining failures are data defects (NaN/Inf after centering, broken At).
		return nil, pcaErrorf(opCovariance, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	return cov.(*matrix.Dense), nil
}
