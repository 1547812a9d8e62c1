// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/viterin/vek"

	"github.com/katalvlaran/powerpca/matrix"
)

// Project maps every row of X onto the columns of basis:
// out[r,k] = dot(X[r,:], basis[:,k]).
//
// Inputs:
//   - X: R×C data (raw or pre-centered, at the caller's choice).
//   - basis: C×K basis matrix (K == C for a full basis, K < C when reduced).
//
// Returns:
//   - *matrix.Dense of shape R×K. X and basis are not mutated; repeated calls
//     return identical results.
//
// Errors:
//   - ErrInvalidInput for nil operands.
//   - ErrDimensionMismatch when X.Cols() != basis.Rows().
//
// Complexity:
//   - Time O(R·C·K), Space O(R·K + C·K).
func Project(X, basis matrix.Matrix) (*matrix.Dense, error) {
	if X == nil || basis == nil {
		return nil, pcaErrorf(opProject, ErrInvalidInput)
	}
	if X.Cols() != basis.Rows() {
		return nil, pcaErrorf(opProject, fmt.Errorf("data has %d columns, basis has %d rows: %w",
			X.Cols(), basis.Rows(), ErrDimensionMismatch))
	}

	data, err := matrix.AsDense(X)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}
	// Rows of Bt are the basis columns, so each output cell is one contiguous dot product.
	bt, err := matrix.Transpose(basis)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}
	btd := bt.(*matrix.Dense)

	rows, k := data.Rows(), btd.Rows()
	out, err := matrix.NewDense(rows, k)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}
	columns := btd.RawRows()
	var row []float64
	for r := 0; r < rows; r++ {
		row, _ = data.Row(r)
		for j := 0; j < k; j++ {
			if err = out.Set(r, j, vek.Dot(row, columns[j])); err != nil {
				return nil, pcaErrorf(opProject, err)
			}
		}
	}

	return out, nil
}

// Project maps X onto the full basis.
func (b *Basis) Project(X matrix.Matrix) (*matrix.Dense, error) {
	return Project(X, b.vectors)
}
