// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/viterin/vek"

	"github.com/katalvlaran/powerpca/matrix"
)

// Deflate removes the component along the unit vector v from the square matrix m.
// Implementation:
//   - For every column k: coef = dot(v, m[:,k]); column k −= coef·v.
//
// For an eigenvector v of a symmetric m with eigenvalue λ, coef = λ·v_k, so the
// result equals m − λ·v·vᵀ: symmetric up to rounding, with the λ direction
// sent to zero and every other eigenpair untouched.
//
// Errors:
//   - ErrDimensionMismatch (nil/non-square m, len(v) != order of m).
//
// Complexity:
//   - Time O(n²), Space O(n²). m is not mutated.
func Deflate(m matrix.Matrix, v []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, pcaErrorf(opDeflate, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if err := matrix.ValidateVecLen(v, m.Rows()); err != nil {
		return nil, pcaErrorf(opDeflate, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, pcaErrorf(opDeflate, err)
	}

	n := src.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, pcaErrorf(opDeflate, err)
	}
	var (
		col  []float64
		coef float64
	)
	for k := 0; k < n; k++ {
		if col, err = src.Col(k); err != nil {
			return nil, pcaErrorf(opDeflate, err)
		}
		coef = vek.Dot(v, col)
		for i := range col {
			col[i] -= coef * v[i]
		}
		if err = out.SetCol(k, col); err != nil {
			return nil, pcaErrorf(opDeflate, err)
		}
	}

	return out, nil
}

// RayleighQuotient returns vᵀ·m·v / vᵀ·v, the eigenvalue estimate for v.
// The zero vector yields 0.
func RayleighQuotient(m matrix.Matrix, v []float64) (float64, error) {
	mv, err := matrix.MatVec(m, v)
	if err != nil {
		return 0, fmt.Errorf("RayleighQuotient: %w: %w", ErrDimensionMismatch, err)
	}
	vv := vek.Dot(v, v)
	if vv == 0 {
		return 0, nil
	}

	return vek.Dot(v, mv) / vv, nil
}
