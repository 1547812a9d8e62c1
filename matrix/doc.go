// Package matrix offers a small dense linear-algebra toolkit for numeric
// pipelines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a finite-only numeric policy.
//   - Canonical kernels: Mul, Transpose, Scale, MatVec, MaxAbs.
//   - Column statistics: CenterColumns and the sample Covariance
//     (Xcᵀ Xc)/(r-1).
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateSymmetric) shared by every kernel.
//
// All loops run in a fixed i→j order, so results are bit-for-bit
// reproducible for identical inputs. Passing *Dense operands unlocks flat
// slice fast-paths; any other Matrix implementation goes through At/Set.
package matrix
