// SPDX-License-Identifier: MIT
// Package pca: sentinel error set and the typed convergence failure.
// Every exported operation returns one of these sentinels (wrapped with an
// operation tag via pcaErrorf); callers match with errors.Is / errors.As.

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports malformed or degenerate input to covariance
	// construction: fewer than two rows, zero columns, a nil matrix, or an
	// unreadable persisted basis.
	ErrInvalidInput = errors.New("pca: invalid input")

	// ErrConvergence reports that power iteration hit its iteration cap
	// before the residual dropped below the tolerance. The concrete error is
	// a *ConvergenceError.
	ErrConvergence = errors.New("pca: power iteration did not converge")

	// ErrDimensionMismatch reports incompatible shapes: data columns vs basis
	// rows in Project, a non-square matrix handed to the eigensolver, or a
	// vector whose length differs from the matrix order in Deflate.
	ErrDimensionMismatch = errors.New("pca: dimension mismatch")

	// ErrUninitializedBasis reports a Project/Save/Basis call on a Model that
	// has neither been fitted nor loaded.
	ErrUninitializedBasis = errors.New("pca: basis is not initialized")
)

// ConvergenceError carries the state of a power iteration that ran out of
// iterations. It matches ErrConvergence via errors.Is.
type ConvergenceError struct {
	Iterations int     // iterations performed (== the configured cap)
	Residual   float64 // last ‖v_k+1 − v_k‖
	Tolerance  float64 // the tolerance that was not met
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("pca: power iteration did not converge after %d iterations (residual %g > tolerance %g)",
		e.Iterations, e.Residual, e.Tolerance)
}

// Unwrap exposes ErrConvergence to errors.Is.
func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// pcaErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping.
const (
	opCovariance = "Covariance"
	opDominant   = "Dominant"
	opDeflate    = "Deflate"
	opBuildBasis = "BuildBasis"
	opProject    = "Project"
	opNewBasis   = "NewBasis"
	opTruncate   = "Truncate"
	opModel      = "Model"
)
