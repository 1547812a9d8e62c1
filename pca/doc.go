// Package pca computes a principal-component basis with power iteration and
// deflation, and projects data onto it.
//
// Pipeline:
//
//	covar := Covariance(X)                  // C×C sample covariance, re-centered
//	for found < C && max|covar| ≥ threshold {
//	    v := Dominant(covar)                // unit eigenvector of largest |λ|
//	    basis[:, found] = v
//	    covar = Deflate(covar, v)           // remove v's contribution
//	}
//	// remaining columns stay zero
//	Y := Project(X, basis)                  // Y[r,k] = <X[r,:], basis[:,k]>
//
// Tunables (tolerance, iteration cap, deflation threshold) are functional
// options on a Solver; there is no package-level mutable state. A Solver that
// runs out of iterations returns *ConvergenceError, which matches
// ErrConvergence; the basis build is abandoned, not patched.
//
// Model wraps a basis in a two-state machine (Uninitialized, Ready) so
// projection and persistence fail with ErrUninitializedBasis until a basis
// has been fitted or loaded.
//
// Sign of each component is arbitrary. Everything runs on the calling
// goroutine; column k+1 depends on the matrix deflated by column k.
package pca
