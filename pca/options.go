// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the power-iteration solver.
// This file defines:
//   - documented defaults (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// No global state: every Solver carries its own resolved options, so tests can
// force edge cases (e.g. non-convergence) without touching package variables.
package pca

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence tolerance on ‖v_k+1 − v_k‖.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps matrix-vector multiplications per component.
	DefaultMaxIterations = 1000

	// DefaultDeflationThreshold: once max |covariance entry| drops below this
	// value the remaining components are treated as zero vectors.
	DefaultDeflationThreshold = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "pca: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "pca: WithMaxIterations: n must be > 0"
	panicThresholdInvalid = "pca: WithDeflationThreshold: threshold must be finite and >= 0"
)

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error), never on data-dependent conditions.
type Option func(*options)

type options struct {
	tolerance          float64  // > 0
	maxIterations      int      // > 0
	deflationThreshold float64  // >= 0
	observer           Observer // never nil after gatherOptions
}

func defaultOptions() options {
	return options{
		tolerance:          DefaultTolerance,
		maxIterations:      DefaultMaxIterations,
		deflationThreshold: DefaultDeflationThreshold,
		observer:           NopObserver{},
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithTolerance sets the convergence tolerance (default 1e-4).
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithMaxIterations sets the per-component iteration cap (default 1000).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIterations = n }
}

// WithDeflationThreshold sets the negligible-covariance cutoff (default 1e-10).
// Zero keeps extracting until every column is filled.
func WithDeflationThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.deflationThreshold = threshold }
}

// WithObserver installs a progress hook; nil restores the no-op observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs == nil {
			obs = NopObserver{}
		}
		o.observer = obs
	}
}
