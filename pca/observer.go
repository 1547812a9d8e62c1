// SPDX-License-Identifier: MIT

package pca

// ComponentEvent describes one extracted basis column.
type ComponentEvent struct {
	Index        int     // column index in the basis
	Iterations   int     // power iterations spent on this component
	Residual     float64 // final ‖v_k+1 − v_k‖
	Eigenvalue   float64 // Rayleigh quotient vᵀMv before deflation
	RemainingMax float64 // max |entry| of the covariance after deflation
}

// Observer receives progress notifications from BuildBasis.
// Callbacks run synchronously on the caller's goroutine and must not retain
// the solver. Implementations must be cheap; they sit inside the build loop.
type Observer interface {
	// OnComponent is called after each component has been found and deflated.
	OnComponent(ev ComponentEvent)
	// OnPadding is called once when columns [from, to) are filled with zeros.
	OnPadding(from, to int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnComponent(ComponentEvent) {}
func (NopObserver) OnPadding(int, int)         {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) OnComponent(ev ComponentEvent) {
	for _, o := range m {
		if o != nil {
			o.OnComponent(ev)
		}
	}
}

func (m MultiObserver) OnPadding(from, to int) {
	for _, o := range m {
		if o != nil {
			o.OnPadding(from, to)
		}
	}
}
