// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/powerpca/matrix"
	"github.com/katalvlaran/powerpca/tableio"
)

// State is the lifecycle stage of a Model.
type State int

const (
	// StateUninitialized: no basis yet; only Fit, Load and LoadBasis are valid.
	StateUninitialized State = iota
	// StateReady: a basis is held; every operation is valid.
	StateReady
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Model holds at most one basis and gates projection and persistence on it.
// A successful Fit, Load or LoadBasis moves the model to StateReady (replacing
// any previous basis); a failed one leaves it unchanged.
//
// Readers (Project, Save, Basis) may run concurrently once Ready.
type Model struct {
	mu     sync.RWMutex
	solver *Solver
	basis  *Basis
}

// NewModel returns an uninitialized model whose Fit uses a Solver built from opts.
func NewModel(opts ...Option) *Model {
	return &Model{solver: NewSolver(opts...)}
}

// State reports the current lifecycle stage.
func (m *Model) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.basis == nil {
		return StateUninitialized
	}

	return StateReady
}

// Fit builds the basis of X.
func (m *Model) Fit(X matrix.Matrix) error {
	b, err := m.solver.BuildBasis(X)
	if err != nil {
		return pcaErrorf(opModel, err)
	}
	m.set(b)

	return nil
}

// Load reads a persisted basis (square, comma-separated rows) from r.
//
// Errors:
//   - ErrInvalidInput for unreadable or malformed text.
//   - ErrDimensionMismatch when the matrix is not square.
func (m *Model) Load(r io.Reader) error {
	data, err := tableio.ReadMatrix(r)
	if err != nil {
		return pcaErrorf(opModel, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	return m.LoadBasis(data)
}

// LoadBasis adopts an in-memory C×C basis matrix (copied).
func (m *Model) LoadBasis(data matrix.Matrix) error {
	if data != nil && data.Rows() != data.Cols() {
		return pcaErrorf(opModel, fmt.Errorf("basis is %dx%d: %w", data.Rows(), data.Cols(), ErrDimensionMismatch))
	}
	b, err := NewBasis(data)
	if err != nil {
		return pcaErrorf(opModel, err)
	}
	m.set(b)

	return nil
}

// Basis returns the held basis.
func (m *Model) Basis() (*Basis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.basis == nil {
		return nil, pcaErrorf(opModel, ErrUninitializedBasis)
	}

	return m.basis, nil
}

// Project maps X onto the full basis.
func (m *Model) Project(X matrix.Matrix) (*matrix.Dense, error) {
	b, err := m.Basis()
	if err != nil {
		return nil, err
	}

	return b.Project(X)
}

// ProjectComponents maps X onto the first k basis columns (R×k result).
func (m *Model) ProjectComponents(X matrix.Matrix, k int) (*matrix.Dense, error) {
	b, err := m.Basis()
	if err != nil {
		return nil, err
	}
	reduced, err := b.Truncate(k)
	if err != nil {
		return nil, err
	}

	return reduced.Project(X)
}

// Save writes the basis to w in the persisted format.
func (m *Model) Save(w io.Writer) error {
	b, err := m.Basis()
	if err != nil {
		return err
	}
	if err = tableio.WriteMatrix(w, b.vectors); err != nil {
		return pcaErrorf(opModel, err)
	}

	return nil
}

func (m *Model) set(b *Basis) {
	m.mu.Lock()
	m.basis = b
	m.mu.Unlock()
}
