// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the powerpca CLI and
// turns it into solver options.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/powerpca/pca"
)

// ErrInvalidConfig reports a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the on-disk configuration. Fields left out of the YAML keep
// their Default() values.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
}

// SolverConfig carries the power-iteration tunables.
type SolverConfig struct {
	ConvergenceTolerance float64 `yaml:"convergence_tolerance"`
	MaxIterations        int     `yaml:"max_iterations"`
	DeflationThreshold   float64 `yaml:"deflation_threshold"`
}

// OutputConfig names the artifacts written by a run.
type OutputConfig struct {
	Basis      string `yaml:"basis"`
	Projected  string `yaml:"projected"`
	Components int    `yaml:"components"` // 0 = keep every basis column
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			ConvergenceTolerance: pca.DefaultTolerance,
			MaxIterations:        pca.DefaultMaxIterations,
			DeflationThreshold:   pca.DefaultDeflationThreshold,
		},
		Output: OutputConfig{
			Basis:     "basis.csv",
			Projected: "projected.csv",
		},
	}
}

// Load reads path and decodes it over Default(). Unknown keys are rejected;
// an empty file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field; all violations are reported together.
func (c Config) Validate() error {
	var errs []error
	s := c.Solver
	if !(s.ConvergenceTolerance > 0) || math.IsInf(s.ConvergenceTolerance, 0) {
		errs = append(errs, fmt.Errorf("solver.convergence_tolerance %g must be finite and > 0: %w",
			s.ConvergenceTolerance, ErrInvalidConfig))
	}
	if s.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("solver.max_iterations %d must be > 0: %w", s.MaxIterations, ErrInvalidConfig))
	}
	if math.IsNaN(s.DeflationThreshold) || math.IsInf(s.DeflationThreshold, 0) || s.DeflationThreshold < 0 {
		errs = append(errs, fmt.Errorf("solver.deflation_threshold %g must be finite and >= 0: %w",
			s.DeflationThreshold, ErrInvalidConfig))
	}
	if c.Output.Basis == "" {
		errs = append(errs, fmt.Errorf("output.basis must not be empty: %w", ErrInvalidConfig))
	}
	if c.Output.Projected == "" {
		errs = append(errs, fmt.Errorf("output.projected must not be empty: %w", ErrInvalidConfig))
	}
	if c.Output.Components < 0 {
		errs = append(errs, fmt.Errorf("output.components %d must be >= 0: %w", c.Output.Components, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Options converts the solver section into pca options. Call Validate first;
// the option constructors panic on out-of-range values.
func (c Config) Options() []pca.Option {
	return []pca.Option{
		pca.WithTolerance(c.Solver.ConvergenceTolerance),
		pca.WithMaxIterations(c.Solver.MaxIterations),
		pca.WithDeflationThreshold(c.Solver.DeflationThreshold),
	}
}
