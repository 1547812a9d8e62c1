// SPDX-License-Identifier: MIT

// Package telemetry adapts pca progress callbacks to zerolog and Prometheus.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/powerpca/pca"
)

// NewLogger returns a human-readable zerolog logger writing to w at level
// (trace, debug, info, warn, error; empty means info).
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
		}
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// LogObserver writes one debug event per extracted component.
type LogObserver struct {
	Log zerolog.Logger
}

var _ pca.Observer = LogObserver{}

// OnComponent implements pca.Observer.
func (o LogObserver) OnComponent(ev pca.ComponentEvent) {
	o.Log.Debug().
		Int("component", ev.Index).
		Int("iterations", ev.Iterations).
		Float64("residual", ev.Residual).
		Float64("eigenvalue", ev.Eigenvalue).
		Float64("remaining_max", ev.RemainingMax).
		Msg("vector found")
}

// OnPadding implements pca.Observer.
func (o LogObserver) OnPadding(from, to int) {
	o.Log.Debug().Int("from", from).Int("to", to).Msg("remaining covariance negligible, padding with zero vectors")
}
