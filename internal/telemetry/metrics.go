// SPDX-License-Identifier: MIT

package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/powerpca/pca"
)

// MetricsObserver records basis-building progress in its own registry.
// The CLI has no listener; WriteTextfile dumps the registry once per run.
type MetricsObserver struct {
	registry *prometheus.Registry

	Components  prometheus.Counter
	Padded      prometheus.Counter
	Iterations  prometheus.Histogram
	Eigenvalues *prometheus.GaugeVec
}

var _ pca.Observer = (*MetricsObserver)(nil)

// NewMetricsObserver creates the collectors and registers them.
func NewMetricsObserver() *MetricsObserver {
	m := &MetricsObserver{
		registry: prometheus.NewRegistry(),
		Components: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powerpca_components_found_total",
			Help: "Principal components extracted by power iteration",
		}),
		Padded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powerpca_components_padded_total",
			Help: "Basis columns filled with zero vectors",
		}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "powerpca_power_iterations",
			Help:    "Power iterations needed per component",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		Eigenvalues: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "powerpca_component_eigenvalue",
			Help: "Rayleigh-quotient eigenvalue estimate per component",
		}, []string{"component"}),
	}
	m.registry.MustRegister(m.Components, m.Padded, m.Iterations, m.Eigenvalues)

	return m
}

// Registry exposes the underlying registry (for tests and custom exporters).
func (m *MetricsObserver) Registry() *prometheus.Registry { return m.registry }

// OnComponent implements pca.Observer.
func (m *MetricsObserver) OnComponent(ev pca.ComponentEvent) {
	m.Components.Inc()
	m.Iterations.Observe(float64(ev.Iterations))
	m.Eigenvalues.WithLabelValues(strconv.Itoa(ev.Index)).Set(ev.Eigenvalue)
}

// OnPadding implements pca.Observer.
func (m *MetricsObserver) OnPadding(from, to int) {
	m.Padded.Add(float64(to - from))
}

// WriteTextfile writes the registry in the Prometheus text format to path
// (node_exporter textfile collector layout).
func (m *MetricsObserver) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
