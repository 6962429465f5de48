package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "inventory"

// Metrics holds the counters of a reconciler run on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// ScansTotal counts operator tokens by outcome (found, duplicate, foreign_added, ...).
	ScansTotal *prometheus.CounterVec
	// FilesTotal counts processed files by status (ok, failed).
	FilesTotal *prometheus.CounterVec
	// ReportItems holds the size of each report category of the last run of a file.
	ReportItems *prometheus.GaugeVec
	// DroppedLines counts input lines discarded at load.
	DroppedLines prometheus.Counter
}

// New creates and registers the reconciler metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ScansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "scans_total",
				Help:      "Operator tokens handled, by outcome",
			},
			[]string{"outcome"},
		),
		FilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_total",
				Help:      "Inventory files processed, by status",
			},
			[]string{"status"},
		),
		ReportItems: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "report",
				Name:      "items",
				Help:      "Records per report category after the last session of a file",
			},
			[]string{"file", "category"},
		),
		DroppedLines: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dropped_lines_total",
				Help:      "Input lines without a recognizable date",
			},
		),
	}
	m.registry.MustRegister(m.ScansTotal, m.FilesTotal, m.ReportItems, m.DroppedLines)
	return m
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
