package metrics

// Config holds configuration for session metrics.
type Config struct {
	// Textfile is where the metrics are written after a run, in the Prometheus
	// text format (node_exporter textfile collector). Empty disables it.
	Textfile string `mapstructure:"textfile" default:""`
}
