// Package metrics exposes Prometheus counters for counting sessions.
//
// The reconciler is a short-lived CLI, so metrics are not served over HTTP.
// They are collected on a private registry and written once per run to a
// text file that a node_exporter textfile collector can pick up.
package metrics
