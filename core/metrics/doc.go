// Package metrics exports synchronization metrics for Prometheus.
//
// The Recorder owns a private registry so tests and multiple recorders never
// collide with the global default registry. The HTTP server mounts Handler at
// /metrics.
package metrics
