// Package metrics provides observability hooks for signature rendering.
//
// It follows the Null Object pattern: components receive a Recorder through
// dependency injection and default to NoopRecorder, so no call site needs nil
// checks and the overhead is zero when metrics are disabled. A Prometheus-backed
// implementation can be swapped in without touching call sites:
//
//	recorder := metrics.NewPrometheusRecorder(registry)
//	provider := signature.New(signature.WithRecorder(recorder))
package metrics
