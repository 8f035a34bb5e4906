package metrics

import "time"

// Recorder defines observability hooks for the rendering pipeline. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe to call
// concurrently.
type Recorder interface {
	ObserveRenderDuration(kind string, d time.Duration)
	IncSignaturesRendered(kind string, count int)
	IncRenderErrors(kind string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncSignaturesRendered(string, int)           {}
func (NoopRecorder) IncRenderErrors(string)                      {}
