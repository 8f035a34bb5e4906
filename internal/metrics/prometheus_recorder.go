package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration     *prom.HistogramVec
	signaturesRendered *prom.CounterVec
	renderErrors       *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg. A nil
// registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sigrender",
			Name:      "render_duration_seconds",
			Help:      "Duration of signature rendering per declaration kind",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		signaturesRendered: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sigrender",
			Name:      "signatures_rendered_total",
			Help:      "Rendered signature blocks by declaration kind",
		}, []string{"kind"}),
		renderErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sigrender",
			Name:      "render_errors_total",
			Help:      "Rendering failures by declaration kind",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.renderDuration, pr.signaturesRendered, pr.renderErrors)
	return pr
}

func (pr *PrometheusRecorder) ObserveRenderDuration(kind string, d time.Duration) {
	pr.renderDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncSignaturesRendered(kind string, count int) {
	pr.signaturesRendered.WithLabelValues(kind).Add(float64(count))
}

func (pr *PrometheusRecorder) IncRenderErrors(kind string) {
	pr.renderErrors.WithLabelValues(kind).Inc()
}
