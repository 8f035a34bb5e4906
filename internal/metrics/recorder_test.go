package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveRenderDuration("class", time.Millisecond)
	r.IncSignaturesRendered("class", 2)
	r.IncRenderErrors("function")
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.IncSignaturesRendered("class", 3)
	r.IncSignaturesRendered("class", 1)
	r.IncRenderErrors("function")
	r.ObserveRenderDuration("class", 5*time.Millisecond)

	require.Equal(t, 4.0, testutil.ToFloat64(r.signaturesRendered.WithLabelValues("class")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.renderErrors.WithLabelValues("function")))

	count, err := testutil.GatherAndCount(reg,
		"sigrender_signatures_rendered_total",
		"sigrender_render_errors_total",
		"sigrender_render_duration_seconds",
	)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestPrometheusRecorderNilRegistry(t *testing.T) {
	require.NotPanics(t, func() {
		NewPrometheusRecorder(nil)
	})
}
