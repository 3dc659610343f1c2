package observability

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerCollector_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSamplerCollector(reg)
	require.NoError(t, err)

	collector.Record("rising", true, 5, 2)
	collector.Record("rising", true, 3, 1)

	assert.Equal(t, float64(3), testutil.ToFloat64(collector.Samples.WithLabelValues("rising", "true")))
	assert.Equal(t, float64(8), testutil.ToFloat64(collector.EdgesScanned.WithLabelValues("rising")))
}

func TestSamplerCollector_Begin(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSamplerCollector(reg)
	require.NoError(t, err)

	end := collector.Begin()
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.Requests))

	end(errors.New("boom"))
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.Requests))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.Durations, "meshtrace_sample_duration_seconds"))
}

func TestSamplerCollector_DurationOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSamplerCollector(reg)
	require.NoError(t, err)

	collector.Begin()(nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	var family *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "meshtrace_sample_duration_seconds" {
			family = f
		}
	}

	require.NotNil(t, family)
	require.Len(t, family.GetMetric(), 1)

	metric := family.GetMetric()[0]
	assert.Equal(t, uint64(1), metric.GetHistogram().GetSampleCount())
	require.Len(t, metric.GetLabel(), 1)
	assert.Equal(t, "ok", metric.GetLabel()[0].GetValue())
}

func TestNewSamplerCollector_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSamplerCollector(reg)
	require.NoError(t, err)

	second, err := NewSamplerCollector(reg)
	require.NoError(t, err)

	assert.Same(t, first.Samples, second.Samples)
}

func TestSamplerCollector_NilIsNoop(t *testing.T) {
	var collector *SamplerCollector

	assert.NotPanics(t, func() {
		collector.Record("rising", false, 1, 1)
		collector.Begin()(nil)
	})
}

func TestSamplerCollector_WriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSamplerCollector(reg)
	require.NoError(t, err)

	collector.Record("both", false, 4, 4)

	path := filepath.Join(t.TempDir(), "meshtrace.prom")
	require.NoError(t, collector.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `meshtrace_samples_total{edge="both",gated="false"} 4`)
}

func TestInitTracing_WritesSpans(t *testing.T) {
	var buf bytes.Buffer

	shutdown, err := InitTracing(context.Background(), TracingConfig{
		Enabled:     true,
		ServiceName: "meshtrace-test",
		SampleRatio: 1,
		Writer:      &buf,
	})
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "sample")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"sample"`)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{})
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "sample")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	ShutdownWithTimeout(context.Background(), shutdown)
}
