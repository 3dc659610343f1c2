// Package observability carries the Prometheus metrics and OpenTelemetry
// tracing of the sampler.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SamplerCollector bundles the Prometheus metrics recorded per sample request.
type SamplerCollector struct {
	gatherer prometheus.Gatherer

	Samples      *prometheus.CounterVec
	EdgesScanned *prometheus.CounterVec
	Durations    *prometheus.HistogramVec
	Requests     prometheus.Gauge
}

// NewSamplerCollector registers the sampler metrics against reg, defaulting to
// the global registry when nil. Registering twice reuses the first collectors.
func NewSamplerCollector(reg prometheus.Registerer) (*SamplerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	samples, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshtrace_samples_total",
		Help: "Samples emitted by the trace sampler, labeled by clock edge mode and gating.",
	}, []string{"edge", "gated"}), "meshtrace_samples_total")
	if err != nil {
		return nil, err
	}

	edges, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshtrace_edges_scanned_total",
		Help: "Clock edges inspected by the trace sampler, labeled by clock edge mode.",
	}, []string{"edge"}), "meshtrace_edges_scanned_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meshtrace_sample_duration_seconds",
		Help:    "Sample request latency in seconds, labeled by outcome.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"outcome"}), "meshtrace_sample_duration_seconds")
	if err != nil {
		return nil, err
	}

	requests, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "meshtrace_sample_requests_in_flight",
		Help: "Sample requests currently running.",
	}), "meshtrace_sample_requests_in_flight")
	if err != nil {
		return nil, err
	}

	return &SamplerCollector{
		gatherer:     gatherer,
		Samples:      samples,
		EdgesScanned: edges,
		Durations:    durations,
		Requests:     requests,
	}, nil
}

// Begin marks a request as in flight and returns the function ending it.
func (c *SamplerCollector) Begin() func(err error) {
	if c == nil {
		return func(error) {}
	}

	start := time.Now()
	c.Requests.Inc()

	return func(err error) {
		c.Requests.Dec()

		outcome := "ok"
		if err != nil {
			outcome = "error"
		}

		c.Durations.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}
}

// Record adds the counts of one finished request.
func (c *SamplerCollector) Record(edge string, gated bool, edges, samples int) {
	if c == nil {
		return
	}

	c.EdgesScanned.WithLabelValues(edge).Add(float64(edges))
	c.Samples.WithLabelValues(edge, fmt.Sprint(gated)).Add(float64(samples))
}

// WriteTextfile dumps the gathered metrics in the text exposition format.
func (c *SamplerCollector) WriteTextfile(path string) error {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}

	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}

			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}

		return nil, err
	}

	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}

			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}

		return nil, err
	}

	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}

			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}

		return nil, err
	}

	return gauge, nil
}
