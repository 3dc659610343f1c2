package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"meshtrace.dev/pkg/meshtrace/internal/adapter"
	m "meshtrace.dev/pkg/meshtrace/internal/model"
	"meshtrace.dev/pkg/meshtrace/internal/observability"
)

// EdgeMode selects which clock transitions are sampled.
type EdgeMode int

// Clock edge modes.
const (
	Rising EdgeMode = iota
	Falling
	Both
)

func (e EdgeMode) String() string {
	switch e {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	case Both:
		return "both"
	}

	return fmt.Sprintf("edge(%d)", int(e))
}

// ParseEdgeMode accepts rising/posedge, falling/negedge and both.
func ParseEdgeMode(text string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "rising", "posedge":
		return Rising, nil
	case "falling", "negedge":
		return Falling, nil
	case "both", "any":
		return Both, nil
	}

	return Rising, fmt.Errorf("unknown edge mode %q", text)
}

func (e EdgeMode) matches(prev, next uint64) bool {
	switch e {
	case Rising:
		return prev == 0 && next == 1
	case Falling:
		return prev == 1 && next == 0
	case Both:
		return prev != next
	}

	return false
}

// Gate qualifies a clock edge: it passes when Valid and Ready both read 1.
// A nil Ready turns the gate into a single condition on Valid.
type Gate struct {
	Valid *m.Signal
	Ready *m.Signal
}

// SampleRequest describes one sampling of Signal at the edges of Clock.
type SampleRequest struct {
	Signal         *m.Signal
	Clock          *m.Signal
	Gates          []Gate
	Edge           EdgeMode
	QualifyByGates bool
	Window         m.Window
}

// Sampler reads edge-qualified series of signals from a trace source.
type Sampler interface {
	// Sample returns the value of req.Signal at every qualifying clock edge.
	Sample(ctx context.Context, req SampleRequest) (m.Series[uint64], error)
	// SampleAll runs reqs with at most threads requests in flight and
	// returns their series in request order.
	SampleAll(ctx context.Context, reqs []SampleRequest, threads uint) ([]m.Series[uint64], error)
}

type sampler struct {
	source  adapter.TraceSource
	metrics *observability.SamplerCollector
	tracer  trace.Tracer

	mu    sync.Mutex
	locks map[m.SignalID]chan struct{}
}

// NewSampler creates a Sampler over source. metrics may be nil.
func NewSampler(source adapter.TraceSource, metrics *observability.SamplerCollector) Sampler {
	return &sampler{
		source:  source,
		metrics: metrics,
		tracer:  observability.Tracer(),
		locks:   make(map[m.SignalID]chan struct{}),
	}
}

func (s *sampler) Sample(ctx context.Context, req SampleRequest) (series m.Series[uint64], err error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "Sample", trace.WithAttributes(
		attribute.String("meshtrace.signal", req.Signal.FullName()),
		attribute.String("meshtrace.clock", req.Clock.FullName()),
		attribute.String("meshtrace.edge", req.Edge.String()),
		attribute.Int("meshtrace.gates", len(req.Gates)),
		attribute.Bool("meshtrace.qualify", req.QualifyByGates),
	))
	end := s.metrics.Begin()

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		end(err)
		span.End()
	}()

	unlock, err := s.lock(ctx, req.Signal.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	histories, err := s.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	series, edges, err := walkEdges(ctx, req, histories)
	if err != nil {
		return nil, err
	}

	s.metrics.Record(req.Edge.String(), req.QualifyByGates, edges, len(series))
	span.SetAttributes(attribute.Int("meshtrace.edges", edges), attribute.Int("meshtrace.samples", len(series)))
	slog.Debug("sampled signal", "signal", req.Signal.FullName(), "edges", edges, "samples", len(series))

	return series, nil
}

func (s *sampler) SampleAll(ctx context.Context, reqs []SampleRequest, threads uint) ([]m.Series[uint64], error) {
	results := make([]m.Series[uint64], len(reqs))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(int(threads))
	}

	for i, req := range reqs {
		group.Go(func() error {
			series, err := s.Sample(groupCtx, req)
			if err != nil {
				return fmt.Errorf("sample %s: %w", req.Signal.FullName(), err)
			}

			results[i] = series

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// lock serializes requests on the same target signal. Waiting honours ctx.
func (s *sampler) lock(ctx context.Context, id m.SignalID) (func(), error) {
	s.mu.Lock()
	ch, ok := s.locks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[id] = ch
	}
	s.mu.Unlock()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type requestHistories struct {
	clock  m.History
	target m.History
	valid  []m.History
	ready  []m.History
}

// fetch retrieves all histories of req concurrently into buffers owned by
// this request.
func (s *sampler) fetch(ctx context.Context, req SampleRequest) (*requestHistories, error) {
	h := &requestHistories{
		valid: make([]m.History, len(req.Gates)),
		ready: make([]m.History, len(req.Gates)),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	get := func(sig *m.Signal, dst *m.History) {
		group.Go(func() error {
			history, err := s.source.History(groupCtx, sig, req.Window)
			if err != nil {
				return fmt.Errorf("history of %s: %w", sig.FullName(), err)
			}

			*dst = history

			return nil
		})
	}

	get(req.Clock, &h.clock)
	get(req.Signal, &h.target)

	for i, gate := range req.Gates {
		get(gate.Valid, &h.valid[i])

		if gate.Ready != nil {
			get(gate.Ready, &h.ready[i])
		}
	}

	if err := group.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, err
	}

	return h, nil
}

const cancelCheckInterval = 1024

// walkEdges enumerates the clock edges inside the window and emits the target
// value at each one that passes the gates. Signals read 0 before their first
// recorded change.
func walkEdges(ctx context.Context, req SampleRequest, h *requestHistories) (m.Series[uint64], int, error) {
	var (
		series       m.Series[uint64]
		edges        int
		prev         uint64
		targetCursor int
	)

	validCursors := make([]int, len(req.Gates))
	readyCursors := make([]int, len(req.Gates))

	for _, change := range h.clock {
		level := change.Value.Uint64() & 1

		if change.Time < req.Window.From {
			prev = level
			continue
		}

		if !req.Window.Contains(change.Time) {
			break
		}

		isEdge := req.Edge.matches(prev, level)
		prev = level

		if !isEdge {
			continue
		}

		edges++
		if edges%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, edges, err
			}
		}

		if req.QualifyByGates && !gatesOpen(change.Time, req.Gates, h, validCursors, readyCursors) {
			continue
		}

		var value uint64
		if bits, ok := h.target.ValueAt(change.Time, &targetCursor); ok {
			value = bits.Uint64()
		}

		series = append(series, m.Sample[uint64]{Time: change.Time, Value: value})
	}

	if err := ctx.Err(); err != nil {
		return nil, edges, err
	}

	return series, edges, nil
}

func gatesOpen(t m.Time, gates []Gate, h *requestHistories, validCursors, readyCursors []int) bool {
	for i, gate := range gates {
		if !asserted(h.valid[i], t, &validCursors[i]) {
			return false
		}

		if gate.Ready != nil && !asserted(h.ready[i], t, &readyCursors[i]) {
			return false
		}
	}

	return true
}

func asserted(history m.History, t m.Time, cursor *int) bool {
	bits, ok := history.ValueAt(t, cursor)
	return ok && bits.Uint64() == 1
}

func validateRequest(req SampleRequest) error {
	if req.Signal == nil || req.Clock == nil {
		return fmt.Errorf("sample request needs a signal and a clock")
	}

	if req.Signal.Width > 64 {
		return &WidthMismatchError{Role: "sampled", Signal: req.Signal.FullName(), Width: req.Signal.Width, Want: "at most 64"}
	}

	if req.Clock.Width != 1 {
		return &WidthMismatchError{Role: "clock", Signal: req.Clock.FullName(), Width: req.Clock.Width, Want: "1"}
	}

	for _, gate := range req.Gates {
		if gate.Valid == nil {
			return fmt.Errorf("gate without a valid signal")
		}

		for _, sig := range []*m.Signal{gate.Valid, gate.Ready} {
			if sig != nil && sig.Width != 1 {
				return &WidthMismatchError{Role: "gate", Signal: sig.FullName(), Width: sig.Width, Want: "1"}
			}
		}
	}

	return nil
}
