package adapter

import (
	"context"
	"fmt"
	"sort"
	"sync"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// TraceSource retrieves recorded value changes of signals. Implementations
// may block while data is fetched and must honour ctx cancellation.
type TraceSource interface {
	// History returns the changes of sig inside w, led by the last change
	// before w.From when one exists.
	History(ctx context.Context, sig *m.Signal, w m.Window) (m.History, error)
	// Bounds returns the full recorded time range.
	Bounds(ctx context.Context) (m.Window, error)
}

// MemoryTraceSource is a TraceSource over histories held in memory.
type MemoryTraceSource struct {
	mu        sync.RWMutex
	histories map[m.SignalID]m.History
	bounds    m.Window
}

// NewMemoryTraceSource creates an empty in-memory source.
func NewMemoryTraceSource() *MemoryTraceSource {
	return &MemoryTraceSource{histories: make(map[m.SignalID]m.History)}
}

// Record stores the history of sig, replacing any earlier one. Times must be
// strictly increasing and every value must match the signal's width.
func (s *MemoryTraceSource) Record(sig *m.Signal, history m.History) error {
	for i, change := range history {
		if i > 0 && change.Time <= history[i-1].Time {
			return fmt.Errorf("signal %s: change %d at time %d is not after time %d", sig.FullName(), i, change.Time, history[i-1].Time)
		}

		if change.Value.Width() != sig.Width || !change.Value.Valid() {
			return fmt.Errorf("signal %s: change %d value %q does not fit width %d", sig.FullName(), i, change.Value, sig.Width)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.histories[sig.ID] = append(m.History(nil), history...)

	if len(history) > 0 {
		last := history[len(history)-1].Time
		if last > s.bounds.To {
			s.bounds.To = last
		}
	}

	return nil
}

// History implements TraceSource.
func (s *MemoryTraceSource) History(ctx context.Context, sig *m.Signal, w m.Window) (m.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	history, ok := s.histories[sig.ID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no trace recorded for signal %s (id %d)", sig.FullName(), sig.ID)
	}

	// the change before the first one inside the window holds the level in
	// force when the window opens
	start := sort.Search(len(history), func(i int) bool { return history[i].Time >= w.From })
	if start > 0 {
		start--
	}

	end := len(history)
	if w.To != 0 {
		end = sort.Search(len(history), func(i int) bool { return history[i].Time > w.To })
	}

	if start >= end {
		return m.History{}, nil
	}

	return append(m.History(nil), history[start:end]...), nil
}

// Bounds implements TraceSource.
func (s *MemoryTraceSource) Bounds(ctx context.Context) (m.Window, error) {
	if err := ctx.Err(); err != nil {
		return m.Window{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bounds, nil
}
