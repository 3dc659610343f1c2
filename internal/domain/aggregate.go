package domain

import (
	"context"
	"fmt"
	"math/bits"
	"sort"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// Unsigned is an unsigned integer of a fixed bit width.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// PopCount counts the set bits of v with the masked-sum technique, sized to
// the width of T.
func PopCount[T Unsigned](v T) int {
	ones := ^T(0)
	m1 := ones / 3        // 0x55...
	m2 := ones / 15 * 3   // 0x33...
	m4 := ones / 255 * 15 // 0x0f...
	h01 := ones / 255     // 0x01...

	width := bits.Len64(uint64(ones))

	v -= (v >> 1) & m1
	v = (v & m2) + ((v >> 2) & m2)
	v = (v + (v >> 4)) & m4

	return int((v * h01) >> (width - 8))
}

// PopCountSeries counts the set bits of every sample, treating values as
// width-bit integers.
func PopCountSeries(series m.Series[uint64], width int) (m.Series[uint64], error) {
	var count func(uint64) int

	switch {
	case width <= 0 || width > 64:
		return nil, fmt.Errorf("%w: popcount of %d-bit values", ErrWidthMismatch, width)
	case width <= 8:
		count = func(v uint64) int { return PopCount(uint8(v)) }
	case width <= 16:
		count = func(v uint64) int { return PopCount(uint16(v)) }
	case width <= 32:
		count = func(v uint64) int { return PopCount(uint32(v)) }
	default:
		count = func(v uint64) int { return PopCount(v) }
	}

	mask := ^uint64(0)
	if width < 64 {
		mask = 1<<width - 1
	}

	out := make(m.Series[uint64], len(series))
	for i, sample := range series {
		out[i] = m.Sample[uint64]{Time: sample.Time, Value: uint64(count(sample.Value & mask))}
	}

	return out, nil
}

// LinkReport is the lane usage of a link over a run.
type LinkReport struct {
	Idle       m.Series[uint64]
	DataTotal  uint64
	IdleTotal  uint64
	EventTotal uint64
}

// LinkUsage derives the idle lanes per sample from a lane-event bitmap and
// totals the data, idle and event counts. All three series must share a time
// base.
func LinkUsage(data, bitmap, events m.Series[uint64], lanes int) (LinkReport, error) {
	if !m.SameTimeBase(data, bitmap) || !m.SameTimeBase(data, events) {
		return LinkReport{}, ErrTimeBaseMismatch
	}

	if lanes <= 0 || lanes > 64 {
		return LinkReport{}, fmt.Errorf("%w: %d lanes", ErrLaneOverflow, lanes)
	}

	used, err := PopCountSeries(bitmap, 64)
	if err != nil {
		return LinkReport{}, err
	}

	report := LinkReport{Idle: make(m.Series[uint64], len(used))}

	for i, sample := range used {
		if sample.Value > uint64(lanes) {
			return LinkReport{}, fmt.Errorf("%w: %d lanes set at time %d, %d lanes", ErrLaneOverflow, sample.Value, sample.Time, lanes)
		}

		idle := uint64(lanes) - sample.Value
		report.Idle[i] = m.Sample[uint64]{Time: sample.Time, Value: idle}
		report.IdleTotal += idle
		report.DataTotal += data[i].Value
		report.EventTotal += events[i].Value
	}

	return report, nil
}

// Outstanding returns issued - completed per sample.
func Outstanding(issued, completed m.Series[uint64]) (m.Series[int64], error) {
	if !m.SameTimeBase(issued, completed) {
		return nil, ErrTimeBaseMismatch
	}

	out := make(m.Series[int64], len(issued))
	for i := range issued {
		out[i] = m.Sample[int64]{
			Time:  issued[i].Time,
			Value: int64(issued[i].Value) - int64(completed[i].Value),
		}
	}

	return out, nil
}

// MaxOutstanding is the largest outstanding count of the series.
func MaxOutstanding(outstanding m.Series[int64]) (int64, error) {
	return Max(outstanding)
}

// OutstandingPipeline samples the issued and completed counters and, once both
// are in, returns their difference.
func OutstandingPipeline(ctx context.Context, s Sampler, issued, completed SampleRequest) (m.Series[int64], error) {
	series, err := s.SampleAll(ctx, []SampleRequest{issued, completed}, 2)
	if err != nil {
		return nil, err
	}

	return Outstanding(series[0], series[1])
}

// Last returns the final sample value.
func Last[V m.Number](series m.Series[V]) (V, error) {
	if len(series) == 0 {
		var zero V
		return zero, ErrEmptyTimeBase
	}

	return series[len(series)-1].Value, nil
}

// Max returns the largest sample value.
func Max[V m.Number](series m.Series[V]) (V, error) {
	if len(series) == 0 {
		var zero V
		return zero, ErrEmptyTimeBase
	}

	best := series[0].Value
	for _, sample := range series[1:] {
		best = max(best, sample.Value)
	}

	return best, nil
}

// Sum adds up all sample values.
func Sum[V m.Number](series m.Series[V]) (V, error) {
	var total V
	if len(series) == 0 {
		return total, ErrEmptyTimeBase
	}

	for _, sample := range series {
		total += sample.Value
	}

	return total, nil
}

// NodeCounters are the sampled counters of one mesh node.
type NodeCounters struct {
	Position    m.Position
	Origin      bool
	Sent        m.Series[uint64]
	Received    m.Series[uint64]
	Outstanding m.Series[int64]
}

// RunInput gathers what Summarize reduces.
type RunInput struct {
	Nodes   []NodeCounters
	Latency m.Series[uint64]
}

// RunSummary is the single-line quality summary of a run.
type RunSummary struct {
	Received       uint64
	Sent           uint64
	MaxLatency     uint64
	MaxOutstanding int64
}

func (s RunSummary) String() string {
	return fmt.Sprintf("received %d/%d, max latency %d, max outstanding %d", s.Received, s.Sent, s.MaxLatency, s.MaxOutstanding)
}

// Summarize reduces the node counters of a run: the origin's final received
// count, the final sent counts of all other nodes summed, the largest latency
// and the largest outstanding count of any node.
func Summarize(in RunInput) (RunSummary, error) {
	var (
		summary      RunSummary
		haveOrigin   bool
		outstandings int
	)

	for _, node := range in.Nodes {
		if node.Origin {
			received, err := Last(node.Received)
			if err != nil {
				return RunSummary{}, fmt.Errorf("received count of origin %s: %w", node.Position, err)
			}

			summary.Received = received
			haveOrigin = true
		} else {
			sent, err := Last(node.Sent)
			if err != nil {
				return RunSummary{}, fmt.Errorf("sent count of node %s: %w", node.Position, err)
			}

			summary.Sent += sent
		}

		if peak, err := Max(node.Outstanding); err == nil {
			if outstandings == 0 || peak > summary.MaxOutstanding {
				summary.MaxOutstanding = peak
			}

			outstandings++
		}
	}

	if !haveOrigin {
		return RunSummary{}, fmt.Errorf("run has no origin node")
	}

	if outstandings == 0 {
		return RunSummary{}, fmt.Errorf("outstanding counts: %w", ErrEmptyTimeBase)
	}

	latency, err := Max(in.Latency)
	if err != nil {
		return RunSummary{}, fmt.Errorf("latency: %w", err)
	}

	summary.MaxLatency = latency

	return summary, nil
}

// ValueBin counts how often one value was sampled and when.
type ValueBin struct {
	Value uint64
	Times []m.Time
}

// ValueIndex maps sampled values to the times they occurred at.
type ValueIndex struct {
	bins map[uint64][]m.Time
}

// IndexValues builds the inverted index of a series.
func IndexValues(series m.Series[uint64]) ValueIndex {
	idx := ValueIndex{bins: make(map[uint64][]m.Time)}
	for _, sample := range series {
		idx.bins[sample.Value] = append(idx.bins[sample.Value], sample.Time)
	}

	return idx
}

// Bins returns the histogram ordered by value.
func (idx ValueIndex) Bins() []ValueBin {
	bins := make([]ValueBin, 0, len(idx.bins))
	for value, times := range idx.bins {
		bins = append(bins, ValueBin{Value: value, Times: times})
	}

	sort.Slice(bins, func(i, j int) bool { return bins[i].Value < bins[j].Value })

	return bins
}

// TimesIn returns, in time order, when a value in [lo, hi] was sampled.
func (idx ValueIndex) TimesIn(lo, hi uint64) []m.Time {
	var times []m.Time

	for value, at := range idx.bins {
		if value >= lo && value <= hi {
			times = append(times, at...)
		}
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	return times
}
