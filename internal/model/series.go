package model

// Time is a simulation timestamp.
type Time uint64

// Window bounds a query to [From, To]. A zero To means "until the end of the
// trace".
type Window struct {
	From Time
	To   Time
}

// Contains reports whether t lies in the window.
func (w Window) Contains(t Time) bool {
	return t >= w.From && (w.To == 0 || t <= w.To)
}

// Change is one recorded value change of a signal.
type Change struct {
	Time  Time
	Value Bits
}

// History is the ordered list of value changes of one signal, times strictly
// increasing. The first change may predate the queried window and then holds
// the value in force at the window start.
type History []Change

// ValueAt returns the value in force at t. Before the first change a signal
// reads as zero. The search starts at *cursor and advances it, so monotonic
// queries over a history cost linear time overall.
func (h History) ValueAt(t Time, cursor *int) (Bits, bool) {
	i := *cursor
	for i+1 < len(h) && h[i+1].Time <= t {
		i++
	}

	*cursor = i

	if len(h) == 0 || h[i].Time > t {
		return "", false
	}

	return h[i].Value, true
}

// Number is the value type of a Series.
type Number interface {
	~uint64 | ~int64 | ~float64
}

// Sample is one point of a Series.
type Sample[V Number] struct {
	Time  Time
	Value V
}

// Series is the time-ordered output of sampling. It is a value owned by its
// caller and keeps no reference to the signal it came from.
type Series[V Number] []Sample[V]

// Times returns the time base of the series.
func (s Series[V]) Times() []Time {
	times := make([]Time, len(s))
	for i, sample := range s {
		times[i] = sample.Time
	}

	return times
}

// Values returns the sampled values.
func (s Series[V]) Values() []V {
	values := make([]V, len(s))
	for i, sample := range s {
		values[i] = sample.Value
	}

	return values
}

// SameTimeBase reports whether a and b were sampled at the same times.
func SameTimeBase[A, B Number](a Series[A], b Series[B]) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Time != b[i].Time {
			return false
		}
	}

	return true
}
