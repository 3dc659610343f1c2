// Package model defines the data structures of a simulated mesh trace.
package model

import (
	"fmt"
	"math/big"
	"strings"
)

// SignalID is the stable trace handle of a signal. It always refers to the
// same wire for the life of a run.
type SignalID uint64

// Signal describes a single addressable wire or bus.
type Signal struct {
	ID    SignalID
	Path  []string // scope names followed by the leaf name
	Width int
	Rule  FormatRule
	Attrs Attrs
}

// Name returns the leaf name of the signal.
func (s *Signal) Name() string {
	if len(s.Path) == 0 {
		return ""
	}

	return s.Path[len(s.Path)-1]
}

// FullName returns the dotted path of the signal.
func (s *Signal) FullName() string {
	return strings.Join(s.Path, ".")
}

// IsVector reports whether the signal is wider than one bit.
func (s *Signal) IsVector() bool {
	return s.Width > 1
}

func (s *Signal) String() string {
	return fmt.Sprintf("Signal{name=%s, width=%d}", s.FullName(), s.Width)
}

// Attrs holds domain annotations of a signal such as a queue "capacity".
// Values are int64, uint64, float64 or string.
type Attrs map[string]any

// Int returns the attribute as an int64 when it holds an integer.
func (a Attrs) Int(name string) (int64, bool) {
	switch v := a[name].(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	case int:
		return int64(v), true
	}

	return 0, false
}

// String returns the attribute as a string when it holds one.
func (a Attrs) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Bits is a raw bit-vector, most significant bit first, as produced by the
// simulator. Unknown states ('x', 'z') read as zero.
type Bits string

// Width returns the number of bits.
func (b Bits) Width() int {
	return len(b)
}

// Uint64 interprets the lowest 64 bits as an unsigned integer.
func (b Bits) Uint64() uint64 {
	var v uint64

	start := 0
	if len(b) > 64 {
		start = len(b) - 64
	}

	for i := start; i < len(b); i++ {
		v <<= 1
		if b[i] == '1' {
			v |= 1
		}
	}

	return v
}

// Big interprets the whole vector as an unsigned integer.
func (b Bits) Big() *big.Int {
	v := new(big.Int)
	for i := 0; i < len(b); i++ {
		v.Lsh(v, 1)
		if b[i] == '1' {
			v.SetBit(v, 0, 1)
		}
	}

	return v
}

// Valid reports whether b only holds 0, 1, x or z states.
func (b Bits) Valid() bool {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '0', '1', 'x', 'X', 'z', 'Z':
		default:
			return false
		}
	}

	return true
}

// BitsFromUint64 renders v as a vector of the given width.
func BitsFromUint64(v uint64, width int) Bits {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		if v&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}

		v >>= 1
	}

	return Bits(buf)
}
