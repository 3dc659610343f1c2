package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPathNotFound is matched by every *PathNotFoundError.
	ErrPathNotFound = errors.New("path not found")
	// ErrWidthMismatch is matched by every *WidthMismatchError.
	ErrWidthMismatch = errors.New("width mismatch")
	// ErrEmptyTimeBase is returned by reductions over a series with no samples.
	ErrEmptyTimeBase = errors.New("empty time base")
	// ErrTimeBaseMismatch is returned when combined series were sampled at
	// different times.
	ErrTimeBaseMismatch = errors.New("series do not share a time base")
	// ErrLaneOverflow is returned when a lane bitmap has more set bits than
	// there are lanes.
	ErrLaneOverflow = errors.New("lane bitmap exceeds lane count")
)

// PathNotFoundError identifies the segment at which resolution failed.
type PathNotFoundError struct {
	Path    string
	Segment string
	Index   int
	Scope   string // dotted path of the scope searched, empty for the root
	Signal  bool   // the leaf signal was missing rather than a scope
}

func (e *PathNotFoundError) Error() string {
	kind := "scope"
	if e.Signal {
		kind = "signal"
	}

	scope := e.Scope
	if scope == "" {
		scope = "<root>"
	}

	return fmt.Sprintf("resolve %s: %s %q (segment %d) not found in %s", e.Path, kind, e.Segment, e.Index, scope)
}

// Is reports ErrPathNotFound.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// WidthMismatchError reports a signal whose width does not fit its role in a
// sample request.
type WidthMismatchError struct {
	Role   string
	Signal string
	Width  int
	Want   string
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("%s signal %s has width %d, want %s", e.Role, e.Signal, e.Width, e.Want)
}

// Is reports ErrWidthMismatch.
func (e *WidthMismatchError) Is(target error) bool {
	return target == ErrWidthMismatch
}

func joinScope(parts []string) string {
	return strings.Join(parts, ".")
}
