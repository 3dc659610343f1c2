package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned for path strings that cannot be parsed.
var ErrInvalidPath = errors.New("invalid signal path")

// Segment is one step of a signal path: a plain name or an indexed
// generate-block name such as genblk[3].
type Segment struct {
	Name    string
	Index   int
	Indexed bool
}

// Named returns a plain segment.
func Named(name string) Segment {
	return Segment{Name: name}
}

// Indexed returns a generate-block segment.
func Indexed(name string, index int) Segment {
	return Segment{Name: name, Index: index, Indexed: true}
}

// String renders the segment the way it appears in the scope tree.
func (s Segment) String() string {
	if s.Indexed {
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	}

	return s.Name
}

// SignalPath is an ordered sequence of segments, the last naming a signal.
type SignalPath []Segment

// String renders the dotted path.
func (p SignalPath) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}

	return strings.Join(parts, ".")
}

// ParsePath parses a dotted path like "genblk_ports[0].arq.outstanding".
func ParsePath(text string) (SignalPath, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(text, ".")
	path := make(SignalPath, 0, len(parts))

	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q", err, part, text)
		}

		path = append(path, seg)
	}

	return path, nil
}

func parseSegment(part string) (Segment, error) {
	if part == "" {
		return Segment{}, fmt.Errorf("%w: empty segment", ErrInvalidPath)
	}

	open := strings.IndexByte(part, '[')
	if open < 0 {
		if strings.ContainsRune(part, ']') {
			return Segment{}, fmt.Errorf("%w: unbalanced bracket", ErrInvalidPath)
		}

		return Named(part), nil
	}

	if open == 0 || !strings.HasSuffix(part, "]") {
		return Segment{}, fmt.Errorf("%w: malformed index", ErrInvalidPath)
	}

	// Only canonical decimals, so the parsed path prints back as written.
	digits := part[open+1 : len(part)-1]

	index, err := strconv.Atoi(digits)
	if err != nil || index < 0 || strconv.Itoa(index) != digits {
		return Segment{}, fmt.Errorf("%w: index must be a non-negative decimal without sign or leading zeros", ErrInvalidPath)
	}

	return Indexed(part[:open], index), nil
}
