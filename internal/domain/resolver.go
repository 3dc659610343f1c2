package domain

import (
	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// Resolve walks path from root: every segment but the last names a child
// scope, the last one names a signal of the final scope.
func Resolve(root *m.Scope, path m.SignalPath) (*m.Signal, error) {
	if len(path) == 0 {
		return nil, &PathNotFoundError{Signal: true}
	}

	scope := root
	searched := make([]string, 0, len(path)-1)

	for i, seg := range path[:len(path)-1] {
		child, ok := scope.Child(seg.String())
		if !ok {
			return nil, &PathNotFoundError{
				Path:    path.String(),
				Segment: seg.String(),
				Index:   i,
				Scope:   joinScope(searched),
			}
		}

		searched = append(searched, seg.String())
		scope = child
	}

	leaf := path[len(path)-1]

	sig, ok := scope.Signal(leaf.String())
	if !ok {
		return nil, &PathNotFoundError{
			Path:    path.String(),
			Segment: leaf.String(),
			Index:   len(path) - 1,
			Scope:   joinScope(searched),
			Signal:  true,
		}
	}

	return sig, nil
}

// ResolveString parses text and resolves it against root.
func ResolveString(root *m.Scope, text string) (*m.Signal, error) {
	path, err := m.ParsePath(text)
	if err != nil {
		return nil, err
	}

	return Resolve(root, path)
}
