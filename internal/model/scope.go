package model

import (
	"fmt"
	"sort"
)

// Scope is a node of a module instantiation hierarchy. A Scope is immutable
// once built and safe for concurrent readers.
type Scope struct {
	name     string
	compName string
	children map[string]*Scope
	signals  map[string]*Signal
}

// Name returns the instance name of the scope.
func (s *Scope) Name() string { return s.name }

// CompName returns the module (component) name of the scope.
func (s *Scope) CompName() string { return s.compName }

// Child returns the named sub-scope.
func (s *Scope) Child(name string) (*Scope, bool) {
	child, ok := s.children[name]
	return child, ok
}

// Signal returns the named signal of this scope.
func (s *Scope) Signal(name string) (*Signal, bool) {
	sig, ok := s.signals[name]
	return sig, ok
}

// ChildNames returns the sub-scope names in sorted order.
func (s *Scope) ChildNames() []string {
	return sortedKeys(s.children)
}

// SignalNames returns the signal names in sorted order.
func (s *Scope) SignalNames() []string {
	return sortedKeys(s.signals)
}

// Walk visits every signal below s depth first, in name order. The depth of
// the scope holding the signal is passed along, starting at 0.
func (s *Scope) Walk(fn func(depth int, scope *Scope, sig *Signal) error) error {
	return s.walk(0, fn)
}

func (s *Scope) walk(depth int, fn func(int, *Scope, *Signal) error) error {
	for _, name := range s.SignalNames() {
		if err := fn(depth, s, s.signals[name]); err != nil {
			return err
		}
	}

	for _, name := range s.ChildNames() {
		if err := s.children[name].walk(depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// ScopeBuilder assembles a Scope tree. It is not safe for concurrent use; the
// built tree is.
type ScopeBuilder struct {
	name     string
	compName string
	prefix   []string
	children map[string]*ScopeBuilder
	order    []string
	signals  map[string]*Signal
	err      error
}

// NewScopeBuilder starts a root scope.
func NewScopeBuilder(name, compName string) *ScopeBuilder {
	return newScopeBuilder(name, compName, nil)
}

func newScopeBuilder(name, compName string, prefix []string) *ScopeBuilder {
	return &ScopeBuilder{
		name:     name,
		compName: compName,
		prefix:   prefix,
		children: make(map[string]*ScopeBuilder),
		signals:  make(map[string]*Signal),
	}
}

// Child returns the builder of the named sub-scope, creating it on first use.
func (b *ScopeBuilder) Child(name, compName string) *ScopeBuilder {
	if child, ok := b.children[name]; ok {
		return child
	}

	prefix := append(append([]string{}, b.prefix...), name)
	child := newScopeBuilder(name, compName, prefix)
	b.children[name] = child
	b.order = append(b.order, name)

	return child
}

// AddSignal declares a signal in this scope. Duplicate names and non-positive
// widths are reported by Build.
func (b *ScopeBuilder) AddSignal(id SignalID, name string, width int, rule FormatRule, attrs Attrs) *Signal {
	if _, exists := b.signals[name]; exists && b.err == nil {
		b.err = fmt.Errorf("duplicate signal %q in scope %q", name, b.name)
	}

	if width <= 0 && b.err == nil {
		b.err = fmt.Errorf("signal %q in scope %q has width %d", name, b.name, width)
	}

	if attrs == nil {
		attrs = Attrs{}
	}

	sig := &Signal{
		ID:    id,
		Path:  append(append([]string{}, b.prefix...), name),
		Width: width,
		Rule:  rule,
		Attrs: attrs,
	}
	b.signals[name] = sig

	return sig
}

// Build freezes the tree.
func (b *ScopeBuilder) Build() (*Scope, error) {
	if b.err != nil {
		return nil, b.err
	}

	scope := &Scope{
		name:     b.name,
		compName: b.compName,
		children: make(map[string]*Scope, len(b.children)),
		signals:  make(map[string]*Signal, len(b.signals)),
	}

	for name, sig := range b.signals {
		if _, clash := b.children[name]; clash {
			return nil, fmt.Errorf("name %q in scope %q is both a signal and a scope", name, b.name)
		}

		scope.signals[name] = sig
	}

	for _, name := range b.order {
		child, err := b.children[name].Build()
		if err != nil {
			return nil, err
		}

		scope.children[name] = child
	}

	return scope, nil
}
