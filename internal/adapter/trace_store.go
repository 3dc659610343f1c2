package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// RunStore loads simulation runs.
type RunStore interface {
	// Load reads the run dump at path and returns the run together with a
	// trace source over its recorded histories.
	Load(ctx context.Context, path m.Path) (*m.Run, TraceSource, error)
}

type yamlRunStore struct{}

// NewYAMLRunStore returns a RunStore reading YAML trace dumps.
func NewYAMLRunStore() RunStore {
	return &yamlRunStore{}
}

func (s *yamlRunStore) Load(ctx context.Context, path m.Path) (*m.Run, TraceSource, error) {
	return LoadRun(ctx, path)
}

type dumpFile struct {
	Name  string       `yaml:"name"`
	Mesh  m.MeshConfig `yaml:"mesh"`
	Start m.Time       `yaml:"start"`
	End   m.Time       `yaml:"end"`
	Nodes []dumpNode   `yaml:"nodes"`
}

type dumpNode struct {
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	Role  m.NodeRole `yaml:"role"`
	Scope dumpScope  `yaml:"scope"`
}

type dumpScope struct {
	Comp    string                `yaml:"comp"`
	Signals map[string]dumpSignal `yaml:"signals"`
	Scopes  map[string]dumpScope  `yaml:"scopes"`
}

type dumpSignal struct {
	Width   int            `yaml:"width"`
	Format  string         `yaml:"format"`
	Attrs   map[string]any `yaml:"attrs"`
	Changes []dumpChange   `yaml:"changes"`
}

// dumpChange is a [time, "bits"] pair.
type dumpChange m.Change

func (c *dumpChange) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return errors.Errorf("line %d: change must be a [time, bits] pair", value.Line)
	}

	t, err := strconv.ParseUint(value.Content[0].Value, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "line %d: change time", value.Line)
	}

	c.Time = m.Time(t)
	c.Value = m.Bits(value.Content[1].Value)

	return nil
}

// LoadRun reads a YAML trace dump.
func LoadRun(ctx context.Context, path m.Path) (*m.Run, *MemoryTraceSource, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("failed to read trace dump", "path", path, "error", err)
		return nil, nil, errors.Wrap(err, "read trace dump")
	}

	return DecodeRun(ctx, data)
}

// DecodeRun decodes a YAML trace dump held in memory.
func DecodeRun(ctx context.Context, data []byte) (*m.Run, *MemoryTraceSource, error) {
	var dump dumpFile
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return nil, nil, errors.Wrap(err, "decode trace dump")
	}

	if err := dump.Mesh.Validate(); err != nil {
		return nil, nil, err
	}

	run := &m.Run{
		Name:   dump.Name,
		Config: dump.Mesh,
		Start:  dump.Start,
		End:    dump.End,
	}
	source := NewMemoryTraceSource()
	loader := &scopeLoader{source: source}

	for _, node := range dump.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		pos := m.Position{X: node.X, Y: node.Y}
		if !dump.Mesh.Contains(pos) {
			return nil, nil, errors.Wrapf(m.ErrInvalidMesh, "node %s outside %dx%d mesh", pos, dump.Mesh.Width, dump.Mesh.Height)
		}

		if _, dup := run.Node(pos); dup {
			return nil, nil, errors.Errorf("duplicate node %s", pos)
		}

		builder := m.NewScopeBuilder(pos.String(), node.Scope.Comp)
		if err := loader.load(builder, node.Scope); err != nil {
			return nil, nil, errors.Wrapf(err, "node %s", pos)
		}

		root, err := builder.Build()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "node %s", pos)
		}

		run.Nodes = append(run.Nodes, &m.Node{Position: pos, Role: node.Role, Root: root})
	}

	if run.End == 0 {
		bounds, _ := source.Bounds(ctx)
		run.End = bounds.To
	}

	slog.Debug("loaded trace dump", "run", run.Name, "nodes", len(run.Nodes), "signals", loader.next)

	return run, source, nil
}

// scopeLoader assigns signal IDs in name order so reloading a dump yields
// the same IDs.
type scopeLoader struct {
	source *MemoryTraceSource
	next   m.SignalID
}

func (l *scopeLoader) load(b *m.ScopeBuilder, scope dumpScope) error {
	for _, name := range sortedNames(scope.Signals) {
		sig := scope.Signals[name]

		rule, err := m.ParseRule(sig.Format)
		if err != nil {
			return errors.Wrapf(err, "signal %s", name)
		}

		l.next++
		desc := b.AddSignal(l.next, name, sig.Width, rule, normalizeAttrs(sig.Attrs))

		history := make(m.History, len(sig.Changes))
		for i, c := range sig.Changes {
			history[i] = m.Change(c)
		}

		if sig.Width > 0 {
			if err := l.source.Record(desc, history); err != nil {
				return err
			}
		}
	}

	for _, name := range sortedNames(scope.Scopes) {
		child := scope.Scopes[name]
		if err := l.load(b.Child(name, child.Comp), child); err != nil {
			return err
		}
	}

	return nil
}

func normalizeAttrs(raw map[string]any) m.Attrs {
	attrs := make(m.Attrs, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case int:
			attrs[k] = int64(v)
		case uint64:
			attrs[k] = v
		case float64, string, int64:
			attrs[k] = v
		default:
			attrs[k] = fmt.Sprint(v)
		}
	}

	return attrs
}

func sortedNames[V any](items map[string]V) []string {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
