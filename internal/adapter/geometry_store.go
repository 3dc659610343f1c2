package adapter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
)

// GeometryStore writes mesh geometry for external renderers.
type GeometryStore interface {
	Save(path m.Path, geometry m.Geometry) error
}

type yamlGeometryStore struct{}

// NewGeometryStore returns a GeometryStore writing YAML.
func NewGeometryStore() GeometryStore {
	return &yamlGeometryStore{}
}

func (s *yamlGeometryStore) Save(path m.Path, geometry m.Geometry) error {
	data, err := yaml.Marshal(geometry)
	if err != nil {
		return errors.Wrap(err, "encode geometry")
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return errors.Wrapf(err, "create geometry dir for %s", path)
	}

	if err := os.WriteFile(string(path), data, 0o640); err != nil {
		slog.Error("failed to write geometry", "path", path, "error", err)
		return errors.Wrap(err, "write geometry")
	}

	slog.Debug("geometry written", "path", path, "nodes", len(geometry.Nodes))

	return nil
}
