package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "meshtrace.dev/pkg/meshtrace/internal/model"
	"meshtrace.dev/pkg/meshtrace/pkg"
)

const seriesExt = ".gob"

// SeriesStore persists sampled series, one spill file per series.
type SeriesStore interface {
	Save(dir m.Path, name string, series m.Series[uint64]) error
	Load(dir m.Path) (map[string]m.Series[uint64], error)
}

type spillSeriesStore struct{}

// NewSeriesStore returns a SeriesStore writing gob spills.
func NewSeriesStore() SeriesStore {
	return &spillSeriesStore{}
}

// SeriesFileName maps a series name to the name of its spill file.
// SeriesName reverses it.
func SeriesFileName(name string) string {
	return url.PathEscape(name) + seriesExt
}

// SeriesName recovers the series name from a spill file name.
func SeriesName(file string) (string, error) {
	name, err := url.PathUnescape(strings.TrimSuffix(file, seriesExt))
	if err != nil {
		return "", fmt.Errorf("series file %s: %w", file, err)
	}

	return name, nil
}

func (s *spillSeriesStore) Save(dir m.Path, name string, series m.Series[uint64]) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid series name %q", name)
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create series dir: %w", err)
	}

	spill, err := pkg.CreateFileSpill[m.Sample[uint64]](filepath.Join(string(dir), SeriesFileName(name)))
	if err != nil {
		return err
	}

	if err := spill.AppendBatch(series); err != nil {
		_ = spill.Close()
		return fmt.Errorf("save series %s: %w", name, err)
	}

	slog.Debug("saved series", "name", name, "samples", len(series), "path", spill.Path())

	return spill.Close()
}

func (s *spillSeriesStore) Load(dir m.Path) (map[string]m.Series[uint64], error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read series dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == seriesExt {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	out := make(map[string]m.Series[uint64], len(names))

	for _, file := range names {
		name, err := SeriesName(file)
		if err != nil {
			slog.Warn("skipping series file", "file", file, "error", err)
			continue
		}

		spill, err := pkg.OpenFileSpill[m.Sample[uint64]](filepath.Join(string(dir), file))
		if err != nil {
			return nil, err
		}

		series := make(m.Series[uint64], 0, spill.Len())
		err = spill.Range(func(_ uint64, sample m.Sample[uint64]) error {
			series = append(series, sample)
			return nil
		})

		if err != nil {
			return nil, fmt.Errorf("load series %s: %w", file, err)
		}

		out[name] = series
	}

	return out, nil
}
