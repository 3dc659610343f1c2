package pkg

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	Time  uint64
	Value uint64
}

func TestFileSpill(t *testing.T) {
	t.Run("Append and Get", func(t *testing.T) {
		spill, err := CreateFileSpill[string](filepath.Join(t.TempDir(), "s.gob"))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val)
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill, err := CreateFileSpill[point](filepath.Join(t.TempDir(), "p.gob"))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]point{{0, 10}, {3, 40}}))

		var got []point
		require.NoError(t, spill.Range(func(_ uint64, item point) error {
			got = append(got, item)
			return nil
		}))
		require.Equal(t, []point{{0, 10}, {3, 40}}, got)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := CreateFileSpill[int](filepath.Join(t.TempDir(), "i.gob"))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		calls := 0
		err = spill.Range(func(_ uint64, _ int) error {
			calls++
			return stop
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, calls)
	})

	t.Run("zero values survive a round trip", func(t *testing.T) {
		spill, err := CreateFileSpill[point](filepath.Join(t.TempDir(), "z.gob"))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]point{{0, 0}, {1, 7}}))

		first, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, point{}, first)
	})
}

func TestOpenFileSpill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.gob")

	spill, err := CreateFileSpill[point](path)
	require.NoError(t, err)
	require.NoError(t, spill.AppendBatch([]point{{1, 2}, {3, 4}, {5, 6}}))
	require.NoError(t, spill.Close())

	reopened, err := OpenFileSpill[point](path)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, uint64(3), reopened.Len())
	require.Equal(t, path, reopened.Path())

	last, err := reopened.Get(2)
	require.NoError(t, err)
	require.Equal(t, point{5, 6}, last)

	require.Error(t, reopened.Append(point{7, 8}))
}

func TestOpenFileSpill_Missing(t *testing.T) {
	_, err := OpenFileSpill[int](filepath.Join(t.TempDir(), "missing.gob"))
	require.Error(t, err)
}

func TestCreateFileSpill_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gob")

	spill, err := CreateFileSpill[int](path)
	require.NoError(t, err)
	require.NoError(t, spill.Close())

	reopened, err := OpenFileSpill[int](path)
	require.NoError(t, err)
	require.Equal(t, uint64(0), reopened.Len())

	_, err = reopened.Get(0)
	require.Error(t, err)
}
