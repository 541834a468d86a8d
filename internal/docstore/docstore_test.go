package docstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type counterDoc struct {
	N     int            `json:"n"`
	Names map[string]int `json:"names"`
}

func TestOpenSeedsMissingFile(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "counters", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "counters.json"))
	require.NoError(t, err)

	err = c.View(func(d counterDoc) error {
		require.Equal(t, 0, d.N)
		require.NotNil(t, d.Names)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "counters", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)

	err = c.Update(func(d *counterDoc) error {
		d.N = 7
		d.Names["alpha"] = 1
		return nil
	})
	require.NoError(t, err)

	// A fresh Collection must see the committed state.
	c2, err := Open(dir, "counters", counterDoc{})
	require.NoError(t, err)
	err = c2.View(func(d counterDoc) error {
		require.Equal(t, 7, d.N)
		require.Equal(t, 1, d.Names["alpha"])
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateErrorLeavesSnapshotUntouched(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "counters", counterDoc{N: 3, Names: map[string]int{}})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = c.Update(func(d *counterDoc) error {
		d.N = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = c.View(func(d counterDoc) error {
		require.Equal(t, 3, d.N)
		return nil
	})
	require.NoError(t, err)
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "counters", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Update(func(d *counterDoc) error {
				d.N++
				return nil
			})
		}()
	}
	wg.Wait()

	// Single-writer serialization means no increment is lost.
	err = c.View(func(d counterDoc) error {
		require.Equal(t, workers, d.N)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate2CommitsBothCollections(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(dir, "a", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)
	b, err := Open(dir, "b", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)

	err = Update2(a, b, func(da, db *counterDoc) error {
		da.N = 1
		db.N = 2
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, a.View(func(d counterDoc) error {
		require.Equal(t, 1, d.N)
		return nil
	}))
	require.NoError(t, b.View(func(d counterDoc) error {
		require.Equal(t, 2, d.N)
		return nil
	}))
}

func TestUpdate2ErrorCommitsNeither(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(dir, "a", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)
	b, err := Open(dir, "b", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = Update2(a, b, func(da, db *counterDoc) error {
		da.N = 1
		db.N = 2
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, a.View(func(d counterDoc) error {
		require.Equal(t, 0, d.N)
		return nil
	}))
	require.NoError(t, b.View(func(d counterDoc) error {
		require.Equal(t, 0, d.N)
		return nil
	}))
}

func TestCommitLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "counters", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Update(func(d *counterDoc) error {
			d.N++
			return nil
		}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "counters.json", entries[0].Name())
}

func TestStorageErrorOnUnreadableDir(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "counters", counterDoc{Names: map[string]int{}})
	require.NoError(t, err)

	// Removing the directory makes the next commit fail; the in-memory
	// snapshot must survive.
	require.NoError(t, os.RemoveAll(dir))

	err = c.Update(func(d *counterDoc) error {
		d.N = 42
		return nil
	})
	var se *StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "counters", se.Collection)

	require.NoError(t, c.View(func(d counterDoc) error {
		require.Equal(t, 0, d.N)
		return nil
	}))
}
