package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/adfharrison1/go-items/pkg/domain"
)

func seed(t *testing.T, engine *StorageEngine, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := engine.Insert(domain.Item{Name: name, Description: name + " description"})
		require.NoError(t, err)
	}
}

func TestStorageEngine_SaveAndLoad(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "items"+FileExtension)

	engine1 := NewStorageEngine()
	seed(t, engine1, "Apple", "Banana", "Cherry")
	require.NoError(t, engine1.DeleteByID(3))

	require.NoError(t, engine1.SaveToFile(dataFile))
	assert.False(t, engine1.IsDirty())

	info, err := os.Stat(dataFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(HeaderSize))

	_, err = os.Stat(dataFile + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	engine2 := NewStorageEngine()
	require.NoError(t, engine2.LoadFromFile(dataFile))
	assert.Equal(t, engine1.List(), engine2.List())
	assert.False(t, engine2.IsDirty())

	// The ID counter survives the round trip, so deleted IDs are not reused
	item, err := engine2.Insert(domain.Item{Name: "Date"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), item.ID)
}

func TestStorageEngine_SaveCreatesDirectory(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "nested", "dir", "items.itms")

	engine := NewStorageEngine()
	seed(t, engine, "Apple")
	require.NoError(t, engine.SaveToFile(dataFile))

	_, err := os.Stat(dataFile)
	assert.NoError(t, err)
}

func TestStorageEngine_LoadMissingFile(t *testing.T) {
	engine := NewStorageEngine()
	err := engine.LoadFromFile(filepath.Join(t.TempDir(), "missing.itms"))
	require.NoError(t, err)
	assert.Equal(t, 0, engine.Count())
}

func TestStorageEngine_LoadCorruptFile(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "corrupt.itms")
	require.NoError(t, os.WriteFile(dataFile, []byte("definitely not a snapshot"), 0644))

	engine := NewStorageEngine()
	err := engine.LoadFromFile(dataFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file header")
}

func TestStorageEngine_LoadDuplicateIDs(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "dup.itms")

	data := NewStorageData()
	data.Items = []domain.Item{{ID: 1, Name: "Apple"}, {ID: 1, Name: "Again"}}
	encoded, err := EncodeSnapshot(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dataFile, encoded, 0644))

	engine := NewStorageEngine()
	err = engine.LoadFromFile(dataFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate item id 1")
}

func TestStorageEngine_SaveAfterTransaction(t *testing.T) {
	t.Run("enabled writes dirty store", func(t *testing.T) {
		dataFile := filepath.Join(t.TempDir(), "items.itms")
		engine := NewStorageEngine(WithDataFile(dataFile))
		seed(t, engine, "Apple")

		require.NoError(t, engine.SaveAfterTransaction())
		assert.FileExists(t, dataFile)
		assert.False(t, engine.IsDirty())
	})

	t.Run("disabled does nothing", func(t *testing.T) {
		dataFile := filepath.Join(t.TempDir(), "items.itms")
		engine := NewStorageEngine(WithDataFile(dataFile), WithTransactionSave(false))
		seed(t, engine, "Apple")

		require.NoError(t, engine.SaveAfterTransaction())
		assert.NoFileExists(t, dataFile)
		assert.True(t, engine.IsDirty())
	})

	t.Run("no data file does nothing", func(t *testing.T) {
		engine := NewStorageEngine()
		seed(t, engine, "Apple")
		assert.NoError(t, engine.SaveAfterTransaction())
	})
}

func TestStorageEngine_SaveWaitsForFileLock(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "items.itms")

	unlock, err := lockSnapshot(t.Context(), dataFile)
	require.NoError(t, err)

	engine := NewStorageEngine(WithLockTimeout(50 * time.Millisecond))
	seed(t, engine, "Apple")

	err = engine.SaveToFile(dataFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to lock")
	assert.True(t, engine.IsDirty())

	require.NoError(t, unlock())
	require.NoError(t, engine.SaveToFile(dataFile))
}

func TestStorageEngine_BackgroundSave(t *testing.T) {
	defer goleak.VerifyNone(t)

	dataFile := filepath.Join(t.TempDir(), "items.itms")
	engine := NewStorageEngine(WithDataFile(dataFile), WithBackgroundSave(20*time.Millisecond))
	assert.False(t, engine.IsTransactionSaveEnabled())

	engine.StartBackgroundWorkers()
	seed(t, engine, "Apple", "Banana")

	require.Eventually(t, func() bool {
		return !engine.IsDirty()
	}, 2*time.Second, 10*time.Millisecond)

	engine.StopBackgroundWorkers()
	engine.StopBackgroundWorkers() // idempotent

	reloaded := NewStorageEngine()
	require.NoError(t, reloaded.LoadFromFile(dataFile))
	assert.Equal(t, 2, reloaded.Count())
}

func TestStorageEngine_BackgroundWorkersNeedDataFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	engine := NewStorageEngine(WithBackgroundSave(10 * time.Millisecond))
	engine.StartBackgroundWorkers()
	engine.StopBackgroundWorkers()
}
