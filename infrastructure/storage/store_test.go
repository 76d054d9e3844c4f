package storage

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArtifact(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	gz, err := gzip.NewReader(file)
	require.NoError(t, err)
	defer gz.Close()

	var records []map[string]interface{}
	require.NoError(t, json.NewDecoder(gz).Decode(&records))
	return records
}

func TestPublishWritesCompressedJSON(t *testing.T) {
	dataDir := t.TempDir()
	store := NewArtifactStore(dataDir)

	records := []domain.PerformanceRecord{
		{"dateTime": "2023-01-01", "clicks": "10"},
		{"dateTime": "2023-01-01", "clicks": "3"},
	}

	require.NoError(t, store.Publish(records, filepath.Join("2023", "01", "01", "perf.json.gz")))

	got := readArtifact(t, filepath.Join(dataDir, "2023", "01", "01", "perf.json.gz"))
	require.Len(t, got, 2)
	assert.Equal(t, "10", got[0]["clicks"])
	assert.Equal(t, "3", got[1]["clicks"])
}

func TestPublishCreatesMissingParents(t *testing.T) {
	dataDir := t.TempDir()
	store := NewArtifactStore(dataDir)

	relPath := filepath.Join("2015", "07", "21", "deep.json.gz")
	require.NoError(t, store.Publish([]string{"x"}, relPath))

	_, err := os.Stat(filepath.Join(dataDir, relPath))
	assert.NoError(t, err)
}

func TestPublishReplacesExistingArtifact(t *testing.T) {
	dataDir := t.TempDir()
	store := NewArtifactStore(dataDir)

	relPath := "structure.json.gz"
	require.NoError(t, store.Publish([]map[string]interface{}{{"version": "old"}}, relPath))
	require.NoError(t, store.Publish([]map[string]interface{}{{"version": "new"}, {"version": "new2"}}, relPath))

	got := readArtifact(t, filepath.Join(dataDir, relPath))
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0]["version"])
}

func TestPublishFailureLeavesNoTrace(t *testing.T) {
	dataDir := t.TempDir()
	store := NewArtifactStore(dataDir)

	// Channels cannot be serialized, so encoding fails before any file
	// operation.
	err := store.Publish(make(chan int), "broken.json.gz")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dataDir, "broken.json.gz"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPublishCleansUpStagingDirectory(t *testing.T) {
	dataDir := t.TempDir()
	store := NewArtifactStore(dataDir)

	require.NoError(t, store.Publish([]string{"x"}, "a.json.gz"))
	require.Error(t, store.Publish(make(chan int), "b.json.gz"))

	leftovers, err := filepath.Glob(filepath.Join(dataDir, ".staging-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestPerformancePath(t *testing.T) {
	account := domain.NewAccount("MY Account DE", "u", "p", "t")

	assert.Equal(t,
		filepath.Join("2023", "01", "02", "campaign-performance-my_account_de-v1.json.gz"),
		PerformancePath("2023-01-02", account))
}

func TestAccountStructurePath(t *testing.T) {
	account := domain.NewAccount("MY Account DE", "u", "p", "t")

	assert.Equal(t, "criteo-account-structure-my_account_de-v1.json.gz", AccountStructurePath(account))
}
