package storage

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/pkg/errors"
)

// OutputFileVersion tags artifact filenames so the format can evolve without
// breaking existing consumers.
const OutputFileVersion = "v1"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ArtifactStore publishes record collections as gzip-compressed JSON files
// under the data directory. Publication is atomic: a reader never observes a
// truncated or empty artifact.
type ArtifactStore struct {
	dataDir string
}

func NewArtifactStore(dataDir string) *ArtifactStore {
	return &ArtifactStore{dataDir: dataDir}
}

func (s *ArtifactStore) DataDir() string {
	return s.dataDir
}

// PerformancePath is the relative artifact path for one account's campaign
// performance on one day ("2023-01-02" -> "2023/01/02/campaign-performance-<name>-v1.json.gz").
func PerformancePath(day string, account domain.Account) string {
	dateDir := strings.ReplaceAll(day, "-", string(filepath.Separator))
	name := fmt.Sprintf("campaign-performance-%s-%s.json.gz", account.NormalizedName, OutputFileVersion)
	return filepath.Join(dateDir, name)
}

// AccountStructurePath is the relative artifact path for one account's
// flattened campaign structure.
func AccountStructurePath(account domain.Account) string {
	return fmt.Sprintf("criteo-account-structure-%s-%s.json.gz", account.NormalizedName, OutputFileVersion)
}

// Publish serializes records to gzip-compressed JSON and moves the result
// into place under relPath. The compressed document is staged in a scoped
// temporary directory and renamed into its final location, so the
// destination either keeps its previous content or holds the complete new
// artifact; re-publishing an existing path replaces it wholesale.
func (s *ArtifactStore) Publish(records interface{}, relPath string) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, "encoding artifact %s", relPath)
	}

	destination := filepath.Join(s.dataDir, relPath)
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", relPath)
	}

	// The staging directory lives inside the data dir so the final rename
	// never crosses a filesystem boundary.
	tmpDir, err := os.MkdirTemp(s.dataDir, ".staging-")
	if err != nil {
		return errors.Wrap(err, "creating staging directory")
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(destination))
	if err := writeGzipFile(tmpPath, payload); err != nil {
		return errors.Wrapf(err, "staging artifact %s", relPath)
	}

	if err := os.Rename(tmpPath, destination); err != nil {
		return errors.Wrapf(err, "publishing artifact %s", relPath)
	}

	return nil
}

func writeGzipFile(path string, payload []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(file)
	if _, err := gz.Write(payload); err != nil {
		gz.Close()
		file.Close()
		return err
	}

	if err := gz.Close(); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
