package localstorage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Artifact names are fixed; concurrent jobs sharing a base directory
// would race on them.
const (
	narrationFile  = "voice.wav"
	backgroundFile = "bg.mp4"
	outputFile     = "final.mp4"
	manifestFile   = "input.json"
	searchRawFile  = "search_raw.json"
)

// downloadChunkSize is the buffer size for streaming the background
// video to disk.
const downloadChunkSize = 256 * 1024

// LocalStorage implements ports.Storage for the local filesystem.
// Artifacts are written once and never cleaned up; the caller owns
// the directory's lifecycle after the process exits.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

// InitJob creates the artifact directory.
func (s *LocalStorage) InitJob(ctx context.Context) error {
	if err := os.MkdirAll(s.BaseDir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create artifact directory %s", s.BaseDir)
	}
	return nil
}

// SaveManifest saves the job input parameters.
func (s *LocalStorage) SaveManifest(ctx context.Context, data []byte) error {
	path := filepath.Join(s.BaseDir, manifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to save %s", manifestFile)
	}
	return nil
}

// SaveSearchResult saves the raw provider API response.
func (s *LocalStorage) SaveSearchResult(ctx context.Context, data []byte) error {
	path := filepath.Join(s.BaseDir, searchRawFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to save %s", searchRawFile)
	}
	return nil
}

// SaveBackground streams the background video to disk in fixed-size
// chunks.
func (s *LocalStorage) SaveBackground(ctx context.Context, reader io.Reader) error {
	path := s.BackgroundPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create video file %s", path)
	}
	defer file.Close()

	if _, err := io.CopyBuffer(file, reader, make([]byte, downloadChunkSize)); err != nil {
		return errors.Wrap(err, "failed to write video file")
	}
	return nil
}

// NarrationPath returns the path the narration audio is written to.
func (s *LocalStorage) NarrationPath() string {
	return filepath.Join(s.BaseDir, narrationFile)
}

// BackgroundPath returns the path the background video is written to.
func (s *LocalStorage) BackgroundPath() string {
	return filepath.Join(s.BaseDir, backgroundFile)
}

// OutputPath returns the path of the final composited video.
func (s *LocalStorage) OutputPath() string {
	return filepath.Join(s.BaseDir, outputFile)
}
