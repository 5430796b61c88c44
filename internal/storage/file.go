package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists each key as a JSON file under a data directory.
// Writes go through a temp file followed by a rename, so a crash mid-write
// leaves either the old payload or the new one, never a truncated file.
type FileBackend struct {
	dataDir string
	mu      sync.Mutex // protects concurrent writes to the filesystem
}

// NewFileBackend initializes a file backend, creating the data directory
// if it does not exist.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBackend{dataDir: dir}, nil
}

// Get reads the payload stored under key.
func (f *FileBackend) Get(key string) ([]byte, error) {
	payload, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return payload, nil
}

// Set writes payload under key atomically.
func (f *FileBackend) Set(key string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	filePath := f.path(key)
	tempPath := filePath + ".tmp"

	if err := os.WriteFile(tempPath, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}

	return nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dataDir, key+".json")
}
