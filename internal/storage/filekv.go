package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores each key as a JSON file inside a directory. Single file per
// key, human-readable, portable. No locking; fine for a local single-user
// app.
type FileKV struct {
	dir string
}

// NewFileKV returns a file-backed store rooted at dir. The directory is
// created lazily on first write.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (f *FileKV) Close() error { return nil }
