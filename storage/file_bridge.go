package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBridge stores one file per key under a data directory. This is the
// default backend: the moral equivalent of the browser's local storage for
// a process that owns a disk.
type FileBridge struct {
	dir string
}

func NewFileBridge(dir string) (*FileBridge, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileBridge{dir: dir}, nil
}

func (f *FileBridge) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBridge) Load(_ context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// Save writes via a temp file and rename so a crash mid-write never leaves
// a half-written value behind.
func (f *FileBridge) Save(_ context.Context, key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileBridge) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
