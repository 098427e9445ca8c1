// Package storage provides the key-value byte store the checklist persists
// into. It is the local-storage analog: a handful of named entries, each a
// raw byte value.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// KV is a flat key-value byte store.
// Get returns (nil, nil) for a missing key; Set overwrites unconditionally.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Dir is a KV backed by one flat file per key inside a directory.
type Dir struct {
	path string
}

// OpenDir opens (creating if needed) a directory-backed store.
// The directory is created with mode 0700.
func OpenDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}
	return &Dir{path: path}, nil
}

// Path returns the backing directory.
func (d *Dir) Path() string {
	return d.path
}

// Get reads the value stored under key. Missing keys are not an error.
func (d *Dir) Get(key string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(d.path, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Set writes the value under key. The write goes through a temp file and a
// rename so a crash never leaves a half-written entry behind.
func (d *Dir) Set(key string, value []byte) error {
	tmp := filepath.Join(d.path, key+".tmp")
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(d.path, key))
}
