package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ifs "github.com/hupe1980/hubgo/internal/fs"
)

// LocalStore implements Store using the local file system.
// Each key maps to a file below root.
type LocalStore struct {
	root string
	fs   ifs.FileSystem
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithFileSystem sets the filesystem used by the store.
func WithFileSystem(fsys ifs.FileSystem) LocalOption {
	return func(s *LocalStore) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// The directory is created lazily on the first write.
func NewLocalStore(root string, opts ...LocalOption) *LocalStore {
	s := &LocalStore{root: root, fs: ifs.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory the store is rooted at.
func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) path(key string) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

// Get reads the file stored under key.
func (s *LocalStore) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := ifs.ReadFile(s.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Key: key}
		}
		return nil, err
	}
	return data, nil
}

// Set writes value atomically: a temp file is written, synced and renamed.
func (s *LocalStore) Set(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return ifs.WriteFileAtomic(s.fs, p, value, 0644)
}

// Delete removes the file stored under key.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List walks the root and returns all keys with the given prefix.
// In-flight temp files are skipped.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.walk(s.root, func(key string) {
		if strings.HasPrefix(key, prefix) && !strings.HasSuffix(key, ".tmp") {
			keys = append(keys, key)
		}
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *LocalStore) walk(dir string, fn func(key string)) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if err := s.walk(full, fn); err != nil {
				return err
			}
			continue
		}
		if e.Type()&fs.ModeType != 0 {
			continue
		}
		rel, err := filepath.Rel(s.root, full)
		if err != nil {
			return err
		}
		fn(filepath.ToSlash(rel))
	}
	return nil
}
