// Package storage persists blobs under a key, the way a browser local storage
// does.
//
// Three backends are available: Memory, Dir (one file per key) and SQLite (one
// row per key). A missing key is always reported with an error matching
// fs.ErrNotExist.
package storage

import (
	"context"
	"fmt"
	"io/fs"
)

// Store is implemented by all backends.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the backend named 'backend' rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewDir(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q want one of %q, %q, %q", backend, BackendFile, BackendSQLite, BackendMemory)
	}
}

// notFound returns the error for a missing key.
func notFound(key string) error {
	return fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
}
