package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// keyRE restricts keys to names that are safe as file names.
var keyRE = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Dir is a Store keeping each key in its own "<key>.json" file in a folder.
//
// Files are human readable and git friendly, they are written to a temporary
// file first and then renamed so that a crash never leaves a truncated blob.
type Dir struct {
	root string
}

// NewDir returns a Dir store rooted at root, creating the folder if needed.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create storage folder %q: %w", root, err)
	}
	return &Dir{root: root}, nil
}

func (d *Dir) filename(key string) (string, error) {
	if !keyRE.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(d.root, key+".json"), nil
}

func (d *Dir) Load(_ context.Context, key string) ([]byte, error) {
	filename, err := d.filename(key)
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return blob, nil
}

func (d *Dir) Save(_ context.Context, key string, blob []byte) error {
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.root, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}

func (d *Dir) Close() error { return nil }
