package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no stored file matches the given code.
var ErrNotFound = errors.New("file not found")

// Store saves uploaded files on the local file system under a single
// directory. Each file is written as "<code>-<originalFilename>" where the
// code is a generated unique token; the code alone is the durable lookup key,
// the filename part is only cosmetic.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the reader's bytes under a freshly generated code and returns
// that code. The write goes to a temporary file first and is renamed into
// place, so a partially written file is never visible under its final name.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	code := uuid.New().String()
	target := filepath.Join(s.dir, code+"-"+sanitizeFilename(filename))

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to store upload as %s: %w", filepath.Base(target), err)
	}
	return code, nil
}

// Resolve finds the stored file whose name starts with the given code and
// returns its path on disk plus the original filename (the part after the
// code prefix). A missing file is ErrNotFound; anything else is an I/O fault.
func (s *Store) Resolve(code string) (path string, filename string, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", "", fmt.Errorf("failed to read upload directory: %w", err)
	}
	prefix := code + "-"
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(s.dir, entry.Name()), strings.TrimPrefix(entry.Name(), prefix), nil
		}
	}
	return "", "", fmt.Errorf("no file with code %s: %w", code, ErrNotFound)
}

// sanitizeFilename strips any directory components from an uploaded filename
// so a crafted name cannot escape the upload directory.
func sanitizeFilename(filename string) string {
	clean := filepath.Base(filepath.Clean(filename))
	clean = strings.ReplaceAll(clean, "/", "_")
	clean = strings.ReplaceAll(clean, "\\", "_")
	if clean == "." || clean == ".." || clean == "" {
		return "unnamed"
	}
	return clean
}
