// Package storage implements the local-disk upload store for job photos.
// Files are written under a single flat directory and served back as
// static content at /uploads/<name>. Names are generated from a
// millisecond timestamp plus a random suffix so concurrent uploads never
// race on the same path.
package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// UploadStore holds the directory uploaded photos are written to.
type UploadStore struct {
	dir string
}

// New ensures the upload directory exists and returns a store bound to it.
func New(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *UploadStore) Dir() string { return s.dir }

// Save writes an uploaded file under a generated name and returns that
// name. The original filename only contributes its extension; everything
// else is discarded so clients cannot influence the stored path.
func (s *UploadStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := Filename(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// Best effort cleanup of the partial file.
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// Filename builds a collision-resistant stored name for an upload:
// foto-<unix ms>-<random int up to 1e9> with the original extension
// preserved.
func Filename(original string) string {
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	return "foto-" + suffix + filepath.Ext(original)
}
