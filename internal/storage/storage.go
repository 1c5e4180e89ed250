package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound signals that the named file does not exist in the backend.
var ErrNotFound = errors.New("file not found")

// FileInfo describes a stored upload.
type FileInfo struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url"`
}

// Storage is the upload backend: a flat namespace of generated filenames,
// no metadata table. The local filesystem driver is the default; the S3
// driver targets any S3-compatible store.
type Storage interface {
	Save(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, filename string) error
	Stat(ctx context.Context, filename string) (FileInfo, error)
	URL(filename string) string
}
