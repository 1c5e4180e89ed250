package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps uploads in a flat directory on the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save writes the upload and returns its public URL.
func (l *LocalStorage) Save(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	fullPath := filepath.Join(l.basePath, filepath.Base(filename))

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.URL(filename), nil
}

// List returns stored filenames, skipping dotfiles. A missing directory
// yields an empty list; this is the one intentional soft-fail.
func (l *LocalStorage) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return []string{}, nil
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// Delete removes a stored file.
func (l *LocalStorage) Delete(ctx context.Context, filename string) error {
	fullPath := filepath.Join(l.basePath, filepath.Base(filename))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return ErrNotFound
	}
	return os.Remove(fullPath)
}

// Stat returns metadata for a stored file.
func (l *LocalStorage) Stat(ctx context.Context, filename string) (FileInfo, error) {
	fullPath := filepath.Join(l.basePath, filepath.Base(filename))

	info, err := os.Stat(fullPath)
	if err != nil {
		return FileInfo{}, ErrNotFound
	}

	return FileInfo{
		Filename:  filename,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
		URL:       l.URL(filename),
	}, nil
}

// URL builds the public path a stored file is served under.
func (l *LocalStorage) URL(filename string) string {
	return l.baseURL + "/" + filepath.Base(filename)
}

// BasePath exposes the upload directory for static serving.
func (l *LocalStorage) BasePath() string {
	return l.basePath
}
