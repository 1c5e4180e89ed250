package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return store
}

func TestLocalStorageSaveAndStat(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	content := "fake image bytes"
	url, err := store.Save(ctx, "logo.png", strings.NewReader(content), int64(len(content)), "image/png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/logo.png" {
		t.Errorf("url = %q", url)
	}

	info, err := store.Stat(ctx, "logo.png")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", info.Size, len(content))
	}
	if info.URL != url {
		t.Errorf("stat url = %q, want %q", info.URL, url)
	}
}

func TestLocalStorageList(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for _, name := range []string{"a.png", "b.jpg", ".hidden"} {
		if _, err := store.Save(ctx, name, strings.NewReader("x"), 1, ""); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want 2 entries", files)
	}
	for _, name := range files {
		if strings.HasPrefix(name, ".") {
			t.Errorf("dotfile %q listed", name)
		}
	}
}

func TestLocalStorageListMissingDirectory(t *testing.T) {
	store := &LocalStorage{basePath: filepath.Join(t.TempDir(), "missing"), baseURL: "/uploads"}

	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want empty", files)
	}
}

func TestLocalStorageDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "gone.png", strings.NewReader("x"), 1, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "gone.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := store.Delete(ctx, "gone.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
	if _, err := store.Stat(ctx, "gone.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("stat err = %v, want ErrNotFound", err)
	}
}

func TestLocalStorageSaveStripsPath(t *testing.T) {
	store := newTestStorage(t)

	url, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"), 1, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/passwd" {
		t.Errorf("url = %q, want base name only", url)
	}
}
