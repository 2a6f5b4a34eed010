package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tastedash/tastedash/datasource"
)

func writeDataset(t *testing.T, path, content string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestCacheReusesUnchangedDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	mod := time.Now().Add(-time.Hour)
	writeDataset(t, path, "city\nDelhi\n", mod)

	cache := NewCache()
	src := datasource.NewDiskSource(path)

	t1, err := cache.Load(context.Background(), src, "utf8")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := cache.Load(context.Background(), src, "utf8")
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 {
		t.Fatal("expected the cached table instance back for an unchanged source")
	}
}

func TestCacheReloadsOnModification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	writeDataset(t, path, "city\nDelhi\n", time.Now().Add(-time.Hour))

	cache := NewCache()
	src := datasource.NewDiskSource(path)

	t1, err := cache.Load(context.Background(), src, "utf8")
	if err != nil {
		t.Fatal(err)
	}
	if t1.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", t1.NumRows())
	}

	writeDataset(t, path, "city\nDelhi\nPune\n", time.Now())

	t2, err := cache.Load(context.Background(), src, "utf8")
	if err != nil {
		t.Fatal(err)
	}
	if t2.NumRows() != 2 {
		t.Fatalf("expected reload with 2 rows, got %d", t2.NumRows())
	}
}

func TestCacheMissingFile(t *testing.T) {
	cache := NewCache()
	src := datasource.NewDiskSource(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := cache.Load(context.Background(), src, "utf8")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}
