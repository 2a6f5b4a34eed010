package datasource

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Source is where the raw delimited dataset lives. The loader cache
	// uses Key plus LastModified to decide whether a cached Table is
	// still current.
	Source interface {
		Key() string
		Open(ctx context.Context) (io.ReadCloser, error)
		LastModified(ctx context.Context) (time.Time, error)
	}

	DiskSource struct {
		path string
	}
)

func NewDiskSource(path string) *DiskSource {
	return &DiskSource{path: path}
}

func (ds *DiskSource) Key() string {
	return "file://" + ds.path
}

func (ds *DiskSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(ds.path)
	if err != nil {
		return nil, fmt.Errorf("error in os.Open: %w", err)
	}
	return f, nil
}

func (ds *DiskSource) LastModified(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(ds.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("error in os.Stat: %w", err)
	}
	return info.ModTime(), nil
}
