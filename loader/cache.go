package loader

import (
	"context"
	"sync"
	"time"

	"github.com/tastedash/tastedash/datasource"
	"github.com/tastedash/tastedash/gologger"
	"github.com/tastedash/tastedash/table"
	"github.com/tastedash/tastedash/utils"
)

var logger = gologger.NewLogger()

type (
	// Cache holds the loaded raw Table per source, keyed by the source key
	// and its last-modified time. It is owned by the caller and passed
	// into the pipeline, not ambient process state. Cached tables are
	// read-only, so sharing them across report generations is safe.
	Cache struct {
		mu      sync.Mutex
		entries map[string]*cacheEntry
	}

	cacheEntry struct {
		table   *table.Table
		modTime time.Time
	}
)

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
	}
}

// Load returns the Table for the source, re-reading it only when the
// source's last-modified time has changed since the cached load.
func (c *Cache) Load(ctx context.Context, src datasource.Source, encodingName string) (*table.Table, error) {
	modTime, err := src.LastModified(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Key(), Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[src.Key()]; ok && entry.modTime.Equal(modTime) {
		return entry.table, nil
	}

	loadID := utils.GenRandomShortID()
	start := time.Now()
	logger.Debug().Str("loadID", loadID).Str("source", src.Key()).Msg("loading dataset")

	r, err := src.Open(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Key(), Err: err}
	}
	defer r.Close()

	decoded, err := DecodeReader(r, encodingName)
	if err != nil {
		return nil, &LoadError{Source: src.Key(), Err: err}
	}

	t, err := Parse(decoded)
	if err != nil {
		return nil, &LoadError{Source: src.Key(), Err: err}
	}

	c.entries[src.Key()] = &cacheEntry{table: t, modTime: modTime}

	logger.Debug().Str("loadID", loadID).Int("rows", t.NumRows()).Int("columns", t.NumColumns()).Str("durationHuman", time.Since(start).String()).Msg("loaded dataset")
	return t, nil
}
