package cleaning

import (
	"github.com/tastedash/tastedash/table"
)

type (
	// Config names the key column used for deduplication and the columns
	// whose missing values disqualify a row. Columns absent from the
	// table are ignored.
	Config struct {
		KeyColumn       string
		RequiredColumns []string
	}
)

// DefaultConfig matches the restaurant dataset layout.
func DefaultConfig() Config {
	return Config{
		KeyColumn:       "restaurant_id",
		RequiredColumns: []string{"city", "cuisines", "aggregate_rating"},
	}
}

// Clean deduplicates by the key column (stable, first-seen wins) and then
// drops rows missing a value in any present required column. Never adds
// rows, never errors; an empty result is valid. Idempotent.
func Clean(t *table.Table, cfg Config) *table.Table {
	t = dedupe(t, cfg.KeyColumn)
	return dropMissingRequired(t, cfg.RequiredColumns)
}

func dedupe(t *table.Table, keyColumn string) *table.Table {
	keyIdx, ok := t.ColumnIndex(keyColumn)
	if !ok {
		return t
	}

	seen := make(map[string]bool)
	keep := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		// missing keys collapse to one row, like everything else
		key := t.Value(i, keyIdx).Display()
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	return t.Select(keep)
}

func dropMissingRequired(t *table.Table, required []string) *table.Table {
	var cols []int
	for _, name := range required {
		if idx, ok := t.ColumnIndex(name); ok {
			cols = append(cols, idx)
		}
	}
	if len(cols) == 0 {
		return t
	}

	keep := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		complete := true
		for _, ci := range cols {
			if t.Value(i, ci).IsMissing() {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	return t.Select(keep)
}
