package series

import (
	"sort"

	"github.com/tastedash/tastedash/table"
)

type FrequencyEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopNFrequency counts occurrences of each distinct value in column and
// returns the n most frequent, sorted by descending count. Ties keep the
// first-occurrence order of the value in the table. Missing cells are not
// counted. Returns nil when the column is absent.
func TopNFrequency(t *table.Table, column string, n int) []FrequencyEntry {
	colIdx, ok := t.ColumnIndex(column)
	if !ok || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i < t.NumRows(); i++ {
		v := t.Value(i, colIdx)
		if v.IsMissing() {
			continue
		}
		s := v.Display()
		if _, exists := counts[s]; !exists {
			order = append(order, s)
		}
		counts[s]++
	}

	entries := make([]FrequencyEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, FrequencyEntry{Value: v, Count: counts[v]})
	}

	// stable keeps first-occurrence order within equal counts
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
