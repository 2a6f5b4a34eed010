package filtering

import (
	"github.com/tastedash/tastedash/table"
)

// ByValues restricts the table to rows whose value in column is one of
// the allowed values, preserving order. An absent column or an empty
// allowed set means no restriction — the table comes back unchanged. An
// empty selection deliberately disables the filter rather than zeroing
// the result.
func ByValues(t *table.Table, column string, allowed []string) *table.Table {
	colIdx, ok := t.ColumnIndex(column)
	if !ok || len(allowed) == 0 {
		return t
	}

	set := make(map[string]bool, len(allowed))
	for _, v := range allowed {
		set[v] = true
	}

	keep := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		v := t.Value(i, colIdx)
		if v.IsMissing() {
			continue
		}
		if set[v.Display()] {
			keep = append(keep, i)
		}
	}
	return t.Select(keep)
}
