package series

import (
	"github.com/tastedash/tastedash/table"
)

type GroupMean struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// GroupedMean groups rows by the distinct values of groupColumn and
// computes the mean of valueColumn within each group, ignoring missing
// and non-numeric values. Rows with a missing group value are skipped,
// and groups with no numeric observations are omitted. Group order is
// first occurrence of the group key. Returns nil when either column is
// absent.
func GroupedMean(t *table.Table, groupColumn, valueColumn string) []GroupMean {
	groupIdx, ok := t.ColumnIndex(groupColumn)
	if !ok {
		return nil
	}
	valueIdx, ok := t.ColumnIndex(valueColumn)
	if !ok {
		return nil
	}

	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[string]*acc)
	var order []string

	for i := 0; i < t.NumRows(); i++ {
		g := t.Value(i, groupIdx)
		if g.IsMissing() {
			continue
		}
		key := g.Display()
		a, exists := sums[key]
		if !exists {
			a = &acc{}
			sums[key] = a
			order = append(order, key)
		}

		v := t.Value(i, valueIdx)
		if v.Kind != table.KindNumber {
			continue
		}
		a.sum += v.Num
		a.count++
	}

	out := make([]GroupMean, 0, len(order))
	for _, key := range order {
		a := sums[key]
		if a.count == 0 {
			continue
		}
		out = append(out, GroupMean{
			Group: key,
			Mean:  a.sum / float64(a.count),
			Count: a.count,
		})
	}
	return out
}
