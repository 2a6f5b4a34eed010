package series

import (
	"github.com/tastedash/tastedash/table"
)

type Bucket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// HistogramBuckets partitions the numeric range of column into bucketCount
// equal-width buckets and counts rows per bucket. Missing and non-numeric
// cells are excluded entirely. A degenerate range (all values equal)
// collapses to a single bucket. Returns nil when the column is absent or
// holds no numeric values.
func HistogramBuckets(t *table.Table, column string, bucketCount int) []Bucket {
	colIdx, ok := t.ColumnIndex(column)
	if !ok || bucketCount <= 0 {
		return nil
	}

	var values []float64
	for i := 0; i < t.NumRows(); i++ {
		v := t.Value(i, colIdx)
		if v.Kind != table.KindNumber {
			continue
		}
		values = append(values, v.Num)
	}
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []Bucket{{Lower: min, Upper: max, Count: len(values)}}
	}

	width := (max - min) / float64(bucketCount)
	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		buckets[i].Lower = min + width*float64(i)
		buckets[i].Upper = min + width*float64(i+1)
	}
	// close the last bucket exactly at max
	buckets[bucketCount-1].Upper = max

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bucketCount {
			idx = bucketCount - 1
		}
		buckets[idx].Count++
	}
	return buckets
}
