package metrics

import (
	"math"

	"github.com/tastedash/tastedash/table"
)

type (
	// Config names the columns the scalar summaries read from.
	Config struct {
		RatingColumn string
		VotesColumn  string
		CostColumn   string
	}

	// Metrics are the dashboard's headline numbers. AverageRating is nil
	// (omitted from JSON) when the rating column is absent or has no
	// numeric values — a sentinel absence, never an error.
	Metrics struct {
		RowCount      int      `json:"row_count"`
		AverageRating *float64 `json:"average_rating,omitempty"`
		TotalVotes    int64    `json:"total_votes"`
		AverageCost   int64    `json:"average_cost_for_two"`
	}
)

func DefaultConfig() Config {
	return Config{
		RatingColumn: "aggregate_rating",
		VotesColumn:  "votes",
		CostColumn:   "average_cost_for_two",
	}
}

// Compute produces the scalar summaries over the filtered table. Missing
// and non-numeric values inside a column are skipped, not zero-filled.
func Compute(t *table.Table, cfg Config) Metrics {
	m := Metrics{
		RowCount: t.NumRows(),
	}

	if sum, count := columnSum(t, cfg.RatingColumn); count > 0 {
		mean := sum / float64(count)
		rounded := math.Round(mean*100) / 100
		m.AverageRating = &rounded
	}

	if sum, _ := columnSum(t, cfg.VotesColumn); sum != 0 {
		m.TotalVotes = int64(sum)
	}

	if sum, count := columnSum(t, cfg.CostColumn); count > 0 {
		// truncating, matching the dashboard's integer display
		m.AverageCost = int64(sum / float64(count))
	}

	return m
}

func columnSum(t *table.Table, column string) (sum float64, count int) {
	colIdx, ok := t.ColumnIndex(column)
	if !ok {
		return 0, 0
	}
	for i := 0; i < t.NumRows(); i++ {
		v := t.Value(i, colIdx)
		if v.Kind != table.KindNumber {
			continue
		}
		sum += v.Num
		count++
	}
	return sum, count
}
