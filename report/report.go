package report

import (
	"context"
	"sort"
	"time"

	"github.com/tastedash/tastedash/cleaning"
	"github.com/tastedash/tastedash/datasource"
	"github.com/tastedash/tastedash/filtering"
	"github.com/tastedash/tastedash/gologger"
	"github.com/tastedash/tastedash/loader"
	"github.com/tastedash/tastedash/metrics"
	"github.com/tastedash/tastedash/series"
	"github.com/tastedash/tastedash/table"
	"github.com/tastedash/tastedash/utils"
)

var logger = gologger.NewLogger()

// Column vocabulary of the restaurant dataset. The chart set is fixed, so
// these are constants rather than configuration.
const (
	ColCity           = "city"
	ColCuisines       = "cuisines"
	ColRating         = "aggregate_rating"
	ColVotes          = "votes"
	ColCost           = "average_cost_for_two"
	ColPriceRange     = "price_range"
	ColLatitude       = "latitude"
	ColLongitude      = "longitude"
	ColRestaurantName = "restaurant_name"
)

type (
	// Request is the report configuration. Nil Cities means "use the
	// configured default selection"; an explicit empty list means no city
	// restriction at all.
	Request struct {
		Cities           []string `json:"cities"`
		TopN             *int     `json:"top_n" validate:"omitempty,gte=1"`
		HistogramBuckets *int     `json:"histogram_buckets" validate:"omitempty,gte=1"`
	}

	// Series holds the chart-ready derived tables. Each is present only
	// when its source columns exist in the loaded dataset.
	Series struct {
		TopCities       []series.FrequencyEntry `json:"top_cities,omitempty"`
		TopCuisines     []series.FrequencyEntry `json:"top_cuisines,omitempty"`
		RatingHistogram []series.Bucket         `json:"rating_histogram,omitempty"`
		CostVsRating    []series.Point          `json:"cost_vs_rating,omitempty"`
		VotesVsRating   []series.Point          `json:"votes_vs_rating,omitempty"`
		PriceVsRating   []series.GroupMean      `json:"price_vs_rating,omitempty"`
		GeoPoints       []series.Point          `json:"geo_points,omitempty"`
	}

	Response struct {
		ID          string          `json:"id"`
		GeneratedAt time.Time       `json:"generated_at"`
		Metrics     metrics.Metrics `json:"metrics"`
		Series      Series          `json:"series"`
	}

	Defaults struct {
		TopN             int
		HistogramBuckets int
		Cities           []string
	}

	Service struct {
		cache       *loader.Cache
		source      datasource.Source
		encoding    string
		cleaningCfg cleaning.Config
		metricsCfg  metrics.Config
		defaults    Defaults
	}
)

func NewService(cache *loader.Cache, source datasource.Source, encoding string, cleaningCfg cleaning.Config, metricsCfg metrics.Config, defaults Defaults) *Service {
	return &Service{
		cache:       cache,
		source:      source,
		encoding:    encoding,
		cleaningCfg: cleaningCfg,
		metricsCfg:  metricsCfg,
		defaults:    defaults,
	}
}

// seriesBuilder declares the columns a builder needs so the dispatcher
// can check presence once and skip absent builders, instead of scattering
// presence checks inline.
type seriesBuilder struct {
	name     string
	requires []string
	build    func(t *table.Table, topN, buckets int, out *Series)
}

var seriesBuilders = []seriesBuilder{
	{
		name:     "top_cities",
		requires: []string{ColCity},
		build: func(t *table.Table, topN, _ int, out *Series) {
			out.TopCities = series.TopNFrequency(t, ColCity, topN)
		},
	},
	{
		name:     "top_cuisines",
		requires: []string{ColCuisines},
		build: func(t *table.Table, topN, _ int, out *Series) {
			out.TopCuisines = series.TopNFrequency(t, ColCuisines, topN)
		},
	},
	{
		name:     "rating_histogram",
		requires: []string{ColRating},
		build: func(t *table.Table, _, buckets int, out *Series) {
			out.RatingHistogram = series.HistogramBuckets(t, ColRating, buckets)
		},
	},
	{
		name:     "cost_vs_rating",
		requires: []string{ColCost, ColRating},
		build: func(t *table.Table, _, _ int, out *Series) {
			out.CostVsRating = series.PairedProjection(t, series.ProjectionSpec{
				X:     ColCost,
				Y:     ColRating,
				Color: ColCity,
				Size:  ColVotes,
				Hover: ColCuisines,
			})
		},
	},
	{
		name:     "votes_vs_rating",
		requires: []string{ColVotes, ColRating},
		build: func(t *table.Table, _, _ int, out *Series) {
			out.VotesVsRating = series.PairedProjection(t, series.ProjectionSpec{
				X:     ColVotes,
				Y:     ColRating,
				Color: ColCity,
			})
		},
	},
	{
		name:     "price_vs_rating",
		requires: []string{ColPriceRange, ColRating},
		build: func(t *table.Table, _, _ int, out *Series) {
			out.PriceVsRating = series.GroupedMean(t, ColPriceRange, ColRating)
		},
	},
	{
		name:     "geo_points",
		requires: []string{ColLatitude, ColLongitude},
		build: func(t *table.Table, _, _ int, out *Series) {
			out.GeoPoints = series.PairedProjection(t, series.ProjectionSpec{
				X:     ColLongitude,
				Y:     ColLatitude,
				Color: ColRating,
				Hover: ColRestaurantName,
			})
		},
	},
}

// Generate runs the full pipeline: load (cached) → clean → city filter →
// metrics + series. A load failure aborts the whole report; every later
// stage is total.
func (s *Service) Generate(ctx context.Context, req Request) (*Response, error) {
	raw, err := s.cache.Load(ctx, s.source, s.encoding)
	if err != nil {
		return nil, err
	}

	cleaned := cleaning.Clean(raw, s.cleaningCfg)

	cities := req.Cities
	if cities == nil {
		cities = s.defaults.Cities
	}
	filtered := filtering.ByValues(cleaned, ColCity, cities)

	logger.Debug().Int("rawRows", raw.NumRows()).Int("cleanedRows", cleaned.NumRows()).Int("filteredRows", filtered.NumRows()).Msg("report pipeline rows")

	topN := utils.Deref(req.TopN, s.defaults.TopN)
	buckets := utils.Deref(req.HistogramBuckets, s.defaults.HistogramBuckets)

	resp := &Response{
		ID:          utils.GenKSortedID("rpt_"),
		GeneratedAt: time.Now().UTC(),
		Metrics:     metrics.Compute(filtered, s.metricsCfg),
	}

	for _, b := range seriesBuilders {
		if !filtered.HasColumns(b.requires...) {
			continue
		}
		b.build(filtered, topN, buckets, &resp.Series)
	}

	return resp, nil
}

// Columns reports the normalized column names and inferred types of the
// loaded dataset, for frontend introspection.
func (s *Service) Columns(ctx context.Context) ([]table.ColumnType, error) {
	raw, err := s.cache.Load(ctx, s.source, s.encoding)
	if err != nil {
		return nil, err
	}
	return raw.ColumnTypes(), nil
}

// Values returns the sorted distinct values of a column after cleaning,
// which is what filter widgets present. An absent column yields an empty
// list, not an error.
func (s *Service) Values(ctx context.Context, column string) ([]string, error) {
	raw, err := s.cache.Load(ctx, s.source, s.encoding)
	if err != nil {
		return nil, err
	}
	cleaned := cleaning.Clean(raw, s.cleaningCfg)
	vals := cleaned.DistinctValues(table.NormalizeColumn(column))
	sort.Strings(vals)
	if vals == nil {
		vals = []string{}
	}
	return vals, nil
}
