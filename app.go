package main

import (
	"context"
	"fmt"

	"github.com/tastedash/tastedash/cleaning"
	"github.com/tastedash/tastedash/config"
	"github.com/tastedash/tastedash/datasource"
	"github.com/tastedash/tastedash/loader"
	"github.com/tastedash/tastedash/metrics"
	"github.com/tastedash/tastedash/report"
)

type (
	App struct {
		Config  *config.Config
		Source  datasource.Source
		Cache   *loader.Cache
		Reports *report.Service
	}
)

func NewApp(cfg *config.Config) *App {
	var source datasource.Source
	if cfg.Dataset.S3 != nil {
		source = datasource.NewS3Source(cfg.Dataset.S3.Bucket, cfg.Dataset.S3.Key)
	} else {
		source = datasource.NewDiskSource(cfg.Dataset.Path)
	}

	cache := loader.NewCache()

	reports := report.NewService(cache, source, cfg.Dataset.Encoding,
		cleaning.Config{
			KeyColumn:       cfg.Cleaning.KeyColumn,
			RequiredColumns: cfg.Cleaning.RequiredColumns,
		},
		metrics.Config{
			RatingColumn: cfg.Metrics.RatingColumn,
			VotesColumn:  cfg.Metrics.VotesColumn,
			CostColumn:   cfg.Metrics.CostColumn,
		},
		report.Defaults{
			TopN:             cfg.Report.TopN,
			HistogramBuckets: cfg.Report.HistogramBuckets,
			Cities:           cfg.Report.DefaultCities,
		})

	return &App{
		Config:  cfg,
		Source:  source,
		Cache:   cache,
		Reports: reports,
	}
}

// WarmCache loads the dataset once at boot so a broken dataset fails fast
// instead of failing the first report.
func (a *App) WarmCache(ctx context.Context) error {
	_, err := a.Cache.Load(ctx, a.Source, a.Config.Dataset.Encoding)
	if err != nil {
		return fmt.Errorf("error in Cache.Load: %w", err)
	}
	return nil
}
