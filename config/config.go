package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tastedash/tastedash/utils"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Report   ReportConfig   `yaml:"report"`
}

type DatasetConfig struct {
	Path     string    `yaml:"path"`
	Encoding string    `yaml:"encoding"`
	S3       *S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket string `yaml:"bucket"`
	Key    string `yaml:"key"`
}

type CleaningConfig struct {
	KeyColumn       string   `yaml:"keyColumn"`
	RequiredColumns []string `yaml:"requiredColumns"`
}

type MetricsConfig struct {
	RatingColumn string `yaml:"ratingColumn"`
	VotesColumn  string `yaml:"votesColumn"`
	CostColumn   string `yaml:"costColumn"`
}

type ReportConfig struct {
	TopN             int `yaml:"topN"`
	HistogramBuckets int `yaml:"histogramBuckets"`
	// DefaultCities is a UI default, not domain logic. Applied only when
	// a request omits the cities field entirely.
	DefaultCities []string `yaml:"defaultCities"`
}

var knownEncodings = []string{"", "utf8", "utf-8", "latin1", "latin-1", "iso-8859-1", "iso8859-1", "windows-1252", "cp1252"}

// Default is the built-in profile for the restaurant dataset.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:     "zomato.csv",
			Encoding: "latin1",
		},
		Cleaning: CleaningConfig{
			KeyColumn:       "restaurant_id",
			RequiredColumns: []string{"city", "cuisines", "aggregate_rating"},
		},
		Metrics: MetricsConfig{
			RatingColumn: "aggregate_rating",
			VotesColumn:  "votes",
			CostColumn:   "average_cost_for_two",
		},
		Report: ReportConfig{
			TopN:             10,
			HistogramBuckets: 20,
		},
	}
}

// LoadConfig reads a YAML dataset profile. Unset fields fall back to the
// defaults before validation.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Dataset.Path == "" && c.Dataset.S3 == nil {
		return errors.New("dataset.path or dataset.s3 is required")
	}
	if c.Dataset.S3 != nil {
		if c.Dataset.S3.Bucket == "" || c.Dataset.S3.Key == "" {
			return errors.New("dataset.s3 requires bucket and key")
		}
	}
	if !utils.ContainsString(knownEncodings, c.Dataset.Encoding) {
		return fmt.Errorf("unknown dataset.encoding '%s'", c.Dataset.Encoding)
	}
	if c.Report.TopN < 1 {
		return errors.New("report.topN must be at least 1")
	}
	if c.Report.HistogramBuckets < 1 {
		return errors.New("report.histogramBuckets must be at least 1")
	}
	return nil
}
