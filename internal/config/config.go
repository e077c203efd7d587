//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-datagen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the layout used for all date fields in the config file.
const DateFormat = "2006-01-02"

// Config holds all configuration for pgedge-datagen.
type Config struct {
	// OutputDir is the root folder for generated artifacts.
	// Dimension parquet files go to <OutputDir>/dims, fact chunks to
	// <OutputDir>/facts.
	OutputDir string `mapstructure:"output_dir"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Defaults holds parameters shared by multiple artifacts.
	Defaults DefaultsConfig `mapstructure:"defaults"`

	// Per-artifact sections.
	Geography     GeographyConfig     `mapstructure:"geography"`
	Customers     CustomersConfig     `mapstructure:"customers"`
	Stores        StoresConfig        `mapstructure:"stores"`
	Promotions    PromotionsConfig    `mapstructure:"promotions"`
	Dates         DatesConfig         `mapstructure:"dates"`
	ExchangeRates ExchangeRatesConfig `mapstructure:"exchange_rates"`
	Products      ProductsConfig      `mapstructure:"products"`

	// Sales holds configuration for the fact synthesis engine.
	Sales SalesConfig `mapstructure:"sales"`
}

// DefaultsConfig holds parameters shared by multiple artifact sections.
// The date range in particular feeds the Promotions, Dates, Currency and
// ExchangeRates fingerprints, so changing it rebuilds all four.
type DefaultsConfig struct {
	// Seed is the base seed for all deterministic generation.
	Seed int64 `mapstructure:"seed"`

	// DateStart and DateEnd bound the order calendar (YYYY-MM-DD).
	DateStart string `mapstructure:"date_start"`
	DateEnd   string `mapstructure:"date_end"`
}

// GeographyConfig configures the geography dimension.
type GeographyConfig struct {
	// TargetRows is the number of geography rows to emit.
	TargetRows int `mapstructure:"target_rows"`
}

// CustomersConfig configures the customer dimension.
type CustomersConfig struct {
	// TotalCustomers is the number of customer rows to emit.
	TotalCustomers int `mapstructure:"total_customers"`

	// PctOrganizations is the fraction of customers that are companies
	// rather than persons (0..1).
	PctOrganizations float64 `mapstructure:"pct_organizations"`
}

// StoresConfig configures the store dimension.
type StoresConfig struct {
	// NumStores is the number of store rows to emit.
	NumStores int `mapstructure:"num_stores"`

	// OpeningStart and OpeningEnd bound store opening dates (YYYY-MM-DD).
	OpeningStart string `mapstructure:"opening_start"`
	OpeningEnd   string `mapstructure:"opening_end"`

	// ClosingEnd is the latest possible closing date for closed stores.
	ClosingEnd string `mapstructure:"closing_end"`
}

// PromotionsConfig configures the promotion dimension.
type PromotionsConfig struct {
	// NumSeasonal, NumClearance and NumLimited are per-calendar-year
	// counts of each promotion kind.
	NumSeasonal  int `mapstructure:"num_seasonal"`
	NumClearance int `mapstructure:"num_clearance"`
	NumLimited   int `mapstructure:"num_limited"`
}

// DatesConfig configures the date dimension.
type DatesConfig struct {
	// FiscalMonthOffset shifts the fiscal year start (0 = January).
	FiscalMonthOffset int `mapstructure:"fiscal_month_offset"`
}

// ExchangeRatesConfig configures the currency and exchange rate dimensions.
type ExchangeRatesConfig struct {
	// BaseCurrency is the from-currency for all rates.
	BaseCurrency string `mapstructure:"base_currency"`

	// Currencies is the ordered list of ISO codes to generate.
	Currencies []string `mapstructure:"currencies"`

	// Volatility is the daily random-walk standard deviation.
	Volatility float64 `mapstructure:"volatility"`
}

// ProductsConfig configures the product dimension.
type ProductsConfig struct {
	// NumProducts is the number of product rows to emit.
	NumProducts int `mapstructure:"num_products"`

	// MinPrice and MaxPrice bound list prices.
	MinPrice float64 `mapstructure:"min_price"`
	MaxPrice float64 `mapstructure:"max_price"`

	// CostMargin is the fraction of price used to derive unit cost.
	CostMargin float64 `mapstructure:"cost_margin"`
}

// SalesConfig holds configuration for the sales fact engine.
type SalesConfig struct {
	// TotalRows is the number of fact lines to synthesize.
	TotalRows int64 `mapstructure:"total_rows"`

	// ChunkSize is the number of lines per chunk file.
	ChunkSize int64 `mapstructure:"chunk_size"`

	// Workers is the worker pool size (0 = number of CPUs).
	Workers int `mapstructure:"workers"`

	// FileFormat selects the chunk output format: csv, parquet or
	// deltaparquet.
	FileFormat string `mapstructure:"file_format"`

	// AvgLinesPerOrder controls the order count heuristic.
	AvgLinesPerOrder float64 `mapstructure:"avg_lines_per_order"`

	// CalendarProfile selects the order date distribution
	// (uniform, retail, office, seasonal).
	CalendarProfile string `mapstructure:"calendar_profile"`

	// SkipOrderColumns omits order id and line number from the output.
	SkipOrderColumns bool `mapstructure:"skip_order_columns"`

	// RowGroupSize and Compression apply to parquet output only.
	RowGroupSize int    `mapstructure:"row_group_size"`
	Compression  string `mapstructure:"compression"`

	// PartitionEnabled partitions deltaparquet output by Year/Month.
	PartitionEnabled bool `mapstructure:"partition_enabled"`

	// Pricing is the pricing policy applied to every line.
	Pricing PricingPolicy `mapstructure:"pricing"`
}

// PricingPolicy governs discount, rounding and clamping of price fields.
// It is an immutable value handed to each chunk task; the engine never
// reads pricing configuration from shared state.
type PricingPolicy struct {
	// Mode selects the discount/rounding structure:
	// random, bucketed, discrete or ladder.
	Mode string `mapstructure:"mode"`

	// BucketSize is the rounding unit for bucketed mode.
	BucketSize float64 `mapstructure:"bucket_size"`

	// UnitBucketSize and DiscountBucketSize are the rounding units for
	// discrete mode (price/cost and discount respectively).
	UnitBucketSize     float64 `mapstructure:"unit_bucket_size"`
	DiscountBucketSize float64 `mapstructure:"discount_bucket_size"`

	// EnforceMinMargin floors net price at cost * (1 + MinMarginPct).
	EnforceMinMargin bool    `mapstructure:"enforce_min_margin"`
	MinMarginPct     float64 `mapstructure:"min_margin_pct"`

	// DecimalsMode controls cosmetic decimal adjustment:
	// off, micro (value-derived jitter) or strict (retail endings).
	DecimalsMode  string  `mapstructure:"decimals_mode"`
	DecimalsScale float64 `mapstructure:"decimals_scale"`

	// RetailEndings forces .99/.95 fractional price endings.
	RetailEndings bool `mapstructure:"retail_endings"`

	// MinPrice and MaxPrice are hard clamps applied after all other
	// adjustments.
	MinPrice float64 `mapstructure:"min_price"`
	MaxPrice float64 `mapstructure:"max_price"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "generated",
		LogLevel:  "info",
		Defaults: DefaultsConfig{
			Seed:      42,
			DateStart: "2022-01-01",
			DateEnd:   "2024-12-31",
		},
		Geography: GeographyConfig{
			TargetRows: 200,
		},
		Customers: CustomersConfig{
			TotalCustomers:   10000,
			PctOrganizations: 0.10,
		},
		Stores: StoresConfig{
			NumStores:    200,
			OpeningStart: "2018-01-01",
			OpeningEnd:   "2023-01-31",
			ClosingEnd:   "2025-12-31",
		},
		Promotions: PromotionsConfig{
			NumSeasonal:  6,
			NumClearance: 3,
			NumLimited:   3,
		},
		Dates: DatesConfig{
			FiscalMonthOffset: 0,
		},
		ExchangeRates: ExchangeRatesConfig{
			BaseCurrency: "USD",
			Currencies:   []string{"USD", "EUR", "INR", "GBP", "CAD", "AUD"},
			Volatility:   0.02,
		},
		Products: ProductsConfig{
			NumProducts: 2000,
			MinPrice:    2.0,
			MaxPrice:    1500.0,
			CostMargin:  0.55,
		},
		Sales: SalesConfig{
			TotalRows:        1000000,
			ChunkSize:        250000,
			Workers:          0,
			FileFormat:       "parquet",
			AvgLinesPerOrder: 2.0,
			CalendarProfile:  "retail",
			RowGroupSize:     200000,
			Compression:      "snappy",
			Pricing: PricingPolicy{
				Mode:               "random",
				BucketSize:         0.25,
				UnitBucketSize:     1.00,
				DiscountBucketSize: 0.50,
				MinMarginPct:       0.05,
				DecimalsMode:       "off",
				DecimalsScale:      0.02,
				MinPrice:           0.01,
				MaxPrice:           10000.0,
			},
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-datagen.yaml
// 3. ~/.config/pgedge-datagen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-datagen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-datagen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// DateRange returns the parsed defaults date window.
func (c *Config) DateRange() (time.Time, time.Time, error) {
	start, err := time.Parse(DateFormat, c.Defaults.DateStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid defaults.date_start: %w", err)
	}
	end, err := time.Parse(DateFormat, c.Defaults.DateEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid defaults.date_end: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("defaults.date_end %s precedes date_start %s",
			c.Defaults.DateEnd, c.Defaults.DateStart)
	}
	return start, end, nil
}

// DimsDir returns the folder holding dimension parquet files.
func (c *Config) DimsDir() string {
	return filepath.Join(c.OutputDir, "dims")
}

// FactsDir returns the folder holding fact chunk files.
func (c *Config) FactsDir() string {
	return filepath.Join(c.OutputDir, "facts")
}

// Validate checks that required configuration is present and coherent.
// It must pass before any generation starts.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	if c.Geography.TargetRows < 1 {
		return fmt.Errorf("geography.target_rows must be at least 1")
	}
	if c.Customers.TotalCustomers < 1 {
		return fmt.Errorf("customers.total_customers must be at least 1")
	}
	if c.Stores.NumStores < 1 {
		return fmt.Errorf("stores.num_stores must be at least 1")
	}
	if len(c.ExchangeRates.Currencies) == 0 {
		return fmt.Errorf("exchange_rates.currencies must not be empty")
	}
	if c.Products.NumProducts < 1 {
		return fmt.Errorf("products.num_products must be at least 1")
	}
	if c.Products.MaxPrice < c.Products.MinPrice {
		return fmt.Errorf("products.max_price must be >= products.min_price")
	}
	return c.ValidateSales()
}

// ValidateSales checks configuration required for fact synthesis.
func (c *Config) ValidateSales() error {
	s := c.Sales
	if s.TotalRows < 1 {
		return fmt.Errorf("sales.total_rows must be at least 1")
	}
	if s.ChunkSize < 1 {
		return fmt.Errorf("sales.chunk_size must be at least 1")
	}
	if s.Workers < 0 {
		return fmt.Errorf("sales.workers must be non-negative")
	}
	switch s.FileFormat {
	case "csv", "parquet", "deltaparquet":
	default:
		return fmt.Errorf("sales.file_format must be csv, parquet or deltaparquet")
	}
	if s.AvgLinesPerOrder <= 0 {
		return fmt.Errorf("sales.avg_lines_per_order must be positive")
	}
	switch s.CalendarProfile {
	case "uniform", "retail", "office", "seasonal":
	default:
		return fmt.Errorf("sales.calendar_profile must be uniform, retail, office or seasonal")
	}
	return s.Pricing.Validate()
}

// Validate checks pricing policy coherence.
func (p PricingPolicy) Validate() error {
	switch p.Mode {
	case "random", "bucketed", "discrete", "ladder":
	default:
		return fmt.Errorf("pricing.mode must be random, bucketed, discrete or ladder")
	}
	switch p.DecimalsMode {
	case "off", "micro", "strict":
	default:
		return fmt.Errorf("pricing.decimals_mode must be off, micro or strict")
	}
	if p.Mode == "bucketed" && p.BucketSize <= 0 {
		return fmt.Errorf("pricing.bucket_size must be positive in bucketed mode")
	}
	if p.Mode == "discrete" && (p.UnitBucketSize <= 0 || p.DiscountBucketSize <= 0) {
		return fmt.Errorf("pricing.unit_bucket_size and discount_bucket_size must be positive in discrete mode")
	}
	if p.EnforceMinMargin && p.MinMarginPct < 0 {
		return fmt.Errorf("pricing.min_margin_pct must be non-negative")
	}
	if p.MinPrice <= 0 {
		return fmt.Errorf("pricing.min_price must be positive")
	}
	if p.MaxPrice < p.MinPrice {
		return fmt.Errorf("pricing.max_price must be >= pricing.min_price")
	}
	return nil
}
