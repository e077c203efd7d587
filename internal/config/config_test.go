package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.OutputDir != "generated" {
		t.Errorf("Expected OutputDir 'generated', got '%s'", cfg.OutputDir)
	}
	if cfg.Defaults.Seed != 42 {
		t.Errorf("Expected Defaults.Seed 42, got %d", cfg.Defaults.Seed)
	}

	// Sales defaults
	if cfg.Sales.TotalRows != 1000000 {
		t.Errorf("Expected Sales.TotalRows 1000000, got %d", cfg.Sales.TotalRows)
	}
	if cfg.Sales.ChunkSize != 250000 {
		t.Errorf("Expected Sales.ChunkSize 250000, got %d", cfg.Sales.ChunkSize)
	}
	if cfg.Sales.FileFormat != "parquet" {
		t.Errorf("Expected Sales.FileFormat 'parquet', got '%s'", cfg.Sales.FileFormat)
	}
	if cfg.Sales.AvgLinesPerOrder != 2.0 {
		t.Errorf("Expected Sales.AvgLinesPerOrder 2.0, got %f", cfg.Sales.AvgLinesPerOrder)
	}

	// Pricing defaults
	if cfg.Sales.Pricing.Mode != "random" {
		t.Errorf("Expected Pricing.Mode 'random', got '%s'", cfg.Sales.Pricing.Mode)
	}
	if cfg.Sales.Pricing.DecimalsMode != "off" {
		t.Errorf("Expected Pricing.DecimalsMode 'off', got '%s'", cfg.Sales.Pricing.DecimalsMode)
	}

	// Defaults must validate as-is
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config { return DefaultConfig() }

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "valid defaults",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "missing output dir",
			mutate:    func(c *Config) { c.OutputDir = "" },
			wantError: true,
		},
		{
			name:      "bad date range order",
			mutate:    func(c *Config) { c.Defaults.DateStart = "2025-01-01"; c.Defaults.DateEnd = "2024-01-01" },
			wantError: true,
		},
		{
			name:      "unparseable date",
			mutate:    func(c *Config) { c.Defaults.DateStart = "January 1st" },
			wantError: true,
		},
		{
			name:      "no currencies",
			mutate:    func(c *Config) { c.ExchangeRates.Currencies = nil },
			wantError: true,
		},
		{
			name:      "zero products",
			mutate:    func(c *Config) { c.Products.NumProducts = 0 },
			wantError: true,
		},
		{
			name:      "zero total rows",
			mutate:    func(c *Config) { c.Sales.TotalRows = 0 },
			wantError: true,
		},
		{
			name:      "zero chunk size",
			mutate:    func(c *Config) { c.Sales.ChunkSize = 0 },
			wantError: true,
		},
		{
			name:      "unknown file format",
			mutate:    func(c *Config) { c.Sales.FileFormat = "orc" },
			wantError: true,
		},
		{
			name:      "negative workers",
			mutate:    func(c *Config) { c.Sales.Workers = -1 },
			wantError: true,
		},
		{
			name:      "zero avg lines per order",
			mutate:    func(c *Config) { c.Sales.AvgLinesPerOrder = 0 },
			wantError: true,
		},
		{
			name:      "unknown calendar profile",
			mutate:    func(c *Config) { c.Sales.CalendarProfile = "lunar" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestPricingPolicyValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PricingPolicy)
		wantError bool
	}{
		{
			name:      "defaults",
			mutate:    func(p *PricingPolicy) {},
			wantError: false,
		},
		{
			name:      "ladder mode",
			mutate:    func(p *PricingPolicy) { p.Mode = "ladder" },
			wantError: false,
		},
		{
			name:      "unknown mode",
			mutate:    func(p *PricingPolicy) { p.Mode = "chaotic" },
			wantError: true,
		},
		{
			name:      "unknown decimals mode",
			mutate:    func(p *PricingPolicy) { p.DecimalsMode = "nano" },
			wantError: true,
		},
		{
			name:      "bucketed without bucket size",
			mutate:    func(p *PricingPolicy) { p.Mode = "bucketed"; p.BucketSize = 0 },
			wantError: true,
		},
		{
			name:      "discrete without unit bucket",
			mutate:    func(p *PricingPolicy) { p.Mode = "discrete"; p.UnitBucketSize = 0 },
			wantError: true,
		},
		{
			name:      "max below min price",
			mutate:    func(p *PricingPolicy) { p.MinPrice = 5; p.MaxPrice = 1 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultConfig().Sales.Pricing
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
