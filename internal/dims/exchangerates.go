//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dims

import (
	"context"
	"fmt"
	"math"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

// Baseline rates from USD, used as random-walk starting points.
var baselineRates = map[string]float64{
	"USD": 1.0,
	"CAD": 1.36,
	"GBP": 0.79,
	"EUR": 0.92,
	"INR": 83.2,
	"AUD": 1.52,
	"JPY": 149.5,
	"CHF": 0.88,
	"CNY": 7.24,
	"BRL": 4.97,
	"MXN": 17.1,
	"SEK": 10.4,
	"NOK": 10.6,
	"SGD": 1.34,
	"NZD": 1.63,
}

type exchangeRatesGenerator struct{}

type exchangeRatesParams struct {
	BaseCurrency string   `json:"base_currency"`
	Currencies   []string `json:"currencies"`
	Volatility   float64  `json:"volatility"`
	DateStart    string   `json:"date_start"`
	DateEnd      string   `json:"date_end"`
	Seed         int64    `json:"seed"`
}

func init() {
	Register(&exchangeRatesGenerator{})
}

func (g *exchangeRatesGenerator) Name() string        { return "exchange_rates" }
func (g *exchangeRatesGenerator) DependsOn() []string { return []string{"currency"} }

func (g *exchangeRatesGenerator) Params(cfg *config.Config) any {
	return exchangeRatesParams{
		BaseCurrency: cfg.ExchangeRates.BaseCurrency,
		Currencies:   cfg.ExchangeRates.Currencies,
		Volatility:   cfg.ExchangeRates.Volatility,
		DateStart:    cfg.Defaults.DateStart,
		DateEnd:      cfg.Defaults.DateEnd,
		Seed:         cfg.Defaults.Seed,
	}
}

func (g *exchangeRatesGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *exchangeRatesGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	currencies, err := LoadTable[CurrencyRow](dimsDir, "currency")
	if err != nil {
		return 0, err
	}

	start, end, err := cfg.DateRange()
	if err != nil {
		return 0, err
	}

	base := cfg.ExchangeRates.BaseCurrency
	faker := datagen.NewFakerWithSeed(artifactSeed(cfg.Defaults.Seed, g.Name()))

	var rows []ExchangeRateRow
	for _, cur := range currencies {
		if cur.ISOCode == base {
			continue
		}
		rate, ok := baselineRates[cur.ISOCode]
		if !ok {
			return 0, fmt.Errorf("no baseline rate for currency %q", cur.ISOCode)
		}
		baseRate, ok := baselineRates[base]
		if !ok {
			return 0, fmt.Errorf("no baseline rate for base currency %q", base)
		}
		rate /= baseRate

		// Daily geometric random walk around the baseline.
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			rate *= 1 + faker.Norm(0, cfg.ExchangeRates.Volatility)
			rows = append(rows, ExchangeRateRow{
				Date:         d,
				FromCurrency: base,
				ToCurrency:   cur.ISOCode,
				ExchangeRate: math.Round(rate*1e6) / 1e6,
			})
		}
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
