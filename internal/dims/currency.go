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

	"github.com/pgEdge/pgedge-datagen/internal/config"
)

var currencyNames = map[string]string{
	"USD": "US Dollar",
	"CAD": "Canadian Dollar",
	"GBP": "British Pound",
	"EUR": "Euro",
	"INR": "Indian Rupee",
	"AUD": "Australian Dollar",
	"JPY": "Japanese Yen",
	"CHF": "Swiss Franc",
	"CNY": "Chinese Yuan",
	"BRL": "Brazilian Real",
	"MXN": "Mexican Peso",
	"SEK": "Swedish Krona",
	"NOK": "Norwegian Krone",
	"SGD": "Singapore Dollar",
	"NZD": "New Zealand Dollar",
}

type currencyGenerator struct{}

type currencyParams struct {
	BaseCurrency string   `json:"base_currency"`
	Currencies   []string `json:"currencies"`
}

func init() {
	Register(&currencyGenerator{})
}

func (g *currencyGenerator) Name() string        { return "currency" }
func (g *currencyGenerator) DependsOn() []string { return nil }

func (g *currencyGenerator) Params(cfg *config.Config) any {
	return currencyParams{
		BaseCurrency: cfg.ExchangeRates.BaseCurrency,
		Currencies:   cfg.ExchangeRates.Currencies,
	}
}

func (g *currencyGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *currencyGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	isos := make([]string, 0, len(cfg.ExchangeRates.Currencies)+1)
	seen := make(map[string]bool)

	// Base currency always gets key 1.
	for _, iso := range append([]string{cfg.ExchangeRates.BaseCurrency}, cfg.ExchangeRates.Currencies...) {
		if !seen[iso] {
			seen[iso] = true
			isos = append(isos, iso)
		}
	}

	rows := make([]CurrencyRow, 0, len(isos))
	for i, iso := range isos {
		name, ok := currencyNames[iso]
		if !ok {
			return 0, fmt.Errorf("unknown currency code %q", iso)
		}
		rows = append(rows, CurrencyRow{
			CurrencyKey:  int64(i + 1),
			ISOCode:      iso,
			CurrencyName: name,
		})
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
