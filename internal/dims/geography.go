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
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

// Curated anchor cities. Extra rows beyond this list get synthetic city
// names attached to one of these country/currency combinations.
var curatedGeographies = []GeographyRow{
	{City: "New York", State: "NY", Country: "United States", Continent: "North America", ISOCode: "USD"},
	{City: "Los Angeles", State: "CA", Country: "United States", Continent: "North America", ISOCode: "USD"},
	{City: "Chicago", State: "IL", Country: "United States", Continent: "North America", ISOCode: "USD"},
	{City: "Houston", State: "TX", Country: "United States", Continent: "North America", ISOCode: "USD"},
	{City: "Miami", State: "FL", Country: "United States", Continent: "North America", ISOCode: "USD"},
	{City: "Toronto", State: "ON", Country: "Canada", Continent: "North America", ISOCode: "CAD"},
	{City: "Vancouver", State: "BC", Country: "Canada", Continent: "North America", ISOCode: "CAD"},
	{City: "Montreal", State: "QC", Country: "Canada", Continent: "North America", ISOCode: "CAD"},
	{City: "London", State: "London", Country: "United Kingdom", Continent: "Europe", ISOCode: "GBP"},
	{City: "Manchester", State: "Manchester", Country: "United Kingdom", Continent: "Europe", ISOCode: "GBP"},
	{City: "Berlin", State: "Berlin", Country: "Germany", Continent: "Europe", ISOCode: "EUR"},
	{City: "Munich", State: "Bavaria", Country: "Germany", Continent: "Europe", ISOCode: "EUR"},
	{City: "Paris", State: "Ile-de-France", Country: "France", Continent: "Europe", ISOCode: "EUR"},
	{City: "Lyon", State: "Auvergne-Rhone-Alpes", Country: "France", Continent: "Europe", ISOCode: "EUR"},
	{City: "Mumbai", State: "MH", Country: "India", Continent: "Asia", ISOCode: "INR"},
	{City: "Delhi", State: "DL", Country: "India", Continent: "Asia", ISOCode: "INR"},
	{City: "Bengaluru", State: "KA", Country: "India", Continent: "Asia", ISOCode: "INR"},
	{City: "Sydney", State: "NSW", Country: "Australia", Continent: "Oceania", ISOCode: "AUD"},
	{City: "Melbourne", State: "VIC", Country: "Australia", Continent: "Oceania", ISOCode: "AUD"},
}

type geographyGenerator struct{}

type geographyParams struct {
	TargetRows int      `json:"target_rows"`
	Currencies []string `json:"currencies"`
	Seed       int64    `json:"seed"`
}

func init() {
	Register(&geographyGenerator{})
}

func (g *geographyGenerator) Name() string        { return "geography" }
func (g *geographyGenerator) DependsOn() []string { return nil }

func (g *geographyGenerator) Params(cfg *config.Config) any {
	return geographyParams{
		TargetRows: cfg.Geography.TargetRows,
		Currencies: cfg.ExchangeRates.Currencies,
		Seed:       cfg.Defaults.Seed,
	}
}

func (g *geographyGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *geographyGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	allowed := make(map[string]bool, len(cfg.ExchangeRates.Currencies))
	for _, iso := range cfg.ExchangeRates.Currencies {
		allowed[iso] = true
	}

	var anchors []GeographyRow
	for _, row := range curatedGeographies {
		if allowed[row.ISOCode] {
			anchors = append(anchors, row)
		}
	}
	if len(anchors) == 0 {
		return 0, fmt.Errorf("no geography rows remain after filtering by allowed currencies %v",
			cfg.ExchangeRates.Currencies)
	}

	faker := datagen.NewFakerWithSeed(artifactSeed(cfg.Defaults.Seed, g.Name()))
	target := cfg.Geography.TargetRows

	rows := make([]GeographyRow, 0, target)
	for i := 0; i < target; i++ {
		var row GeographyRow
		if i < len(anchors) {
			row = anchors[i]
		} else {
			// Synthetic city in one of the anchor regions.
			row = datagen.Choose(faker, anchors)
			row.City = faker.City()
		}
		row.GeographyKey = int64(i + 1)
		rows = append(rows, row)
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
