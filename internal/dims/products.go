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
	"math"
	"strings"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

var productCategories = []string{
	"Electronics", "Grocery", "Apparel", "Home & Garden",
	"Toys", "Sports", "Health & Beauty", "Automotive",
}

type productsGenerator struct{}

type productsParams struct {
	NumProducts int     `json:"num_products"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	CostMargin  float64 `json:"cost_margin"`
	Seed        int64   `json:"seed"`
}

func init() {
	Register(&productsGenerator{})
}

func (g *productsGenerator) Name() string        { return "products" }
func (g *productsGenerator) DependsOn() []string { return nil }

func (g *productsGenerator) Params(cfg *config.Config) any {
	return productsParams{
		NumProducts: cfg.Products.NumProducts,
		MinPrice:    cfg.Products.MinPrice,
		MaxPrice:    cfg.Products.MaxPrice,
		CostMargin:  cfg.Products.CostMargin,
		Seed:        cfg.Defaults.Seed,
	}
}

func (g *productsGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *productsGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	faker := datagen.NewFakerWithSeed(artifactSeed(cfg.Defaults.Seed, g.Name()))

	rows := make([]ProductRow, 0, cfg.Products.NumProducts)
	for i := 0; i < cfg.Products.NumProducts; i++ {
		price := faker.Price(cfg.Products.MinPrice, cfg.Products.MaxPrice)

		// Cost sits below price by the configured margin, with a little
		// per-product spread.
		margin := cfg.Products.CostMargin + faker.Float64(-0.05, 0.05)
		if margin < 0.05 {
			margin = 0.05
		}
		cost := math.Round(price*(1-margin)*100) / 100
		if cost < 0.01 {
			cost = 0.01
		}

		rows = append(rows, ProductRow{
			ProductKey:  int64(i + 1),
			ProductName: faker.ProductName(),
			Category:    datagen.Choose(faker, productCategories),
			Brand:       brandName(faker),
			UnitPrice:   price,
			UnitCost:    cost,
		})
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func brandName(faker *datagen.Faker) string {
	w := faker.Word()
	if w == "" {
		return "Generic"
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
