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

type customersGenerator struct{}

type customersParams struct {
	TotalCustomers   int     `json:"total_customers"`
	PctOrganizations float64 `json:"pct_organizations"`
	Seed             int64   `json:"seed"`
}

func init() {
	Register(&customersGenerator{})
}

func (g *customersGenerator) Name() string        { return "customers" }
func (g *customersGenerator) DependsOn() []string { return []string{"geography"} }

func (g *customersGenerator) Params(cfg *config.Config) any {
	return customersParams{
		TotalCustomers:   cfg.Customers.TotalCustomers,
		PctOrganizations: cfg.Customers.PctOrganizations,
		Seed:             cfg.Defaults.Seed,
	}
}

func (g *customersGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *customersGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	geos, err := LoadTable[GeographyRow](dimsDir, "geography")
	if err != nil {
		return 0, err
	}
	if len(geos) == 0 {
		return 0, fmt.Errorf("geography artifact is empty")
	}

	faker := datagen.NewFakerWithSeed(artifactSeed(cfg.Defaults.Seed, g.Name()))
	total := cfg.Customers.TotalCustomers

	rows := make([]CustomerRow, 0, total)
	for i := 0; i < total; i++ {
		row := CustomerRow{
			CustomerKey:  int64(i + 1),
			Email:        faker.Email(),
			Phone:        faker.Phone(),
			GeographyKey: datagen.Choose(faker, geos).GeographyKey,
		}
		if faker.Float64(0, 1) < cfg.Customers.PctOrganizations {
			row.CustomerType = "Organization"
			row.Name = faker.Company()
		} else {
			row.CustomerType = "Person"
			row.Name = faker.FirstName() + " " + faker.LastName()
		}
		rows = append(rows, row)
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
