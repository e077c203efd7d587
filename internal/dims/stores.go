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
	"time"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

var (
	storeTypes       = []string{"Supermarket", "Convenience", "Online", "Hypermarket"}
	storeTypeWeights = []int{50, 30, 10, 10}

	storeStatuses      = []string{"Open", "Closed", "Renovating"}
	storeStatusWeights = []int{85, 10, 5}
)

type storesGenerator struct{}

type storesParams struct {
	NumStores    int    `json:"num_stores"`
	OpeningStart string `json:"opening_start"`
	OpeningEnd   string `json:"opening_end"`
	ClosingEnd   string `json:"closing_end"`
	Seed         int64  `json:"seed"`
}

func init() {
	Register(&storesGenerator{})
}

func (g *storesGenerator) Name() string        { return "stores" }
func (g *storesGenerator) DependsOn() []string { return []string{"geography"} }

func (g *storesGenerator) Params(cfg *config.Config) any {
	return storesParams{
		NumStores:    cfg.Stores.NumStores,
		OpeningStart: cfg.Stores.OpeningStart,
		OpeningEnd:   cfg.Stores.OpeningEnd,
		ClosingEnd:   cfg.Stores.ClosingEnd,
		Seed:         cfg.Defaults.Seed,
	}
}

func (g *storesGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *storesGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	geos, err := LoadTable[GeographyRow](dimsDir, "geography")
	if err != nil {
		return 0, err
	}
	if len(geos) == 0 {
		return 0, fmt.Errorf("geography artifact is empty")
	}

	openStart, err := time.Parse(config.DateFormat, cfg.Stores.OpeningStart)
	if err != nil {
		return 0, fmt.Errorf("invalid stores.opening_start: %w", err)
	}
	openEnd, err := time.Parse(config.DateFormat, cfg.Stores.OpeningEnd)
	if err != nil {
		return 0, fmt.Errorf("invalid stores.opening_end: %w", err)
	}
	closeEnd, err := time.Parse(config.DateFormat, cfg.Stores.ClosingEnd)
	if err != nil {
		return 0, fmt.Errorf("invalid stores.closing_end: %w", err)
	}

	faker := datagen.NewFakerWithSeed(artifactSeed(cfg.Defaults.Seed, g.Name()))

	rows := make([]StoreRow, 0, cfg.Stores.NumStores)
	for i := 0; i < cfg.Stores.NumStores; i++ {
		key := int64(i + 1)
		row := StoreRow{
			StoreKey:      key,
			StoreName:     fmt.Sprintf("Store #%04d", key),
			StoreType:     datagen.ChooseWeighted(faker, storeTypes, storeTypeWeights),
			Status:        datagen.ChooseWeighted(faker, storeStatuses, storeStatusWeights),
			GeographyKey:  datagen.Choose(faker, geos).GeographyKey,
			OpeningDate:   faker.DateRange(openStart, openEnd),
			SquareFootage: int32(faker.Int(2000, 10000)),
			EmployeeCount: int32(faker.Int(10, 120)),
		}

		// Closing can only happen after opening.
		if row.Status == "Closed" {
			closing := faker.DateRange(row.OpeningDate, closeEnd)
			row.ClosingDate = &closing
		}
		rows = append(rows, row)
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
