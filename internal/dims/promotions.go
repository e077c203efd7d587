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

type promotionsGenerator struct{}

type promotionsParams struct {
	NumSeasonal  int    `json:"num_seasonal"`
	NumClearance int    `json:"num_clearance"`
	NumLimited   int    `json:"num_limited"`
	DateStart    string `json:"date_start"`
	DateEnd      string `json:"date_end"`
	Seed         int64  `json:"seed"`
}

func init() {
	Register(&promotionsGenerator{})
}

func (g *promotionsGenerator) Name() string        { return "promotions" }
func (g *promotionsGenerator) DependsOn() []string { return nil }

func (g *promotionsGenerator) Params(cfg *config.Config) any {
	return promotionsParams{
		NumSeasonal:  cfg.Promotions.NumSeasonal,
		NumClearance: cfg.Promotions.NumClearance,
		NumLimited:   cfg.Promotions.NumLimited,
		DateStart:    cfg.Defaults.DateStart,
		DateEnd:      cfg.Defaults.DateEnd,
		Seed:         cfg.Defaults.Seed,
	}
}

func (g *promotionsGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

func (g *promotionsGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	start, end, err := cfg.DateRange()
	if err != nil {
		return 0, err
	}

	faker := datagen.NewFakerWithSeed(artifactSeed(cfg.Defaults.Seed, g.Name()))

	// Sentinel first so PromotionKey == NoDiscountKey always exists.
	rows := []PromotionRow{{
		PromotionKey:  NoDiscountKey,
		PromotionName: "No Discount",
		PromotionType: "None",
		DiscountPct:   0,
		ValidStart:    start,
		ValidEnd:      end,
	}}

	key := NoDiscountKey + 1

	type kind struct {
		name        string
		count       int
		minPct      float64
		maxPct      float64
		minDuration int // days
		maxDuration int
	}
	kinds := []kind{
		{"Seasonal", cfg.Promotions.NumSeasonal, 5, 20, 14, 45},
		{"Clearance", cfg.Promotions.NumClearance, 15, 30, 7, 21},
		{"Limited", cfg.Promotions.NumLimited, 10, 25, 2, 7},
	}

	for year := start.Year(); year <= end.Year(); year++ {
		// Clamp each calendar year window to the global date range.
		yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
		if yearStart.Before(start) {
			yearStart = start
		}
		if yearEnd.After(end) {
			yearEnd = end
		}

		for _, k := range kinds {
			for i := 0; i < k.count; i++ {
				validStart := faker.DateRange(yearStart, yearEnd)
				duration := faker.Int(k.minDuration, k.maxDuration)
				validEnd := validStart.AddDate(0, 0, duration)
				if validEnd.After(yearEnd) {
					validEnd = yearEnd
				}

				rows = append(rows, PromotionRow{
					PromotionKey:  key,
					PromotionName: fmt.Sprintf("%s %s %d", k.name, faker.Word(), year),
					PromotionType: k.name,
					DiscountPct:   float64(faker.Int(int(k.minPct), int(k.maxPct))),
					ValidStart:    validStart,
					ValidEnd:      validEnd,
				})
				key++
			}
		}
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
