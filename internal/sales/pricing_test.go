//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sales

import (
	"math"
	"testing"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

func basePolicy() config.PricingPolicy {
	return config.DefaultConfig().Sales.Pricing
}

func checkPriceInvariants(t *testing.T, mode string, p pricedLine) {
	t.Helper()
	if p.UnitCost < 0.01 {
		t.Errorf("mode %s: cost %.4f below 0.01", mode, p.UnitCost)
	}
	if p.UnitCost > p.Net+1e-9 {
		t.Errorf("mode %s: cost %.4f above net %.4f", mode, p.UnitCost, p.Net)
	}
	if p.Net > p.UnitPrice+1e-9 {
		t.Errorf("mode %s: net %.4f above price %.4f", mode, p.Net, p.UnitPrice)
	}
	if p.Discount < 0 || p.Discount > p.UnitPrice+1e-9 {
		t.Errorf("mode %s: discount %.4f outside [0, %.4f]", mode, p.Discount, p.UnitPrice)
	}
}

func TestApplyPricingInvariantsAcrossModes(t *testing.T) {
	modes := []string{"random", "bucketed", "discrete", "ladder"}

	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			pol := basePolicy()
			pol.Mode = mode
			pol.EnforceMinMargin = true

			faker := datagen.NewFakerWithSeed(7)
			for i := 0; i < 2000; i++ {
				price := faker.Float64(0.5, 1500)
				cost := price * faker.Float64(0.3, 0.9)
				promoPct := float64(faker.Int(0, 30))

				p := applyPricing(pol, faker, price, cost, promoPct)
				checkPriceInvariants(t, mode, p)
			}
		})
	}
}

func TestApplyPricingDecimalCosmetics(t *testing.T) {
	for _, mode := range []string{"micro", "strict"} {
		t.Run(mode, func(t *testing.T) {
			pol := basePolicy()
			pol.DecimalsMode = mode

			faker := datagen.NewFakerWithSeed(11)
			for i := 0; i < 500; i++ {
				price := faker.Float64(1, 800)
				p := applyPricing(pol, faker, price, price*0.5, 0)
				checkPriceInvariants(t, mode, p)
			}
		})
	}
}

func isMultipleOf(v, bucket float64) bool {
	r := math.Mod(v, bucket)
	return r < 1e-6 || bucket-r < 1e-6
}

func TestBucketedModeProducesBucketMultiples(t *testing.T) {
	pol := basePolicy()
	pol.Mode = "bucketed"
	pol.BucketSize = 0.25
	pol.EnforceMinMargin = false
	pol.DecimalsMode = "off"
	pol.RetailEndings = false

	faker := datagen.NewFakerWithSeed(3)
	for i := 0; i < 1000; i++ {
		price := faker.Float64(2, 1500)
		p := applyPricing(pol, faker, price, price*0.5, float64(faker.Int(0, 30)))

		if !isMultipleOf(p.UnitPrice, 0.25) {
			t.Fatalf("unit price %.4f not a multiple of 0.25", p.UnitPrice)
		}
		if !isMultipleOf(p.Discount, 0.25) {
			t.Fatalf("discount %.4f not a multiple of 0.25", p.Discount)
		}
	}
}

func TestApplyPricingDiscountCap(t *testing.T) {
	pol := basePolicy()

	faker := datagen.NewFakerWithSeed(5)
	for i := 0; i < 1000; i++ {
		price := faker.Float64(1, 1000)
		// Promotion percentage far above the cap.
		p := applyPricing(pol, faker, price, price*0.4, 95)
		if p.Discount > price*maxDiscountFraction+1e-6 {
			t.Fatalf("discount %.4f exceeds 30%% of price %.4f", p.Discount, price)
		}
	}
}

func TestApplyPricingHardClamps(t *testing.T) {
	pol := basePolicy()
	pol.MaxPrice = 100

	faker := datagen.NewFakerWithSeed(13)
	p := applyPricing(pol, faker, 5000, 2500, 0)
	if p.UnitPrice > 100 {
		t.Errorf("unit price %.4f above max clamp", p.UnitPrice)
	}
	if p.Net > 100 {
		t.Errorf("net %.4f above max clamp", p.Net)
	}
	checkPriceInvariants(t, "clamped", p)
}

func TestApplyPricingIsDeterministic(t *testing.T) {
	pol := basePolicy()
	pol.Mode = "ladder"

	a := datagen.NewFakerWithSeed(21)
	b := datagen.NewFakerWithSeed(21)
	for i := 0; i < 200; i++ {
		pa := applyPricing(pol, a, 99.99, 55.0, 10)
		pb := applyPricing(pol, b, 99.99, 55.0, 10)
		if pa != pb {
			t.Fatalf("iteration %d: %+v != %+v", i, pa, pb)
		}
	}
}
