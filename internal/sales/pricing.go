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

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

// maxDiscountFraction caps any discount at 30% of unit price.
const maxDiscountFraction = 0.30

// Ladder mode tiers: mostly no discount, shrinking percentage tiers and
// two rare flat-dollar tiers.
var (
	ladderPcts    = []float64{0, 5, 10, 15, 20, 25, 30, -5, -10}
	ladderWeights = []float64{0.60, 0.12, 0.09, 0.07, 0.05, 0.03, 0.02, 0.015, 0.005}

	drawPcts    = []float64{0, 5, 10, 15, 20, 25}
	drawWeights = []float64{0.60, 0.15, 0.10, 0.07, 0.05, 0.03}
)

// pricedLine is the output of the pricing pipeline for one fact line.
type pricedLine struct {
	UnitPrice float64
	UnitCost  float64
	Discount  float64
	Net       float64
}

// applyPricing runs the full pricing pipeline for one line: discount
// selection, structural rounding, margin protection, cosmetics, clamps,
// re-derivation and a single final 4-decimal quantization. Edge cases
// resolve to clamped values, never errors.
func applyPricing(pol config.PricingPolicy, faker *datagen.Faker, unitPrice, unitCost, promoPct float64) pricedLine {
	// Discount selection. The draw always happens so the random stream
	// advances identically whether or not a promotion applies; the
	// effective discount is the better of the two, capped.
	drawn := drawDiscount(pol, faker, unitPrice)
	promo := unitPrice * promoPct / 100
	discount := math.Max(drawn, promo)
	if limit := unitPrice * maxDiscountFraction; discount > limit {
		discount = limit
	}

	// Structural rounding.
	switch pol.Mode {
	case "bucketed":
		unitPrice = roundTo(unitPrice, pol.BucketSize)
		discount = roundTo(discount, pol.BucketSize)
		unitCost = bucketCost(unitCost, pol.BucketSize)
	case "discrete":
		unitPrice = roundTo(unitPrice, pol.UnitBucketSize)
		discount = roundTo(discount, pol.DiscountBucketSize)
		unitCost = bucketCost(unitCost, pol.UnitBucketSize)
	}
	if discount > unitPrice {
		discount = unitPrice
	}
	net := unitPrice - discount

	// Margin protection.
	if pol.EnforceMinMargin {
		if floor := unitCost * (1 + pol.MinMarginPct); net < floor {
			net = floor
		}
	}

	// Cosmetics. Retail endings force .99/.95; micro jitter is derived
	// from the value itself so it never consumes random state.
	if pol.RetailEndings || pol.DecimalsMode == "strict" {
		net = retailEnding(net)
	}
	if pol.DecimalsMode == "micro" {
		net += (math.Mod(net*100, 7) - 3) * pol.DecimalsScale
	}

	// Hard clamps.
	lo := pol.MinPrice
	if lo < 0.01 {
		lo = 0.01
	}
	net = clamp(net, lo, pol.MaxPrice)
	unitPrice = clamp(unitPrice, lo, pol.MaxPrice)

	// Re-derivation keeps the invariants 0.01 <= cost <= net <= price
	// and 0 <= discount <= price whatever the stages above did.
	if net > unitPrice {
		net = unitPrice
	}
	discount = clamp(unitPrice-net, 0, unitPrice)
	unitCost = math.Min(unitCost, net)
	if unitCost < 0.01 {
		unitCost = 0.01
	}

	return pricedLine{
		UnitPrice: quantize4(unitPrice),
		UnitCost:  quantize4(unitCost),
		Discount:  quantize4(discount),
		Net:       quantize4(net),
	}
}

// drawDiscount draws a discount amount for one line. Ladder mode uses
// the tier table (negative entries are flat-dollar tiers); every other
// mode uses the simple weighted-percentage draw.
func drawDiscount(pol config.PricingPolicy, faker *datagen.Faker, unitPrice float64) float64 {
	if pol.Mode == "ladder" {
		tier := datagen.ChooseWeightedF(faker, ladderPcts, ladderWeights)
		if tier < 0 {
			return -tier // flat dollars, capped by the caller
		}
		return unitPrice * tier / 100
	}
	pct := datagen.ChooseWeightedF(faker, drawPcts, drawWeights)
	return unitPrice * pct / 100
}

// bucketCost floors cost to the bucket, never below one bucket.
func bucketCost(cost, bucket float64) float64 {
	c := math.Floor(cost/bucket) * bucket
	if c < bucket {
		c = bucket
	}
	return c
}

func roundTo(v, bucket float64) float64 {
	return math.Round(v/bucket) * bucket
}

// retailEnding forces a .99 or .95 fractional ending, picked from the
// value itself to stay deterministic.
func retailEnding(v float64) float64 {
	whole := math.Floor(v)
	if v-whole >= 0.5 {
		return whole + 0.99
	}
	return whole + 0.95
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// quantize4 is the single final fixed-precision step.
func quantize4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
