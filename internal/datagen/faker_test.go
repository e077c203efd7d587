//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"testing"
	"time"
)

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerDateRange(t *testing.T) {
	f := NewFakerWithSeed(7)
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := f.DateRange(start, end)
		if d.Before(start) || d.After(end) {
			t.Errorf("Date %v outside range [%v, %v]", d, start, end)
		}
	}
}

func TestFakerPrice(t *testing.T) {
	f := NewFakerWithSeed(7)
	for i := 0; i < 100; i++ {
		p := f.Price(2.0, 1500.0)
		if p < 2.0 || p > 1500.0 {
			t.Errorf("Price %f outside range", p)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []string{"a", "b", "c"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		seen[v] = true
	}
	for _, it := range items {
		if !seen[it] {
			t.Errorf("Choose never returned %q in 100 draws", it)
		}
	}

	var empty []string
	if v := Choose(f, empty); v != "" {
		t.Errorf("Choose on empty slice returned %q, want zero value", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []int{1, 2}
	weights := []int{99, 1}

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}
	if counts[1] < counts[2] {
		t.Errorf("Heavily weighted item drawn less often: %v", counts)
	}
}

func TestChooseWeightedF(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []int{1, 2, 3, 4, 5}
	weights := []float64{0.55, 0.25, 0.10, 0.06, 0.04}

	counts := make(map[int]int)
	for i := 0; i < 5000; i++ {
		v := ChooseWeightedF(f, items, weights)
		if v < 1 || v > 5 {
			t.Fatalf("ChooseWeightedF returned %d, outside items", v)
		}
		counts[v]++
	}
	if counts[1] < counts[5] {
		t.Errorf("Expected 1 to dominate 5, got %v", counts)
	}
}
