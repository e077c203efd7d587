//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sales

import "testing"

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		totalRows int64
		chunkSize int64
		wantSizes []int64
	}{
		{
			name:      "even split",
			totalRows: 100,
			chunkSize: 25,
			wantSizes: []int64{25, 25, 25, 25},
		},
		{
			name:      "last chunk absorbs remainder",
			totalRows: 103,
			chunkSize: 25,
			wantSizes: []int64{25, 25, 25, 25, 3},
		},
		{
			name:      "total smaller than chunk yields one chunk",
			totalRows: 10,
			chunkSize: 250000,
			wantSizes: []int64{10},
		},
		{
			name:      "single row",
			totalRows: 1,
			chunkSize: 1,
			wantSizes: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Plan(tt.totalRows, tt.chunkSize, 42)
			if len(chunks) != len(tt.wantSizes) {
				t.Fatalf("got %d chunks, want %d", len(chunks), len(tt.wantSizes))
			}

			var sum int64
			for i, c := range chunks {
				if c.Index != i {
					t.Errorf("chunk %d has index %d", i, c.Index)
				}
				if c.Rows != tt.wantSizes[i] {
					t.Errorf("chunk %d rows = %d, want %d", i, c.Rows, tt.wantSizes[i])
				}
				sum += c.Rows
			}
			if sum != tt.totalRows {
				t.Errorf("chunk sizes sum to %d, want %d", sum, tt.totalRows)
			}
		})
	}
}

func TestPlanInvalidInput(t *testing.T) {
	if got := Plan(0, 10, 42); got != nil {
		t.Errorf("Plan(0, 10) = %v, want nil", got)
	}
	if got := Plan(10, 0, 42); got != nil {
		t.Errorf("Plan(10, 0) = %v, want nil", got)
	}
}

func TestChunkSeedIsPure(t *testing.T) {
	a := Plan(1000, 100, 42)
	b := Plan(1000, 100, 42)
	for i := range a {
		if a[i].Seed != b[i].Seed {
			t.Errorf("chunk %d seed not reproducible", i)
		}
	}

	seen := make(map[uint64]int)
	for _, c := range a {
		if prev, ok := seen[c.Seed]; ok {
			t.Errorf("chunks %d and %d share a seed", prev, c.Index)
		}
		seen[c.Seed] = c.Index
	}

	other := Plan(1000, 100, 43)
	if a[0].Seed == other[0].Seed {
		t.Error("different base seeds produced the same chunk seed")
	}
}
