//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dims implements the dimension artifact generators: geography,
// customers, stores, promotions, dates, currency, exchange rates and
// products. Each generator satisfies the artifacts.Generator contract;
// regeneration decisions are made by the orchestrator, never here.
package dims

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/pgEdge/pgedge-datagen/internal/artifacts"
)

// NoDiscountKey is the sentinel promotion key meaning "no promotion".
// The promotions artifact always contains it with a 0% discount.
const NoDiscountKey int64 = 1

// Ordered returns the registered generators in topological order:
// Geography → {Customers, Stores} → {Promotions, Dates} →
// {Currency → ExchangeRates} → Products.
func Ordered() ([]artifacts.Generator, error) {
	names := []string{
		"geography",
		"customers",
		"stores",
		"promotions",
		"dates",
		"currency",
		"exchange_rates",
		"products",
	}

	gens := make([]artifacts.Generator, 0, len(names))
	for _, name := range names {
		gen, err := Get(name)
		if err != nil {
			return nil, err
		}
		gens = append(gens, gen)
	}
	return gens, nil
}

// artifactSeed derives a stable per-artifact seed from the base seed, so
// regenerating one artifact never shifts the random stream of another.
func artifactSeed(base int64, name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return uint64(base) ^ h.Sum64()
}

// parquetPath returns the canonical output path for a named artifact.
func parquetPath(dimsDir, name string) string {
	return filepath.Join(dimsDir, name+".parquet")
}

// writeTable writes dimension rows to a parquet file. The file is written
// to a temp path and renamed so a crash never leaves a half-written
// artifact behind a fresh-looking name.
func writeTable[T any](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating dims directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := parquet.WriteFile(tmp, rows); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("committing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadTable reads all rows of a dimension artifact from dimsDir.
func LoadTable[T any](dimsDir, name string) ([]T, error) {
	rows, err := parquet.ReadFile[T](parquetPath(dimsDir, name))
	if err != nil {
		return nil, fmt.Errorf("reading %s artifact: %w", name, err)
	}
	return rows, nil
}
