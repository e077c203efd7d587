//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sales implements the parallel fact synthesis engine: chunk
// planning, order expansion, promotion matching, delivery timelines,
// pricing and chunk output.
package sales

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
	"github.com/pgEdge/pgedge-datagen/internal/logging"
)

// ChunkFile describes one written chunk.
type ChunkFile struct {
	Index int
	Path  string
	Rows  int64
}

// Result is the outcome of a fact synthesis run. Files is ordered by
// chunk index even though chunks may complete out of order.
type Result struct {
	Files     []ChunkFile
	TotalRows int64
}

// Engine synthesizes the sales fact table. The reference data is shared
// read-only across all workers; each chunk task gets its own seeded
// random stream and an immutable copy of the pricing policy.
type Engine struct {
	cfg *config.Config
	ref *RefData
}

func NewEngine(cfg *config.Config, ref *RefData) *Engine {
	return &Engine{cfg: cfg, ref: ref}
}

// Run executes the chunk plan across the worker pool. Any worker error
// fails the whole run; chunk files already on disk must not be treated
// as a complete dataset.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	sc := e.cfg.Sales
	plan := Plan(sc.TotalRows, sc.ChunkSize, e.cfg.Defaults.Seed)

	workers := sc.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	factsDir := e.cfg.FactsDir()
	if err := os.MkdirAll(factsDir, 0o755); err != nil {
		return nil, &WriteError{Path: factsDir, Err: err}
	}

	logging.Info().
		Int("chunks", len(plan)).
		Int("workers", workers).
		Int64("total_rows", sc.TotalRows).
		Str("format", sc.FileFormat).
		Msg("Starting fact synthesis")

	progress := datagen.NewProgressReporter("sales", sc.TotalRows, sc.ChunkSize)

	var (
		files []ChunkFile
		err   error
	)
	if sc.FileFormat == "deltaparquet" {
		files, err = e.runDelta(ctx, plan, factsDir, workers, progress)
	} else {
		files, err = e.runConcurrent(ctx, plan, factsDir, workers, progress)
	}
	if err != nil {
		return nil, err
	}
	progress.Done()

	var total int64
	for _, f := range files {
		total += f.Rows
	}
	return &Result{Files: files, TotalRows: total}, nil
}

// runConcurrent handles the csv and parquet formats: every worker writes
// its own chunk file, no shared mutable state.
func (e *Engine) runConcurrent(ctx context.Context, plan []Chunk, factsDir string, workers int, progress *datagen.ProgressReporter) ([]ChunkFile, error) {
	files := make([]ChunkFile, len(plan))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, chunk := range plan {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rows, err := e.synthesizeChunk(chunk)
			if err != nil {
				return &GenerationError{Chunk: chunk.Index, Err: err}
			}
			path, err := writeChunk(factsDir, chunk.Index, rows, e.cfg.Sales)
			if err != nil {
				return err
			}

			files[chunk.Index] = ChunkFile{Index: chunk.Index, Path: path, Rows: int64(len(rows))}
			progress.Update(int64(len(rows)))
			logging.Debug().Int("chunk", chunk.Index).Int("rows", len(rows)).Msg("Chunk written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// synthesizeChunk produces exactly chunk.Rows fact lines from the
// chunk's own seeded stream.
func (e *Engine) synthesizeChunk(chunk Chunk) ([]SalesLine, error) {
	sc := e.cfg.Sales
	faker := datagen.NewFakerWithSeed(chunk.Seed)

	orders := expandOrders(faker, e.ref, chunk.Rows, sc.AvgLinesPerOrder)

	lines := make([]SalesLine, 0, chunk.Rows)
	for _, order := range orders {
		start := len(lines)
		delayed := false

		for ln := 1; ln <= order.Lines; ln++ {
			product := datagen.Choose(faker, e.ref.Products)
			storeKey := datagen.Choose(faker, e.ref.StoreKeys)
			currencyKey, err := e.ref.CurrencyForStore(storeKey)
			if err != nil {
				return nil, err
			}

			promoKey, promoPct := matchPromotion(faker, e.ref, order.Date)
			due, delivery, status := lineDelivery(faker, order, product.ProductKey)
			if status == StatusDelayed {
				delayed = true
			}

			priced := applyPricing(sc.Pricing, faker, product.UnitPrice, product.UnitCost, promoPct)

			lines = append(lines, SalesLine{
				OrderID:        order.ID,
				LineNumber:     int32(ln),
				OrderDate:      order.Date,
				DueDate:        due,
				DeliveryDate:   delivery,
				DeliveryStatus: status,
				StoreKey:       storeKey,
				ProductKey:     product.ProductKey,
				CustomerKey:    order.CustomerKey,
				CurrencyKey:    currencyKey,
				PromotionKey:   promoKey,
				Quantity:       int32(faker.Int(1, 10)),
				UnitPrice:      priced.UnitPrice,
				UnitCost:       priced.UnitCost,
				DiscountAmount: priced.Discount,
				NetPrice:       priced.Net,
				IsOrderDelayed: false,
				Year:           int32(order.Date.Year()),
				Month:          int32(order.Date.Month()),
			})
		}

		// One delayed line marks the whole order.
		if delayed {
			for i := start; i < len(lines); i++ {
				lines[i].IsOrderDelayed = true
			}
		}
	}
	return lines, nil
}
