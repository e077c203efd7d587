//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-datagen/internal/artifacts"
	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/dims"
	"github.com/pgEdge/pgedge-datagen/internal/logging"
	"github.com/pgEdge/pgedge-datagen/internal/sales"
)

var (
	generateSeed       int64
	generateTotalRows  int64
	generateChunkSize  int64
	generateWorkers    int
	generateFormat     string
	generateDimsOnly   bool
	generateForce      bool
	generatePricing    string
	generateSkipOrders bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dimension artifacts and the sales fact table",
	Long: `Generate the full dataset into the output directory. Dimension
artifacts whose configuration has not changed since the last run are
reused; everything downstream of a changed artifact is rebuilt. The fact
table is then synthesized in parallel chunks.

Example:
  pgedge-datagen generate --total-rows 10000000 --format parquet
  pgedge-datagen generate --dims-only
  pgedge-datagen generate --format deltaparquet --workers 8`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0,
		"base seed for deterministic generation")
	generateCmd.Flags().Int64Var(&generateTotalRows, "total-rows", 0,
		"number of fact lines to synthesize")
	generateCmd.Flags().Int64Var(&generateChunkSize, "chunk-size", 0,
		"fact lines per chunk file")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0,
		"worker pool size (default: number of CPUs)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "",
		"fact output format: csv, parquet or deltaparquet")
	generateCmd.Flags().BoolVar(&generateDimsOnly, "dims-only", false,
		"generate dimension artifacts only, skip fact synthesis")
	generateCmd.Flags().BoolVar(&generateForce, "force", false,
		"ignore cached fingerprints and rebuild everything")
	generateCmd.Flags().StringVar(&generatePricing, "pricing-mode", "",
		"pricing mode: random, bucketed, discrete or ladder")
	generateCmd.Flags().BoolVar(&generateSkipOrders, "skip-order-columns", false,
		"omit order id and line number from the fact output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if generateSeed != 0 {
		cfg.Defaults.Seed = generateSeed
	}
	if generateTotalRows > 0 {
		cfg.Sales.TotalRows = generateTotalRows
	}
	if generateChunkSize > 0 {
		cfg.Sales.ChunkSize = generateChunkSize
	}
	if generateWorkers > 0 {
		cfg.Sales.Workers = generateWorkers
	}
	if generateFormat != "" {
		cfg.Sales.FileFormat = generateFormat
	}
	if generatePricing != "" {
		cfg.Sales.Pricing.Mode = generatePricing
	}
	if generateSkipOrders {
		cfg.Sales.SkipOrderColumns = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	store := artifacts.NewStore(storePath(cfg))
	if generateForce {
		if err := os.Remove(storePath(cfg)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clearing fingerprint store: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	}()

	started := time.Now()

	gens, err := dims.Ordered()
	if err != nil {
		return err
	}

	runResult, err := artifacts.NewOrchestrator(cfg, store, gens).Run(ctx)
	if err != nil {
		return err
	}

	logging.Info().
		Str("run_id", runResult.RunID).
		Strs("regenerated", runResult.Regenerated()).
		Msg("Dimension artifacts ready")

	if generateDimsOnly {
		logging.Info().
			Dur("elapsed", time.Since(started)).
			Msg("Generation complete (dimensions only)")
		return nil
	}

	factResult, rebuilt, err := generateFacts(ctx, store, runResult)
	if err != nil {
		return err
	}

	summary := logging.Info().
		Str("run_id", runResult.RunID).
		Int("artifacts_rebuilt", len(runResult.Regenerated())).
		Dur("elapsed", time.Since(started))
	if rebuilt {
		summary = summary.
			Int("chunk_files", len(factResult.Files)).
			Int64("fact_rows", factResult.TotalRows)
	} else {
		summary = summary.Int("chunk_files", 0)
	}
	summary.Msg("Generation complete")
	return nil
}

// generateFacts runs the fact engine unless the fact table itself is
// fresh: its fingerprint covers the sales configuration plus every
// dimension fingerprint, so an unchanged config writes zero new chunks.
func generateFacts(ctx context.Context, store *artifacts.Store, runResult *artifacts.RunResult) (*sales.Result, bool, error) {
	upstream := make(map[string]string, len(runResult.Artifacts))
	for _, a := range runResult.Artifacts {
		upstream[a.Name] = a.Fingerprint
	}

	fp, err := artifacts.Fingerprint(cfg.Sales, upstream)
	if err != nil {
		return nil, false, fmt.Errorf("fact table fingerprint: %w", err)
	}

	if store.IsFresh("sales", fp, cfg.FactsDir()) {
		logging.Info().Msg("Fact table up-to-date; skipping synthesis")
		return nil, false, nil
	}

	ref, err := sales.LoadRefData(cfg.DimsDir(), cfg.Sales.CalendarProfile)
	if err != nil {
		return nil, false, err
	}

	result, err := sales.NewEngine(cfg, ref).Run(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := store.Record("sales", fp, cfg.FactsDir(), result.TotalRows); err != nil {
		return nil, false, fmt.Errorf("recording fact table fingerprint: %w", err)
	}
	return result, true, nil
}

func storePath(cfg *config.Config) string {
	return filepath.Join(cfg.OutputDir, "fingerprints.json")
}
