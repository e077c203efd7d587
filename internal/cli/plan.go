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
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-datagen/internal/datagen"
	"github.com/pgEdge/pgedge-datagen/internal/sales"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the fact chunk plan for the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateSales(); err != nil {
			return err
		}

		chunks := sales.Plan(cfg.Sales.TotalRows, cfg.Sales.ChunkSize, cfg.Defaults.Seed)

		cmd.Printf("Total rows:  %s\n", datagen.FormatRows(cfg.Sales.TotalRows))
		cmd.Printf("Chunk size:  %s\n", datagen.FormatRows(cfg.Sales.ChunkSize))
		cmd.Printf("File format: %s\n", cfg.Sales.FileFormat)
		cmd.Printf("Chunks:      %d\n", len(chunks))
		cmd.Println()
		for _, c := range chunks {
			cmd.Printf("  chunk %4d  rows %9d  seed %016x\n", c.Index, c.Rows, c.Seed)
		}
		return nil
	},
}
