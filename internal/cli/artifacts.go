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
	"strings"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-datagen/internal/dims"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "List the dimension artifacts and their dependency graph",
	Long: `List all dimension artifacts in generation order, with the upstream
artifacts each one depends on. Changing an artifact's parameters rebuilds
it and every artifact downstream of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gens, err := dims.Ordered()
		if err != nil {
			return err
		}

		cmd.Println("Artifacts in generation order:")
		cmd.Println()
		for _, gen := range gens {
			deps := "-"
			if len(gen.DependsOn()) > 0 {
				deps = strings.Join(gen.DependsOn(), ", ")
			}
			cmd.Printf("  %-16s depends on: %s\n", gen.Name(), deps)
		}
		cmd.Println()
		cmd.Println("The sales fact table depends on all of the above.")
		return nil
	},
}
