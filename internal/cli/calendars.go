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

	"github.com/pgEdge/pgedge-datagen/internal/sales"
)

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "List available order calendar profiles",
	Long: `List the calendar profiles that shape how order dates are
distributed over the date dimension during fact synthesis.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available calendar profiles:")
		cmd.Println()
		for _, p := range sales.CalendarProfiles() {
			cmd.Printf("  %-10s - %s\n", p.Name(), p.Description())
		}
		cmd.Println()
		cmd.Println("Select one with sales.calendar_profile in the config file.")
	},
}
