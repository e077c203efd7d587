//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-datagen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/logging"
	"github.com/pgEdge/pgedge-datagen/pkg/version"
)

var (
	// Global flags
	cfgFile   string
	outputDir string
	logLevel  string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-datagen",
		Short: "Synthetic star-schema dataset generator",
		Long: `pgedge-datagen synthesizes an analytical star-schema dataset: seven
dimension tables (geography, customers, stores, promotions, dates,
currency with exchange rates, products) plus a large sales fact table,
written as CSV, Parquet or Delta-format Parquet files.

Dimension artifacts are fingerprinted, so re-running with an unchanged
configuration regenerates nothing, and changing one artifact's
parameters rebuilds exactly that artifact and everything downstream of
it. Fact synthesis is chunked and runs across a worker pool; a fixed
base seed reproduces the dataset bit-for-bit regardless of worker
count.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-datagen.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"root folder for generated artifacts")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(artifactsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(calendarsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
