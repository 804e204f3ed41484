// Package cmd defines the command-line interface for gitsleuth.
package cmd

import (
	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("patterns", "p", "", "Custom detector patterns, pipe-delimited (replaces the built-in set)")
	rootCmd.PersistentFlags().String("since", "", "Only scan commits at or after this date (passed to git --since)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or json or csv or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for parquet)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show per-commit progress on stderr")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultDisplayLimit, "Findings shown per severity tier in text mode")
	rootCmd.PersistentFlags().Int("width", contract.DefaultMatchWidth, "Match truncation width in text mode")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent commit scans")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in text output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored severity labels (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
