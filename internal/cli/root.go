// Package cli assembles the treasurysoa command tree: a run command that
// drives the fabric end to end over the configured streams, plus small
// utility commands for exercising the price codec and ID generator
// directly (spec.md §6, §8).
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "treasurysoa",
	Short: "A fixed-income pricing, market data, and execution fabric",
	Long: `treasurysoa drives a US Treasury pricing, market data, algo
execution, and RFQ inquiry pipeline from flat ingest files, the way a
trading floor's overnight batch tools do.`,
}

// Execute runs the command tree. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ./config.yaml)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(idCmd)
}
