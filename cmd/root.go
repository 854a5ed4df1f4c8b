package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagCorpus   string
	flagCategory string
	flagSearch   string
)

var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "TUI prompt-engineering tip browser",
	Long:  "promptdeck browses a curated feed of prompt-engineering tips with category filters, live search, and one-key copy to clipboard.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagCorpus, "corpus", "", "corpus file path or http(s) URL (overrides config)")
	rootCmd.Flags().StringVar(&flagCategory, "category", "", "category filter active at startup")
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "search query active at startup")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptdeck %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
