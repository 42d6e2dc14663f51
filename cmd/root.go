package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/dialogue-sync/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dialogue-sync",
	Short: "Sync deliberation sessions into local markdown files",
	Long: `A CLI tool to sync sessions from the Dialogue deliberation platform
into local markdown files rendered from a mustache template.

Sessions already present in the output directory (recognized by the hst_<hex>
identifier token in their filenames) are never fetched or written again, so
repeated runs only pick up new sessions.

Quick Start:
  dialogue-sync init                     # Scaffold config and starter template
  dialogue-sync sync                     # Run a synchronization pass
  dialogue-sync healthcheck              # Verify config, template and API access

Set DIALOGUE_API_KEY in the environment (or a .env file) before syncing.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "dialogue-sync.yaml", "Path to the config file")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
