package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/dialogue-sync/internal"
	"github.com/iksnae/dialogue-sync/internal/render"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync new sessions into the output directory",
	Long: `Run one synchronization pass: search the platform for sessions matching
the configured queries, skip the ones already present in the output
directory, and write each remaining session as a markdown file.

Individual failures (a search call, a single session) are logged and
skipped; the pass itself only fails on setup problems such as a missing
credential, an unreadable config or a missing template.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Best-effort .env loading; the variables may as well come from
		// the real environment.
		_ = godotenv.Load()

		apiKey := os.Getenv("DIALOGUE_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("DIALOGUE_API_KEY is not set (add it to the environment or a .env file)")
		}

		baseURL := os.Getenv("DIALOGUE_API_URL")
		if baseURL == "" {
			baseURL = internal.DefaultBaseURL
		}

		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}

		// Relative paths in the config resolve against the config file's
		// directory, so runs behave the same from any working directory.
		baseDir := filepath.Dir(configPath)
		if cfg.Output.Template != "" && !filepath.IsAbs(cfg.Output.Template) {
			cfg.Output.Template = filepath.Join(baseDir, cfg.Output.Template)
		}

		client := internal.NewClient(baseURL, apiKey)
		renderer := render.NewRenderer(defaultTemplatePath(baseDir))
		pipeline := internal.NewPipeline(client, renderer, cfg, baseDir)

		count, err := pipeline.Run(context.Background())
		if err != nil {
			return err
		}

		if count == 1 {
			internal.PrintSuccess("Synced 1 new session")
		} else {
			internal.PrintSuccess(fmt.Sprintf("Synced %d new sessions", count))
		}
		return nil
	},
}

// defaultTemplatePath is where init scaffolds the starter template.
func defaultTemplatePath(baseDir string) string {
	return filepath.Join(baseDir, "templates", "session.md")
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
