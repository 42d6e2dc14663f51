package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/dialogue-sync/internal"
	"github.com/iksnae/dialogue-sync/internal/render"
	"github.com/spf13/cobra"
)

const starterConfig = `# dialogue-sync configuration
sync:
  # Search terms used to discover sessions. At least one is required.
  queries:
    - "governance"

  # Optional keyword filter: a session is synced only if at least one
  # keyword occurs in its topic, goal or context. Empty means no filter.
  keywords: []

  # Skip sessions with fewer participants than this.
  min_participants: 1

  # Skip sessions the platform has not generated a summary for.
  require_summary: true

output:
  # Directory session files are written into.
  dir: sessions

  # Filename pattern. Available placeholders: {date}, {id}, {slug}.
  # The {id} token doubles as the change-detection marker: patterns
  # without it make every run re-sync everything.
  filename: "{date}_{id}.md"

  # Optional explicit template path. Empty uses templates/session.md.
  template: ""
`

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a config file and starter template",
	Long: `Create a commented dialogue-sync.yaml and a starter mustache template
at templates/session.md in the current directory. Existing files are left
untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wroteConfig, err := writeIfAbsent(configPath, starterConfig)
		if err != nil {
			return err
		}
		if wroteConfig {
			internal.PrintSuccess(fmt.Sprintf("Created %s", configPath))
		} else {
			internal.PrintWarning(fmt.Sprintf("%s already exists, skipping", configPath))
		}

		templatePath := defaultTemplatePath(filepath.Dir(configPath))
		if err := os.MkdirAll(filepath.Dir(templatePath), 0755); err != nil {
			return fmt.Errorf("creating template directory: %w", err)
		}
		wroteTemplate, err := writeIfAbsent(templatePath, render.StarterTemplate)
		if err != nil {
			return err
		}
		if wroteTemplate {
			internal.PrintSuccess(fmt.Sprintf("Created %s", templatePath))
		} else {
			internal.PrintWarning(fmt.Sprintf("%s already exists, skipping", templatePath))
		}

		if wroteConfig {
			internal.PrintInfo("Edit the queries in the config, set DIALOGUE_API_KEY, then run: dialogue-sync sync")
		}
		return nil
	},
}

// writeIfAbsent writes content to path unless the file already exists.
func writeIfAbsent(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
