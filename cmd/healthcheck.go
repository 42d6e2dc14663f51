package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/dialogue-sync/internal"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check config, template, credential and API access",
	Long: `Check that dialogue-sync is ready to run by verifying:
  • Config file is readable and valid
  • Template file resolves
  • DIALOGUE_API_KEY is set
  • The platform API answers an authenticated request

This command is useful for debugging setup issues, especially in CI/CD
environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 dialogue-sync Health Check"))
		fmt.Println()

		fmt.Println(stepStyle.Render("Step 1: Checking config..."))
		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			fmt.Println(failStyle.Render("✗ Config not usable:"), err)
			return fmt.Errorf("healthcheck failed")
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("✓ Config valid (%d query/queries)", len(cfg.Sync.Queries))))
		fmt.Println()

		fmt.Println(stepStyle.Render("Step 2: Checking template..."))
		baseDir := filepath.Dir(configPath)
		templatePath := cfg.Output.Template
		if templatePath == "" {
			templatePath = defaultTemplatePath(baseDir)
		} else if !filepath.IsAbs(templatePath) {
			templatePath = filepath.Join(baseDir, templatePath)
		}
		if _, err := os.Stat(templatePath); err != nil {
			fmt.Println(failStyle.Render("✗ Template missing:"), templatePath)
			fmt.Println("  Run 'dialogue-sync init' to scaffold one.")
			return fmt.Errorf("healthcheck failed")
		}
		fmt.Println(okStyle.Render("✓ Template found: " + templatePath))
		fmt.Println()

		fmt.Println(stepStyle.Render("Step 3: Checking credential..."))
		_ = godotenv.Load()
		apiKey := os.Getenv("DIALOGUE_API_KEY")
		if apiKey == "" {
			fmt.Println(failStyle.Render("✗ DIALOGUE_API_KEY is not set"))
			return fmt.Errorf("healthcheck failed")
		}
		fmt.Println(okStyle.Render("✓ Credential present"))
		fmt.Println()

		fmt.Println(stepStyle.Render("Step 4: Checking API access..."))
		baseURL := os.Getenv("DIALOGUE_API_URL")
		if baseURL == "" {
			baseURL = internal.DefaultBaseURL
		}
		client := internal.NewClient(baseURL, apiKey)
		result, err := client.Search(context.Background(), "", "", 1, 0)
		if err != nil {
			fmt.Println(failStyle.Render("✗ API request failed:"), err)
			return fmt.Errorf("healthcheck failed")
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("✓ API reachable (%d session(s) visible)", result.Total)))
		fmt.Println()

		fmt.Println(okStyle.Render("All checks passed"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
