package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialogue-sync.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
sync:
  queries:
    - climate
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Sync.MinParticipants != 1 {
		t.Errorf("MinParticipants = %d, want 1", cfg.Sync.MinParticipants)
	}
	if !cfg.Sync.RequireSummary {
		t.Error("RequireSummary = false, want true by default")
	}
	if cfg.Output.Dir != "sessions" {
		t.Errorf("Output.Dir = %q, want sessions", cfg.Output.Dir)
	}
	if cfg.Output.Filename != "{date}_{id}.md" {
		t.Errorf("Output.Filename = %q", cfg.Output.Filename)
	}
	if cfg.Output.Template != "" {
		t.Errorf("Output.Template = %q, want empty", cfg.Output.Template)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
sync:
  queries: ["daos", "voting"]
  keywords: ["treasury"]
  min_participants: 5
  require_summary: false
output:
  dir: vault/sessions
  filename: "{slug}_{id}.md"
  template: templates/custom.md
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Sync.Queries) != 2 || cfg.Sync.Queries[0] != "daos" {
		t.Errorf("Queries = %v", cfg.Sync.Queries)
	}
	if cfg.Sync.MinParticipants != 5 {
		t.Errorf("MinParticipants = %d, want 5", cfg.Sync.MinParticipants)
	}
	if cfg.Sync.RequireSummary {
		t.Error("RequireSummary = true, want false")
	}
	if cfg.Output.Dir != "vault/sessions" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.Template != "templates/custom.md" {
		t.Errorf("Output.Template = %q", cfg.Output.Template)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no queries",
			content: "sync:\n  keywords: [x]\n",
			wantErr: "sync.queries",
		},
		{
			name:    "empty query",
			content: "sync:\n  queries: [\"\"]\n",
			wantErr: "sync.queries[0]",
		},
		{
			name:    "negative min participants",
			content: "sync:\n  queries: [x]\n  min_participants: -1\n",
			wantErr: "min_participants",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "config error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want error")
	}
}
