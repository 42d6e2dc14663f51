package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/dialogue-sync/testutil"
)

func TestHealthcheckCommand_AllChecksPass(t *testing.T) {
	fake := testutil.NewFakePlatform()
	fake.APIKey = "test-key"
	server := fake.Start()
	defer server.Close()

	cfgPath := scaffoldWorkspace(t, "sync:\n  queries: [x]\n")
	t.Setenv("DIALOGUE_API_KEY", "test-key")
	t.Setenv("DIALOGUE_API_URL", server.URL)

	if err := runCommand(t, "healthcheck", "--config", cfgPath); err != nil {
		t.Fatalf("healthcheck failed: %v", err)
	}
	if fake.SearchCalls != 1 {
		t.Errorf("SearchCalls = %d, want 1", fake.SearchCalls)
	}
}

func TestHealthcheckCommand_Failures(t *testing.T) {
	fake := testutil.NewFakePlatform()
	fake.APIKey = "test-key"
	server := fake.Start()
	defer server.Close()

	t.Run("missing config", func(t *testing.T) {
		t.Setenv("DIALOGUE_API_KEY", "test-key")
		t.Setenv("DIALOGUE_API_URL", server.URL)
		err := runCommand(t, "healthcheck", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Error("healthcheck passed with no config")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "dialogue-sync.yaml")
		if err := os.WriteFile(cfgPath, []byte("sync:\n  queries: [x]\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("DIALOGUE_API_KEY", "test-key")
		t.Setenv("DIALOGUE_API_URL", server.URL)
		if err := runCommand(t, "healthcheck", "--config", cfgPath); err == nil {
			t.Error("healthcheck passed with no template")
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		cfgPath := scaffoldWorkspace(t, "sync:\n  queries: [x]\n")
		t.Setenv("DIALOGUE_API_KEY", "")
		if err := runCommand(t, "healthcheck", "--config", cfgPath); err == nil {
			t.Error("healthcheck passed with no credential")
		}
	})

	t.Run("wrong credential", func(t *testing.T) {
		cfgPath := scaffoldWorkspace(t, "sync:\n  queries: [x]\n")
		t.Setenv("DIALOGUE_API_KEY", "wrong-key")
		t.Setenv("DIALOGUE_API_URL", server.URL)
		if err := runCommand(t, "healthcheck", "--config", cfgPath); err == nil {
			t.Error("healthcheck passed with a rejected credential")
		}
	})
}
