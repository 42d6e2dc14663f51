package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits optional fields.
const (
	DefaultOutputDir       = "sessions"
	DefaultFilenamePattern = "{date}_{id}.md"
	DefaultMinParticipants = 1
)

// SyncConfig controls which sessions are selected for syncing.
type SyncConfig struct {
	Queries         []string `yaml:"queries"`
	Keywords        []string `yaml:"keywords"`
	MinParticipants int      `yaml:"min_participants"`
	RequireSummary  bool     `yaml:"require_summary"`
}

// OutputConfig controls where and how synced sessions are written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Filename string `yaml:"filename"`
	Template string `yaml:"template"`
}

// Config is the resolved dialogue-sync configuration.
type Config struct {
	Sync   SyncConfig   `yaml:"sync"`
	Output OutputConfig `yaml:"output"`
}

// DefaultConfig returns a Config with all optional fields set to their
// default values. Queries remains empty and must come from the file.
func DefaultConfig() *Config {
	return &Config{
		Sync: SyncConfig{
			MinParticipants: DefaultMinParticipants,
			RequireSummary:  true,
		},
		Output: OutputConfig{
			Dir:      DefaultOutputDir,
			Filename: DefaultFilenamePattern,
		},
	}
}

// LoadConfig reads and validates the YAML config file at path. Optional
// fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if len(c.Sync.Queries) == 0 {
		return fmt.Errorf("sync.queries must contain at least one search term")
	}
	for i, q := range c.Sync.Queries {
		if q == "" {
			return fmt.Errorf("sync.queries[%d] is empty", i)
		}
	}
	if c.Sync.MinParticipants < 0 {
		return fmt.Errorf("sync.min_participants must not be negative")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Output.Filename == "" {
		return fmt.Errorf("output.filename must not be empty")
	}
	return nil
}
