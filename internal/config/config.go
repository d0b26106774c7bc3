package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level txdesk.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Session SessionConfig `yaml:"session"`
	Import  ImportConfig  `yaml:"import"`
	Export  ExportConfig  `yaml:"export"`
	Auth    AuthConfig    `yaml:"auth"`
	Oplog   OplogConfig   `yaml:"oplog"`
}

// StorageConfig locates the transaction database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig tunes the in-memory session.
type SessionConfig struct {
	PageSize int `yaml:"page_size"`
}

// ImportConfig controls CSV import behavior.
type ImportConfig struct {
	// AllowPartial keeps the rows that did decode when an import hits
	// malformed rows. When false an import with any bad row is aborted
	// and the loaded set is left untouched.
	AllowPartial bool `yaml:"allow_partial"`
}

// ExportConfig sets the initial export column selection.
type ExportConfig struct {
	Columns []string `yaml:"columns"`
}

// AuthConfig locates the login token file.
type AuthConfig struct {
	TokenPath string `yaml:"token_path"`
}

// OplogConfig controls the operation audit log.
type OplogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load reads a txdesk.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: "txdesk.db"},
		Session: SessionConfig{PageSize: 10},
		Import:  ImportConfig{AllowPartial: false},
		Export: ExportConfig{
			Columns: []string{"Id", "Status", "Type", "Client Name", "Amount"},
		},
		Auth:  AuthConfig{TokenPath: ".txdesk-token"},
		Oplog: OplogConfig{Path: "txdesk-oplog.csv"},
	}
}
