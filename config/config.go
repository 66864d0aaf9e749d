// Package config provides configuration loading for the xaunsurnds tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xaunsurn/xaunsurnds/journal"
)

// Config is the complete tool configuration.
type Config struct {
	Bench   BenchConfig   `yaml:"bench"`
	Journal JournalConfig `yaml:"journal"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// BenchConfig configures the workload runner.
type BenchConfig struct {
	// Structures selects which collections to exercise (empty = all).
	Structures []string `yaml:"structures"`
	// Items is the number of items each workload inserts.
	Items int `yaml:"items"`
	// Workers is the number of concurrent goroutines per workload.
	Workers int `yaml:"workers"`
}

// JournalConfig configures snapshot journaling.
type JournalConfig struct {
	// Path is the journal file location (empty = journaling disabled).
	Path string `yaml:"path"`
	// SyncMode is one of "none", "batch", or "always".
	SyncMode string `yaml:"sync_mode"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty = disabled).
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Items:   100000,
			Workers: 4,
		},
		Journal: JournalConfig{
			SyncMode: "batch",
		},
	}
}

// LoadFromFile reads a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &config, nil
}

// Load returns the defaults overlaid with the given file, if any.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	fileConfig, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	config.Merge(fileConfig)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if len(other.Bench.Structures) > 0 {
		c.Bench.Structures = other.Bench.Structures
	}
	if other.Bench.Items > 0 {
		c.Bench.Items = other.Bench.Items
	}
	if other.Bench.Workers > 0 {
		c.Bench.Workers = other.Bench.Workers
	}
	if other.Journal.Path != "" {
		c.Journal.Path = other.Journal.Path
	}
	if other.Journal.SyncMode != "" {
		c.Journal.SyncMode = other.Journal.SyncMode
	}
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Bench.Items <= 0 {
		return fmt.Errorf("bench.items must be positive, got %d", c.Bench.Items)
	}
	if c.Bench.Workers <= 0 {
		return fmt.Errorf("bench.workers must be positive, got %d", c.Bench.Workers)
	}
	if _, err := c.JournalSyncMode(); err != nil {
		return err
	}
	return nil
}

// JournalSyncMode maps the configured sync mode string to a journal.SyncMode.
func (c *Config) JournalSyncMode() (journal.SyncMode, error) {
	switch c.Journal.SyncMode {
	case "", "batch":
		return journal.SyncBatch, nil
	case "none":
		return journal.SyncNone, nil
	case "always":
		return journal.SyncAlways, nil
	default:
		return 0, fmt.Errorf("journal.sync_mode must be none, batch, or always, got %q", c.Journal.SyncMode)
	}
}
