package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for topwords.
type Config struct {
	Rank      RankConfig      `yaml:"rank"`
	StopWords StopWordsConfig `yaml:"stopwords"`
	Scan      ScanConfig      `yaml:"scan"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RankConfig holds ranking configuration.
type RankConfig struct {
	TopK       int    `yaml:"top_k"`
	Stemming   bool   `yaml:"stemming"`
	Language   string `yaml:"language"`    // snowball language, e.g. "english"
	SplitLines bool   `yaml:"split_lines"` // tabs and line breaks separate words instead of being deleted
}

// StopWordsConfig selects the stop-word list.
type StopWordsConfig struct {
	Path string `yaml:"path"` // empty uses the built-in list
}

// ScanConfig holds directory scan configuration.
type ScanConfig struct {
	Includes     []string `yaml:"includes"`
	Excludes     []string `yaml:"excludes"`
	Workers      int      `yaml:"workers"`
	MaxFileBytes int64    `yaml:"max_file_bytes"`
}

// CacheConfig holds result cache configuration.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	MaxEntries int           `yaml:"max_entries"`
	TTL        time.Duration `yaml:"ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Rank: RankConfig{
			TopK:       10,
			Stemming:   false,
			Language:   "english",
			SplitLines: false,
		},
		Scan: ScanConfig{
			Includes:     []string{"**/*.txt", "**/*.md"},
			Excludes:     []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
			Workers:      4,
			MaxFileBytes: 8 << 20,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 256,
			TTL:        10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for topwords.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".topwords", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// FileName is the config file LoadFromDir looks for first.
const FileName = "topwords.yaml"

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StemmingLanguage returns the language to stem with, or "" when stemming is off.
func (c *Config) StemmingLanguage() string {
	if !c.Rank.Stemming {
		return ""
	}
	return c.Rank.Language
}
