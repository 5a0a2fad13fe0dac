package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rank.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Rank.TopK)
	}
	if cfg.Rank.Stemming {
		t.Error("expected stemming off by default")
	}
	if cfg.Rank.Language != "english" {
		t.Errorf("expected Language=english, got %s", cfg.Rank.Language)
	}
	if cfg.Rank.SplitLines {
		t.Error("expected line breaks to be deleted by default")
	}
	if cfg.Scan.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Scan.Workers)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("expected TTL=10m, got %s", cfg.Cache.TTL)
	}
	if cfg.StemmingLanguage() != "" {
		t.Errorf("expected no stemming language, got %q", cfg.StemmingLanguage())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "topwords.yaml")

	content := `
rank:
  top_k: 3
  stemming: true
  language: french
cache:
  ttl: 30s
scan:
  workers: 8
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rank.TopK != 3 {
		t.Errorf("expected TopK=3, got %d", cfg.Rank.TopK)
	}
	if cfg.StemmingLanguage() != "french" {
		t.Errorf("expected stemming language french, got %q", cfg.StemmingLanguage())
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("expected TTL=30s, got %s", cfg.Cache.TTL)
	}
	if cfg.Scan.Workers != 8 {
		t.Errorf("expected Workers=8, got %d", cfg.Scan.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected untouched defaults to survive, got level %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "topwords.yaml")
	if err := os.WriteFile(configPath, []byte("rank: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".topwords"), 0755); err != nil {
		t.Fatal(err)
	}
	content := `
stopwords:
  path: /etc/stop.txt
`
	if err := os.WriteFile(filepath.Join(tmpDir, ".topwords", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StopWords.Path != "/etc/stop.txt" {
		t.Errorf("expected stop words path from .topwords/config.yaml, got %q", cfg.StopWords.Path)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := DefaultConfig()
	cfg.Rank.TopK = 25
	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadFromDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Rank.TopK != 25 {
		t.Errorf("expected TopK=25, got %d", loaded.Rank.TopK)
	}
	if loaded.Cache.TTL != cfg.Cache.TTL {
		t.Errorf("expected TTL %s, got %s", cfg.Cache.TTL, loaded.Cache.TTL)
	}
}
