package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Clean.Format != "auto" {
		t.Errorf("expected default format auto, got %s", cfg.Clean.Format)
	}
	if cfg.Clean.Jurisdiction != "auto" {
		t.Errorf("expected default jurisdiction auto, got %s", cfg.Clean.Jurisdiction)
	}
	if cfg.Analyze.Workers != 4 {
		t.Errorf("expected default workers 4, got %d", cfg.Analyze.Workers)
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("expected default output dir output, got %s", cfg.Output.Dir)
	}
	if _, ok := cfg.Courts["SGCA"]; !ok {
		t.Error("expected SGCA in default court table")
	}
	if cfg.Courts["UKHL"].Country != "UK" {
		t.Errorf("expected UKHL country UK, got %s", cfg.Courts["UKHL"].Country)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "bad format",
			modify:  func(c *Config) { c.Clean.Format = "docx" },
			wantErr: true,
		},
		{
			name:    "bad jurisdiction",
			modify:  func(c *Config) { c.Clean.Jurisdiction = "US" },
			wantErr: true,
		},
		{
			name:    "zero workers",
			modify:  func(c *Config) { c.Analyze.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "unknown court",
			modify:  func(c *Config) { c.Analyze.Court = "NZCA" },
			wantErr: true,
		},
		{
			name:    "known court",
			modify:  func(c *Config) { c.Analyze.Court = "UKSC" },
			wantErr: false,
		},
		{
			name:    "missing output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
clean:
  format: txt
  jurisdiction: SG
analyze:
  workers: 8
  court: SGCA
output:
  dir: /data/out
  database: /data/out/results.db
courts:
  SGCA:
    name: Singapore Court of Appeal
    country: SG
    input_folders:
      - /data/sgca
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Clean.Format != "txt" {
		t.Errorf("expected format txt, got %s", cfg.Clean.Format)
	}
	if cfg.Clean.Jurisdiction != "SG" {
		t.Errorf("expected jurisdiction SG, got %s", cfg.Clean.Jurisdiction)
	}
	if cfg.Analyze.Workers != 8 {
		t.Errorf("expected workers 8, got %d", cfg.Analyze.Workers)
	}
	if cfg.Output.Database != "/data/out/results.db" {
		t.Errorf("expected database path /data/out/results.db, got %s", cfg.Output.Database)
	}
	if got := cfg.Courts["SGCA"].InputFolders; len(got) != 1 || got[0] != "/data/sgca" {
		t.Errorf("expected SGCA input folders [/data/sgca], got %v", got)
	}
	// Courts not named in the file keep their defaults
	if cfg.Courts["HCA"].Country != "AU" {
		t.Errorf("expected HCA country AU, got %s", cfg.Courts["HCA"].Country)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Clean: CleanConfig{
			Jurisdiction:   "UK",
			ExtractArticle: true,
		},
		Output: OutputConfig{
			Dir: "/override/out",
		},
	}

	base.Merge(override)

	if base.Clean.Jurisdiction != "UK" {
		t.Errorf("expected jurisdiction UK, got %s", base.Clean.Jurisdiction)
	}
	// Format should remain from base since override didn't set it
	if base.Clean.Format != "auto" {
		t.Errorf("expected format to remain auto, got %s", base.Clean.Format)
	}
	if !base.Clean.ExtractArticle {
		t.Error("expected extract_article to carry over")
	}
	if base.Output.Dir != "/override/out" {
		t.Errorf("expected output dir /override/out, got %s", base.Output.Dir)
	}
}

func TestConfigCSVPath(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.CSVPath(); got != filepath.Join("output", "results.csv") {
		t.Errorf("expected default csv path under output dir, got %s", got)
	}

	cfg.Output.CSV = "/tmp/report.csv"
	if got := cfg.CSVPath(); got != "/tmp/report.csv" {
		t.Errorf("expected explicit csv path, got %s", got)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Clean.Jurisdiction = "SG"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Clean.Jurisdiction != "SG" {
		t.Errorf("expected jurisdiction SG, got %s", loaded.Clean.Jurisdiction)
	}
}
