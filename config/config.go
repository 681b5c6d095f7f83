// Package config provides configuration loading and management for casemetrics.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete casemetrics configuration
type Config struct {
	Clean   CleanConfig            `yaml:"clean"`
	Analyze AnalyzeConfig          `yaml:"analyze"`
	Output  OutputConfig           `yaml:"output"`
	Courts  map[string]CourtConfig `yaml:"courts"`
}

// CleanConfig configures the cleaning pipeline
type CleanConfig struct {
	// Format is the input format: "txt", "html", "pdf" or "auto"
	Format string `yaml:"format"`
	// Jurisdiction selects the repair rule set: "SG", "UK" or "auto"
	Jurisdiction string `yaml:"jurisdiction"`
	// WriteHTML emits a side-by-side review page next to each cleaned file
	WriteHTML bool `yaml:"write_html"`
	// WriteMarkdown emits a markdown rendering next to each cleaned file
	WriteMarkdown bool `yaml:"write_markdown"`
	// ExtractArticle isolates the main article block of an HTML page before
	// projecting its text, for sources wrapped in portal navigation
	ExtractArticle bool `yaml:"extract_article"`
}

// AnalyzeConfig configures the analysis run
type AnalyzeConfig struct {
	// Workers is the number of documents analyzed concurrently
	Workers int `yaml:"workers"`
	// Court restricts the run to one configured court (empty = use input paths)
	Court string `yaml:"court"`
}

// OutputConfig configures where results are written
type OutputConfig struct {
	// Dir is the output directory for cleaned files and reports
	Dir string `yaml:"dir"`
	// CSV is the report CSV path (default: <dir>/results.csv)
	CSV string `yaml:"csv"`
	// Database is the sqlite report database path (empty = no database)
	Database string `yaml:"database"`
}

// CourtConfig describes one court corpus
type CourtConfig struct {
	// Name is the full court name
	Name string `yaml:"name"`
	// Country is the jurisdiction code reported for this court
	Country string `yaml:"country"`
	// InputFolders are the corpus directories for this court
	InputFolders []string `yaml:"input_folders"`
}

// DefaultCourts returns the built-in court table
func DefaultCourts() map[string]CourtConfig {
	return map[string]CourtConfig{
		"SGCA": {Name: "Singapore Court of Appeal", Country: "SG"},
		"SGHC": {Name: "Singapore High Court", Country: "SG"},
		"SGDC": {Name: "Singapore District Court", Country: "SG"},
		"SGMC": {Name: "Singapore Magistrates' Court", Country: "SG"},
		"UKHL": {Name: "UK House of Lords", Country: "UK"},
		"UKSC": {Name: "UK Supreme Court", Country: "UK"},
		"HCA":  {Name: "High Court of Australia", Country: "AU"},
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Clean: CleanConfig{
			Format:       "auto",
			Jurisdiction: "auto",
		},
		Analyze: AnalyzeConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Courts: DefaultCourts(),
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Clean.Format {
	case "auto", "txt", "html", "pdf":
	default:
		return fmt.Errorf("clean.format must be auto, txt, html or pdf")
	}
	switch c.Clean.Jurisdiction {
	case "auto", "SG", "UK":
	default:
		return fmt.Errorf("clean.jurisdiction must be auto, SG or UK")
	}
	if c.Analyze.Workers < 1 {
		return fmt.Errorf("analyze.workers must be at least 1")
	}
	if c.Analyze.Court != "" {
		if _, ok := c.Courts[c.Analyze.Court]; !ok {
			return fmt.Errorf("analyze.court %q is not configured", c.Analyze.Court)
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// CSVPath returns the report CSV path, defaulting into the output directory
func (c *Config) CSVPath() string {
	if c.Output.CSV != "" {
		return c.Output.CSV
	}
	return filepath.Join(c.Output.Dir, "results.csv")
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Clean
	if other.Clean.Format != "" {
		c.Clean.Format = other.Clean.Format
	}
	if other.Clean.Jurisdiction != "" {
		c.Clean.Jurisdiction = other.Clean.Jurisdiction
	}
	if other.Clean.WriteHTML {
		c.Clean.WriteHTML = true
	}
	if other.Clean.WriteMarkdown {
		c.Clean.WriteMarkdown = true
	}
	if other.Clean.ExtractArticle {
		c.Clean.ExtractArticle = true
	}

	// Analyze
	if other.Analyze.Workers != 0 {
		c.Analyze.Workers = other.Analyze.Workers
	}
	if other.Analyze.Court != "" {
		c.Analyze.Court = other.Analyze.Court
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.CSV != "" {
		c.Output.CSV = other.Output.CSV
	}
	if other.Output.Database != "" {
		c.Output.Database = other.Output.Database
	}

	// Courts merge by code; an override replaces the whole entry
	for code, court := range other.Courts {
		c.Courts[code] = court
	}
}
