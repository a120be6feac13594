// Package config handles report generator configuration loading.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inkwell-reports/inkwell/pkg/errors"
)

// Config is the root configuration structure.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
	Table  TableConfig  `yaml:"table"`
	Style  StyleConfig  `yaml:"style"`
	Data   DataConfig   `yaml:"data"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	// Directory is where generated PDF files are written.
	Directory string `yaml:"directory"`
	// Author is embedded in the PDF metadata of every report.
	Author string `yaml:"author"`
	// Compress enables content stream compression.
	Compress bool `yaml:"compress"`
}

// PageConfig holds page geometry settings.
type PageConfig struct {
	// Size is the page size name: a4, letter, or a5.
	Size string `yaml:"size"`
	// Margin is the page margin in points on all four sides.
	Margin float64 `yaml:"margin"`
}

// TableConfig holds table band dimensions in points.
type TableConfig struct {
	RowHeight    float64 `yaml:"row_height"`
	HeaderHeight float64 `yaml:"header_height"`
	CellPadding  float64 `yaml:"cell_padding"`
	// CharWidth is the per-character width estimate used for cell
	// truncation budgets.
	CharWidth float64 `yaml:"char_width"`
}

// StyleConfig holds table colors as "#RRGGBB" hex strings.
type StyleConfig struct {
	HeaderFill string `yaml:"header_fill"`
	HeaderText string `yaml:"header_text"`
	HeaderRule string `yaml:"header_rule"`
	Stripe     string `yaml:"stripe"`
	RowText    string `yaml:"row_text"`
	Divider    string `yaml:"divider"`
	Border     string `yaml:"border"`
	Separator  string `yaml:"separator"`
}

// DataConfig holds record source settings.
type DataConfig struct {
	// CSVPath, when set, is loaded into the roster at startup in place of
	// the sample records.
	CSVPath string `yaml:"csv_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory: "./reports",
			Author:    "Inkwell",
			Compress:  true,
		},
		Page: PageConfig{
			Size:   "a4",
			Margin: 50,
		},
		Table: TableConfig{
			RowHeight:    25,
			HeaderHeight: 30,
			CellPadding:  8,
			CharWidth:    6,
		},
		Style: StyleConfig{
			HeaderFill: "#4682B4",
			HeaderText: "#FFFFFF",
			HeaderRule: "#326496",
			Stripe:     "#F8F8F8",
			RowText:    "#000000",
			Divider:    "#DCDCDC",
			Border:     "#4682B4",
			Separator:  "#969696",
		},
	}
}

// Validate checks the configuration for values no report can be generated
// with.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Page.Size)) {
	case "a4", "letter", "a5":
	default:
		return errors.ConfigErrorf(errors.CodeConfigInvalid,
			"unknown page size %q, want a4, letter, or a5", c.Page.Size)
	}
	if c.Page.Margin < 0 {
		return errors.ConfigErrorf(errors.CodeConfigInvalid,
			"page margin %.2f is negative", c.Page.Margin)
	}
	if c.Table.RowHeight <= 0 || c.Table.HeaderHeight <= 0 {
		return errors.ConfigErrorf(errors.CodeConfigInvalid,
			"table band heights must be positive, got row %.2f header %.2f",
			c.Table.RowHeight, c.Table.HeaderHeight)
	}
	if c.Table.CellPadding < 0 {
		return errors.ConfigErrorf(errors.CodeConfigInvalid,
			"cell padding %.2f is negative", c.Table.CellPadding)
	}
	if c.Table.CharWidth <= 0 {
		return errors.ConfigErrorf(errors.CodeConfigInvalid,
			"char width must be positive, got %.2f", c.Table.CharWidth)
	}
	if c.Output.Directory == "" {
		return errors.ConfigError(errors.CodeConfigInvalid, "output directory is empty")
	}
	return nil
}

// Load loads configuration from a file. Values absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfig(err, errors.CodeConfigRead, "failed to read config").
			WithContext("path", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfig(err, errors.CodeConfigParse, "failed to parse config").
			WithContext("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapConfig(err, errors.CodeConfigWrite, "failed to create config directory").
			WithContext("path", path)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WrapConfig(err, errors.CodeConfigWrite, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapConfig(err, errors.CodeConfigWrite, "failed to write config file").
			WithContext("path", path)
	}
	return nil
}

// DefaultConfigPath returns the default config file path.
// Config is application-level, stored with the application.
func DefaultConfigPath() string {
	// First check for config in current working directory
	if _, err := os.Stat("inkwell.yaml"); err == nil {
		return "inkwell.yaml"
	}
	// Then check for config/ subdirectory
	if _, err := os.Stat("config/inkwell.yaml"); err == nil {
		return "config/inkwell.yaml"
	}
	// Default to inkwell.yaml in current directory
	return "inkwell.yaml"
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists
	}

	cfg := Default()
	return cfg.Save(path)
}
