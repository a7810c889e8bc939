// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Color scheme values.
const (
	ColorSchemeLight = "light"
	ColorSchemeDark  = "dark"
)

// DefaultPort is the port `serve` listens on when nothing else is configured.
const DefaultPort = 8080

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Content  string `json:"content,omitempty"`  // Path or http(s) URL of content.json
	Template string `json:"template,omitempty"` // Path to the page template; empty uses the built-in one
	Out      string `json:"out,omitempty"`      // Path to the rendered HTML file
	PDFOut   string `json:"pdf_out,omitempty"`  // Path to the exported PDF file

	// Presentation
	Locale      string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`   // Locale for case conversion
	ColorScheme string `json:"color_scheme,omitempty" validate:"omitempty,oneof=light dark"` // Preferred color scheme

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"` // Port for serve

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print debug logs; ORed with --verbose
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// Dark reports whether the dark color scheme is preferred.
func (c *Config) Dark() bool {
	return c.ColorScheme == ColorSchemeDark
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Content == "" {
		result.Content = defaults.Content
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.PDFOut == "" {
		result.PDFOut = defaults.PDFOut
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.ColorScheme == "" {
		result.ColorScheme = defaults.ColorScheme
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
