package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/lsv/internal/models"
	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents lsv configuration options
type Config struct {
	// Long enables the long listing format by default
	Long bool `yaml:"long"`

	// Horizontal selects left-to-right wrapping instead of columns
	Horizontal bool `yaml:"horizontal"`

	// Recursive lists subdirectories by default
	Recursive bool `yaml:"recursive"`

	// Width is the display width in columns (0 = detect, falling back to 80)
	Width int `yaml:"width"`

	// Color controls name coloring: auto, always or never
	Color string `yaml:"color"`

	// HumanSizes prints long-format sizes as 1.5kB, 3.2MB, ...
	HumanSizes bool `yaml:"human_sizes"`

	// LogLevel sets diagnostics verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Long:       false,
		Horizontal: false,
		Recursive:  false,
		Width:      0, // Detect
		Color:      ColorAuto,
		HumanSizes: false,
		LogLevel:   "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell "absent" apart from an explicit false or zero
	type yamlConfig struct {
		Long       *bool   `yaml:"long"`
		Horizontal *bool   `yaml:"horizontal"`
		Recursive  *bool   `yaml:"recursive"`
		Width      *int    `yaml:"width"`
		Color      *string `yaml:"color"`
		HumanSizes *bool   `yaml:"human_sizes"`
		LogLevel   *string `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Long != nil {
		cfg.Long = *yamlCfg.Long
	}
	if yamlCfg.Horizontal != nil {
		cfg.Horizontal = *yamlCfg.Horizontal
	}
	if yamlCfg.Recursive != nil {
		cfg.Recursive = *yamlCfg.Recursive
	}
	if yamlCfg.Width != nil {
		cfg.Width = *yamlCfg.Width
	}
	if yamlCfg.Color != nil && *yamlCfg.Color != "" {
		cfg.Color = strings.ToLower(*yamlCfg.Color)
	}
	if yamlCfg.HumanSizes != nil {
		cfg.HumanSizes = *yamlCfg.HumanSizes
	}
	if yamlCfg.LogLevel != nil && *yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*yamlCfg.LogLevel)
	}

	return cfg, nil
}

// FlagOverrides carries command-line values. A nil field was not set on the
// command line and leaves the configuration value alone.
type FlagOverrides struct {
	Long       *bool
	Horizontal *bool
	Recursive  *bool
	Width      *int
	Color      *string
	HumanSizes *bool
	LogLevel   *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f FlagOverrides) {
	if f.Long != nil {
		c.Long = *f.Long
	}
	if f.Horizontal != nil {
		c.Horizontal = *f.Horizontal
	}
	if f.Recursive != nil {
		c.Recursive = *f.Recursive
	}
	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.Color != nil {
		c.Color = strings.ToLower(*f.Color)
	}
	if f.HumanSizes != nil {
		c.HumanSizes = *f.HumanSizes
	}
	if f.LogLevel != nil {
		c.LogLevel = strings.ToLower(*f.LogLevel)
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ColorEnabled resolves the color mode. In auto mode color is used only when
// stdout is a terminal and NO_COLOR is unset.
func (c *Config) ColorEnabled(stdoutIsTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		return stdoutIsTerminal
	}
}

// Options builds the immutable engine options. width is the resolved display
// width; headers reports whether paths were named explicitly.
func (c *Config) Options(width int, color bool, headers bool) models.Options {
	return models.Options{
		LongFormat:       c.Long,
		HorizontalLayout: c.Horizontal,
		Recursive:        c.Recursive,
		WidthHint:        width,
		HumanSizes:       c.HumanSizes,
		Color:            color,
		Headers:          headers,
	}
}
