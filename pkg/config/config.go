// Package config provides configuration loading and management for seamcarve.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"seamcarve/internal/models"
	"seamcarve/pkg/grayscale"
	"seamcarve/pkg/visualization"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Processing parameters
	Processing struct {
		// NumCores bounds the goroutines used for energy estimation and for
		// batch processing of a directory
		NumCores int `yaml:"numCores"`

		// CheckMemory refuses images whose working set exceeds available memory
		CheckMemory bool `yaml:"checkMemory"`
	} `yaml:"processing"`

	// Grayscale holds the channel weights used to derive pixel intensity
	Grayscale models.RGBWeights `yaml:"grayscale"`

	// Output parameters
	Output struct {
		// SaveSeams writes a copy of the input with the seams painted
		SaveSeams bool `yaml:"saveSeams"`

		// SeamColor is the hex colour of painted seams
		SeamColor string `yaml:"seamColor"`

		// SaveEnergy writes the energy heat map
		SaveEnergy bool `yaml:"saveEnergy"`

		// SaveMask writes the protection mask at output dimensions
		SaveMask bool `yaml:"saveMask"`

		// JPEGQuality is used for .jpg outputs
		JPEGQuality int `yaml:"jpegQuality"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`

	// Mask parameters
	Mask struct {
		// Threshold is the gray level above which a mask image pixel is protected
		Threshold uint8 `yaml:"threshold"`
	} `yaml:"mask"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Processing.NumCores = runtime.NumCPU()
	cfg.Processing.CheckMemory = true

	cfg.Grayscale = models.DefaultWeights()

	cfg.Output.SaveSeams = false
	cfg.Output.SeamColor = "#ff0000"
	cfg.Output.SaveEnergy = false
	cfg.Output.SaveMask = false
	cfg.Output.JPEGQuality = 90
	cfg.Output.Verbose = false

	cfg.Mask.Threshold = 127

	return cfg
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.Processing.NumCores < 1 {
		return fmt.Errorf("numCores must be positive, got %d", c.Processing.NumCores)
	}
	if err := grayscale.ValidateWeights(c.Grayscale); err != nil {
		return err
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("jpegQuality must be between 1 and 100, got %d", c.Output.JPEGQuality)
	}
	if _, err := visualization.ParseHexColor(c.Output.SeamColor); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
