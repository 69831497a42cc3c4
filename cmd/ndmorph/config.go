package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one processing run loaded from a YAML pipeline file.
// Flags override file values; DefaultConfig supplies the rest.
type Config struct {
	// Operation selects the operator: erode, dilate, open, close,
	// close-holes, hitmiss, majority, regmin, regmax, watershed.
	Operation string `yaml:"operation"`

	// Input and Output are image paths (.png, .tif, .tiff).
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Connectivity selects the structuring element: "cross" (4-connectivity)
	// or "box" (8-connectivity).
	Connectivity string `yaml:"connectivity"`

	// Threshold binarizes the input for the boolean operators (close-holes,
	// majority, hitmiss). Watershed does not use it: its markers come from
	// the regional minima of the unthresholded input.
	Threshold uint8 `yaml:"threshold"`

	// Window is the majority-filter window size (odd).
	Window int `yaml:"window"`

	// Lines renders watershed ridge cells instead of basin labels.
	Lines bool `yaml:"lines"`
}

// DefaultConfig returns the baseline pipeline settings.
func DefaultConfig() Config {
	return Config{
		Operation:    "erode",
		Connectivity: "cross",
		Threshold:    128,
		Window:       3,
	}
}

// LoadConfig reads a YAML pipeline description, layering it over the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the pipeline description before any work starts.
func (c Config) Validate() error {
	switch c.Operation {
	case "erode", "dilate", "open", "close", "close-holes", "hitmiss", "majority", "regmin", "regmax", "watershed":
	default:
		return fmt.Errorf("config: unknown operation %q", c.Operation)
	}
	switch c.Connectivity {
	case "cross", "box":
	default:
		return fmt.Errorf("config: unknown connectivity %q (want cross or box)", c.Connectivity)
	}
	if c.Input == "" || c.Output == "" {
		return fmt.Errorf("config: input and output paths are required")
	}
	if c.Window < 1 || c.Window%2 == 0 {
		return fmt.Errorf("config: window must be positive and odd, got %d", c.Window)
	}

	return nil
}
