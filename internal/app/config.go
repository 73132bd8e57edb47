package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/attrgroup/internal/input"
	"github.com/vk/attrgroup/internal/render"
)

// StdinPath selects standard input as the attribute document.
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	AttributesPath string // json, yaml or hcl document; "-" for stdin
	InputFormat    string // json, yaml or hcl; empty picks by extension
	RulesPath      string // hcl file or directory, empty for built-in rules

	Format       string
	SoftwareOnly bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.AttributesPath == "" {
		return nil, errors.New("AttributesPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = render.FormatJSON
	}
	if !slices.Contains(render.Formats(), cfg.Format) {
		return nil, fmt.Errorf("invalid format %q", cfg.Format)
	}
	if cfg.InputFormat != input.FormatAuto && !slices.Contains(input.Formats(), cfg.InputFormat) {
		return nil, fmt.Errorf("invalid input format %q", cfg.InputFormat)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
