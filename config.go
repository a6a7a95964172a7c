// Package textrank summarizes text by extracting its most central sentences.
//
// This package exposes minimal entry points for external use while keeping
// implementation details in internal packages.
package textrank

import (
	"context"

	"github.com/yacchi/textrank/internal/cmdutil"
	"github.com/yacchi/textrank/internal/config"
)

// Config is the configuration store for textrank.
// It provides access to all configuration values with layer-based resolution.
type Config = config.Store

// LoadConfig loads the configuration from all available sources.
// Sources are resolved in the following priority order:
//   - Command line arguments (highest)
//   - Environment variables (TEXTRANK_*)
//   - .textrank.yaml (project local)
//   - ~/.config/textrank/config.yaml (user config)
//   - Defaults (lowest)
func LoadConfig(ctx context.Context) (*Config, error) {
	return config.Load(ctx)
}

// OptionsFromConfig returns the summary options resolved by cfg.
func OptionsFromConfig(cfg *Config) Options {
	return cmdutil.SummaryOptions(cfg.Resolved())
}
