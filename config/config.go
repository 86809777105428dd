// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the command defaults, read from GRIDBAYES_*
// environment variables, and the YAML scenario files run by the
// "run" command.
package config // import "github.com/bda-labs/gridbayes/config"

import (
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the prefix of the environment variables read by Load.
const Prefix = "gridbayes"

// Config holds the defaults for command-line flags.
type Config struct {
	// Points is the number of grid points when a command
	// doesn't set one.
	Points int `envconfig:"POINTS" default:"200"`

	// Seed seeds the random source for posterior draws and
	// simulations. Zero means seed from the clock.
	Seed uint64 `envconfig:"SEED" default:"0"`

	// Draws is the number of posterior samples to draw.
	Draws int `envconfig:"DRAWS" default:"0"`

	// Sampler is the posterior sampling method, "inverse-cdf" or
	// "accept-reject".
	Sampler string `envconfig:"SAMPLER" default:"inverse-cdf"`

	// PlotWidth and PlotHeight are the size of image plots in
	// centimeters.
	PlotWidth  float64 `envconfig:"PLOT_WIDTH" default:"16"`
	PlotHeight float64 `envconfig:"PLOT_HEIGHT" default:"10"`

	// OutDir is the directory relative plot paths are written to.
	OutDir string `envconfig:"OUT_DIR" default:"."`

	// LogLevel is the default logging level.
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns
// the default configuration if it is invalid.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Points:     200,
		Seed:       0,
		Draws:      0,
		Sampler:    "inverse-cdf",
		PlotWidth:  16,
		PlotHeight: 10,
		OutDir:     ".",
		LogLevel:   "INFO",
	}
}

// Usage writes a table of the environment variables Load reads to w.
func Usage(w io.Writer) error {
	return envconfig.Usagef(Prefix, &Config{}, w, envconfig.DefaultTableFormat)
}
