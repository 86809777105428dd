// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Models and priors a Scenario may name.
var (
	Models = []string{"binomial", "poisson", "cauchy", "incidence"}
	Priors = []string{"flat", "beta", "jeffreys", "gamma", "exp", "normal"}
)

// File is a scenario file: one or more posteriors computed and
// plotted together.
type File struct {
	Title     string     `yaml:"title"`
	Plot      string     `yaml:"plot"`
	HTML      string     `yaml:"html"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes a single univariate posterior.
type Scenario struct {
	Name  string `yaml:"name"`
	Model string `yaml:"model"`

	Grid  Grid  `yaml:"grid"`
	Prior Prior `yaml:"prior"`
	Data  Data  `yaml:"data"`

	// Log computes the posterior in log space.
	Log bool `yaml:"log"`

	// Draws is the number of samples to draw, using Sampler.
	Draws   int    `yaml:"draws"`
	Sampler string `yaml:"sampler"`
}

// Grid is a parameter grid. A zero Grid uses the model's default.
type Grid struct {
	Lo     float64 `yaml:"lo"`
	Hi     float64 `yaml:"hi"`
	Points int     `yaml:"points"`
}

// Prior names a prior family and its parameters. An empty Kind is a
// flat prior.
type Prior struct {
	Kind  string  `yaml:"kind"`
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	Shape float64 `yaml:"shape"`
	Scale float64 `yaml:"scale"`
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
}

// Data holds the observations. Which fields are used depends on the
// model.
type Data struct {
	// binomial
	Successes int `yaml:"successes"`
	Trials    int `yaml:"trials"`

	// poisson
	Counts   int     `yaml:"counts"`
	Interval float64 `yaml:"interval"`

	// cauchy
	Values []float64 `yaml:"values"`
	Scale  float64   `yaml:"scale"`

	// incidence, either given directly or by site and index in
	// the built-in cancer tables
	Observed int     `yaml:"observed"`
	Expected float64 `yaml:"expected"`
	Site     string  `yaml:"site"`
	Index    *int    `yaml:"index"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	f, err := ParseScenario(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseScenario parses and validates a scenario file. Unknown fields
// are an error.
func ParseScenario(b []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalWithOptions(b, &f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every scenario names a known model, prior, and
// sampler, and has the data its model needs.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return errors.New("no scenarios")
	}
	var errs []error
	for i, s := range f.Scenarios {
		if err := s.Validate(); err != nil {
			name := s.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			errs = append(errs, fmt.Errorf("scenario %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks a single scenario.
func (s Scenario) Validate() error {
	if !oneOf(s.Model, Models) {
		return fmt.Errorf("unknown model %q", s.Model)
	}
	if s.Prior.Kind != "" && !oneOf(s.Prior.Kind, Priors) {
		return fmt.Errorf("unknown prior %q", s.Prior.Kind)
	}
	if s.Sampler != "" && s.Sampler != "inverse-cdf" && s.Sampler != "accept-reject" {
		return fmt.Errorf("unknown sampler %q", s.Sampler)
	}
	if s.Draws < 0 {
		return fmt.Errorf("negative draws %d", s.Draws)
	}
	if s.Grid.Points == 1 || s.Grid.Points < 0 {
		return fmt.Errorf("grid needs at least 2 points, got %d", s.Grid.Points)
	}
	d := s.Data
	switch s.Model {
	case "binomial":
		if d.Trials <= 0 || d.Successes < 0 || d.Successes > d.Trials {
			return fmt.Errorf("binomial needs 0 <= successes <= trials, got %d of %d", d.Successes, d.Trials)
		}
	case "poisson":
		if d.Interval <= 0 || d.Counts < 0 {
			return fmt.Errorf("poisson needs counts >= 0 and interval > 0, got %d in %g", d.Counts, d.Interval)
		}
		if s.Grid.Hi <= 0 {
			return errors.New("poisson needs grid.hi")
		}
	case "cauchy":
		if len(d.Values) == 0 || d.Scale <= 0 {
			return errors.New("cauchy needs values and scale > 0")
		}
	case "incidence":
		if d.Site == "" && d.Expected <= 0 {
			return errors.New("incidence needs a site or expected > 0")
		}
		if d.Site != "" && d.Index == nil {
			return errors.New("incidence with a site needs an index")
		}
	}
	return nil
}

func oneOf(s string, set []string) bool {
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}
