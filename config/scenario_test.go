// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poissonScenario = `
title: Poisson rate, flat and exponential priors
plot: rates.png
scenarios:
  - name: flat
    model: poisson
    log: true
    grid: {lo: 0.001, hi: 20, points: 500}
    data: {counts: 160, interval: 20}
  - name: exponential
    model: poisson
    log: true
    grid: {lo: 0.001, hi: 20, points: 500}
    prior: {kind: exp, scale: 10}
    data: {counts: 160, interval: 20}
    draws: 1000
    sampler: accept-reject
`

func TestParseScenario(t *testing.T) {
	f, err := ParseScenario([]byte(poissonScenario))
	require.NoError(t, err)
	assert.Equal(t, "rates.png", f.Plot)
	require.Len(t, f.Scenarios, 2)

	s := f.Scenarios[1]
	assert.Equal(t, "exponential", s.Name)
	assert.True(t, s.Log)
	assert.Equal(t, Grid{Lo: 0.001, Hi: 20, Points: 500}, s.Grid)
	assert.Equal(t, Prior{Kind: "exp", Scale: 10}, s.Prior)
	assert.Equal(t, 160, s.Data.Counts)
	assert.Equal(t, 20.0, s.Data.Interval)
	assert.Equal(t, 1000, s.Draws)
	assert.Equal(t, "accept-reject", s.Sampler)
}

func TestParseScenarioIncidence(t *testing.T) {
	f, err := ParseScenario([]byte(`
scenarios:
  - model: incidence
    data: {site: breast, index: 0}
  - model: incidence
    data: {observed: 12, expected: 9.5}
`))
	require.NoError(t, err)
	require.NotNil(t, f.Scenarios[0].Data.Index)
	assert.Equal(t, 0, *f.Scenarios[0].Data.Index)
	assert.Nil(t, f.Scenarios[1].Data.Index)
}

func TestParseScenarioErrors(t *testing.T) {
	for name, text := range map[string]string{
		"empty":         `title: nothing`,
		"unknown field": "scenarios:\n  - model: binomial\n    data: {successes: 1, trials: 2}\n    bogus: 1\n",
		"unknown model": "scenarios:\n  - model: weibull\n",
		"unknown prior": "scenarios:\n  - model: binomial\n    prior: {kind: lognormal}\n    data: {successes: 1, trials: 2}\n",
		"bad counts":    "scenarios:\n  - model: binomial\n    data: {successes: 3, trials: 2}\n",
		"no grid":       "scenarios:\n  - model: poisson\n    data: {counts: 3, interval: 2}\n",
		"no cauchy":     "scenarios:\n  - model: cauchy\n    data: {scale: 1}\n",
		"no index":      "scenarios:\n  - model: incidence\n    data: {site: breast}\n",
		"bad sampler":   "scenarios:\n  - model: binomial\n    sampler: gibbs\n    data: {successes: 1, trials: 2}\n",
		"one point":     "scenarios:\n  - model: binomial\n    grid: {points: 1}\n    data: {successes: 1, trials: 2}\n",
		"not yaml":      "scenarios: [",
	} {
		_, err := ParseScenario([]byte(text))
		assert.Error(t, err, name)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(poissonScenario), 0o644))
	f, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, f.Scenarios, 2)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
