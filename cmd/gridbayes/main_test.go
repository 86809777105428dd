// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bda-labs/gridbayes/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the app with args and stdin and returns its output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := initApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"gridbayes"}, args...))
	return out.String(), err
}

func TestBinomialCommand(t *testing.T) {
	dir := t.TempDir()
	png, html := filepath.Join(dir, "b.png"), filepath.Join(dir, "b.html")
	out, err := run(t, "", "binomial", "--n", "8", "--trials", "12", "--draws", "200", "--seed", "1", "--plot", png, "--html", html)
	require.NoError(t, err)
	assert.Contains(t, out, "8/12")
	assert.Contains(t, out, "Exact marginal likelihood")
	assert.FileExists(t, png)
	assert.FileExists(t, html)

	_, err = run(t, "", "binomial", "--n", "8")
	assert.Error(t, err)

	_, err = run(t, "", "binomial", "--n", "13", "--trials", "12")
	assert.Error(t, err)
}

func TestBinomialPredict(t *testing.T) {
	// A flat prior and 8/12 successes give a Beta(9, 5) posterior, so
	// the next trial succeeds with probability 9/14.
	out, err := run(t, "", "binomial", "--n", "8", "--trials", "12", "--predict", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Posterior predictive, 1 further trials")
	assert.Contains(t, out, "0.6429")
	assert.Contains(t, out, "0.3571")

	_, err = run(t, "", "binomial", "--n", "8", "--trials", "12", "--predict", "-1")
	assert.Error(t, err)
}

func TestAppCopyright(t *testing.T) {
	app := initApp()
	assert.Equal(t, "(c) 2026 The gridbayes Authors", app.Copyright)
	assert.NotContains(t, app.Copyright, "Go Authors")
}

func TestBinomialJeffreysBoundary(t *testing.T) {
	out, err := run(t, "", "binomial", "--n", "0", "--trials", "10", "--prior", "jeffreys")
	require.NoError(t, err)
	assert.Contains(t, out, "(edge)")
	assert.Contains(t, out, "boundary")
}

func TestPoissonCommand(t *testing.T) {
	out, err := run(t, "", "poisson", "--counts", "5", "--interval", "2", "--prior", "exp", "--scale", "4", "--logspace")
	require.NoError(t, err)
	assert.Contains(t, out, "5 in 2")

	_, err = run(t, "", "poisson", "--counts", "5", "--interval", "0")
	assert.Error(t, err)
}

func TestCauchyCommand(t *testing.T) {
	out, err := run(t, "", "cauchy", "--scale", "0.5", "--", "-1", "0.2", "0.4", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "4 values")

	out, err = run(t, "1.5\n\n2.5\n2\n", "cauchy")
	require.NoError(t, err)
	assert.Contains(t, out, "3 values")

	_, err = run(t, "1\nx\n", "cauchy")
	assert.ErrorContains(t, err, "line 2")
}

func TestMachineCommand(t *testing.T) {
	out, err := run(t, "", "machine", "--batch", "6,2")
	require.NoError(t, err)
	assert.Contains(t, out, "0.9600")
	assert.Contains(t, out, "0.0400")

	_, err = run(t, "", "machine", "--batch", "6,7")
	assert.Error(t, err)
}

func TestParseBatches(t *testing.T) {
	b, err := parseBatches([]int{10, 1, 40, 0})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{10, 1}, {40, 0}}, b)

	_, err = parseBatches([]int{10, 1, 40})
	assert.Error(t, err)
}

func TestMarkovCommand(t *testing.T) {
	out, err := run(t, "", "markov", "--paths", "200", "--length", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0.6667, 0.3333")
	assert.Equal(t, 2, strings.Count(out, "0.6667, 0.3333"))

	_, err = run(t, "", "markov", "--alpha", "0")
	assert.Error(t, err)
}

func TestClimateCommand(t *testing.T) {
	out, err := run(t, "", "climate", "--degree", "2", "--basis", "monomial")
	require.NoError(t, err)
	assert.Contains(t, out, "monomial basis")
	assert.Contains(t, out, "LOG EVIDENCE")

	_, err = run(t, "", "climate", "--basis", "fourier")
	assert.Error(t, err)
}

func TestCancerCommand(t *testing.T) {
	out, err := run(t, "", "cancer")
	require.NoError(t, err)
	assert.Contains(t, out, "Ithaca")
	assert.Contains(t, out, "181")
	assert.Contains(t, out, "P(ratio > 1)")

	out, err = run(t, "", "cancer", "--site", "prostate", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "ZIP")
	assert.Contains(t, out, "240")

	_, err = run(t, "", "cancer", "--zip-index", "1000")
	assert.Error(t, err)
}

func TestBVNCommand(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "bvn.svg")
	out, err := run(t, "", "bvn", "--rho", "0.8", "--samples", "300", "--points", "40", "--seed", "2", "--plot", svg)
	require.NoError(t, err)
	assert.Contains(t, out, "correlation")
	assert.FileExists(t, svg)

	_, err = run(t, "", "bvn", "--rho", "1")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Test
scenarios:
  - name: flat
    model: binomial
    data: {successes: 8, trials: 12}
  - name: rate
    model: poisson
    grid: {hi: 10}
    prior: {kind: gamma, shape: 2, scale: 1}
    data: {counts: 5, interval: 2}
    draws: 50
    sampler: accept-reject
  - name: ithaca
    model: incidence
    data: {site: breast, index: 6}
`), 0o644))

	html := filepath.Join(dir, "s.html")
	out, err := run(t, "", "run", "--html", html, path)
	require.NoError(t, err)
	for _, name := range []string{"flat", "rate", "ithaca"} {
		assert.Contains(t, out, name)
	}
	assert.FileExists(t, html)

	_, err = run(t, "", "run")
	assert.Error(t, err)
}

func TestScenarioPosterior(t *testing.T) {
	idx := 6
	p, err := scenarioPosterior(config.Scenario{
		Model: "incidence",
		Data:  config.Data{Site: "breast", Index: &idx},
	}, 200)
	require.NoError(t, err)
	assert.Len(t, p.Grid(), 400)
	assert.InDelta(t, 181/175.1, p.Mode(), 0.02)

	p, err = scenarioPosterior(config.Scenario{
		Model: "binomial",
		Prior: config.Prior{Kind: "jeffreys"},
		Data:  config.Data{Successes: 3, Trials: 10},
	}, 100)
	require.NoError(t, err)
	assert.Equal(t, jeffreysMargin, p.Grid()[0])
	assert.Len(t, p.Grid(), 100)

	_, err = scenarioPosterior(config.Scenario{Model: "binomial", Prior: config.Prior{Kind: "beta"}, Data: config.Data{Trials: 1}}, 100)
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "40\n15\n50\n20\n35\n", "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "median")
	assert.Contains(t, out, "35")

	_, err = run(t, "1\n", "describe")
	assert.Error(t, err)
}

func TestEnvCommand(t *testing.T) {
	out, err := run(t, "", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "GRIDBAYES_POINTS")
	assert.Contains(t, out, "Points:200")
}
