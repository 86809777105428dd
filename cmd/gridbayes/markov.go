// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bda-labs/gridbayes/logger"
	"github.com/bda-labs/gridbayes/models"
	"github.com/bda-labs/gridbayes/render"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"
)

var (
	alphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "probability of a step from state 0 to state 1",
		Value: 0.1,
	}
	betaFlag = cli.Float64Flag{
		Name:  "beta",
		Usage: "probability of a step from state 1 to state 0",
		Value: 0.2,
	}
	pathsFlag = cli.IntFlag{
		Name:  "paths",
		Usage: "number of sample paths",
		Value: 1000,
	}
	lengthFlag = cli.IntFlag{
		Name:  "length",
		Usage: "number of steps in each path",
		Value: 20,
	}
	initP1Flag = cli.Float64Flag{
		Name:  "p1",
		Usage: "probability that a path starts in state 1",
	}
)

// markovCommand simulates a two-state Markov chain.
var markovCommand = cli.Command{
	Action:    markovAction,
	Name:      "markov",
	Usage:     "simulates a two-state Markov chain and compares it with its equilibrium",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&alphaFlag,
		&betaFlag,
		&pathsFlag,
		&lengthFlag,
		&initP1Flag,
		&seedFlag,
		&plotFlag,
		&htmlFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The markov command simulates --paths sample paths of --length steps of
a two-state chain with transition probabilities --alpha (0 to 1) and
--beta (1 to 0), each starting in state 1 with probability --p1. It
reports the fraction of paths in state 1 at each step, with its
posterior standard deviation, against the exact evolution and the
equilibrium.`,
}

// markovAction implements the markov command.
func markovAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Markov")
	if err != nil {
		return err
	}

	c := models.TwoStateMarkov{Alpha: ctx.Float64(alphaFlag.Name), Beta: ctx.Float64(betaFlag.Name)}
	if !(c.Alpha > 0 && c.Alpha <= 1 && c.Beta > 0 && c.Beta <= 1) {
		return fmt.Errorf("transition probabilities must be in (0, 1], got %g and %g", c.Alpha, c.Beta)
	}
	npaths, length := ctx.Int(pathsFlag.Name), ctx.Int(lengthFlag.Name)
	if npaths < 1 || length < 1 {
		return fmt.Errorf("need at least one path of at least one step")
	}
	p1 := ctx.Float64(initP1Flag.Name)
	if p1 < 0 || p1 > 1 {
		return fmt.Errorf("initial probability must be in [0, 1], got %g", p1)
	}

	stat, err := c.Stationary()
	if err != nil {
		return err
	}
	e0, e1 := c.Equilibrium()
	bold := color.New(color.Bold).SprintfFunc()
	s.printf("Transition matrix:\n%v\n", mat.Formatted(c.Transition(), mat.Prefix("    "), mat.Squeeze()))
	s.printf("Equilibrium (closed form):\t%s\n", bold("%.4f, %.4f", e0, e1))
	s.printf("Equilibrium (eigenvector):\t%s\n", bold("%.4f, %.4f", stat[0], stat[1]))

	timer := logger.StartTimer(s.log, "simulating paths")
	paths := c.SimulatePaths(s.rng, npaths, length, models.StateSampler(p1))
	timer.Stop()

	// Evolve the exact state distribution alongside.
	dist := mat.NewVecDense(2, []float64{1 - p1, p1})
	trans := c.Transition()

	steps := make([]float64, length+1)
	sim, sig, exact, eq := make([]float64, length+1), make([]float64, length+1), make([]float64, length+1), make([]float64, length+1)
	rows := make([][]string, 0, length+1)
	for t := 0; t <= length; t++ {
		if t > 0 {
			next := mat.NewVecDense(2, nil)
			next.MulVec(trans, dist)
			dist = next
		}
		pmf := models.MarginalPMF(paths, t)
		steps[t], sim[t], sig[t], exact[t], eq[t] = float64(t), pmf.P1, pmf.Sig1, dist.AtVec(1), e1
		rows = append(rows, []string{
			strconv.Itoa(t),
			strconv.FormatFloat(pmf.P1, 'f', 4, 64),
			strconv.FormatFloat(pmf.Sig1, 'f', 4, 64),
			strconv.FormatFloat(dist.AtVec(1), 'f', 4, 64),
		})
	}
	render.WriteTable(s.w, []string{"Step", "P(1) simulated", "Std dev", "P(1) exact"}, rows)

	fig := &render.Figure{
		Title:     fmt.Sprintf("Two-state chain, α=%g, β=%g", c.Alpha, c.Beta),
		XLabel:    "step",
		YLabel:    "P(state 1)",
		ErrorBars: []render.ErrorSeries{{Name: "simulated", Xs: steps, Ys: sim, Errs: sig}},
		Lines: []render.Series{
			{Name: "exact", Xs: steps, Ys: exact},
			{Name: "equilibrium", Xs: steps, Ys: eq, Dashed: true},
		},
	}
	return s.output(fig, ctx.String(plotFlag.Name), ctx.String(htmlFlag.Name))
}
