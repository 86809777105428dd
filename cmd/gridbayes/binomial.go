// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bda-labs/gridbayes/config"
	"github.com/bda-labs/gridbayes/render"
	"github.com/bda-labs/gridbayes/stats"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	successesFlag = cli.IntFlag{
		Name:     "n",
		Usage:    "number of successes",
		Required: true,
	}
	trialsFlag = cli.IntFlag{
		Name:     "trials",
		Usage:    "number of trials",
		Required: true,
	}
	predictFlag = cli.IntFlag{
		Name:  "predict",
		Usage: "print the posterior predictive distribution of successes in `M` further trials",
	}
)

// binomialCommand infers a binomial success probability.
var binomialCommand = cli.Command{
	Action:    binomialAction,
	Name:      "binomial",
	Usage:     "computes the posterior for the success probability of a binomial process",
	ArgsUsage: " ",
	Flags: commonFlags(append(priorFlags(),
		&successesFlag,
		&trialsFlag,
		&loFlag,
		&hiFlag,
		&logSpaceFlag,
		&predictFlag,
	)...),
	Description: `
The binomial command computes the posterior density of the success
probability α given --n successes in --trials trials, on a grid over
[0, 1] unless --lo and --hi narrow it. Use --logspace for large counts.
With --predict M it also prints the probability of each number of
successes in M further trials.`,
}

// binomialAction implements the binomial command.
func binomialAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Binomial")
	if err != nil {
		return err
	}

	n, ntot := ctx.Int(successesFlag.Name), ctx.Int(trialsFlag.Name)
	pr := flagPrior(ctx)
	g := config.Grid{Lo: ctx.Float64(loFlag.Name), Hi: ctx.Float64(hiFlag.Name), Points: s.points}
	b, err := binomialModel(n, ntot, pr, g, ctx.Bool(logSpaceFlag.Name))
	if err != nil {
		return err
	}
	p, err := b.Posterior()
	if err != nil {
		return fmt.Errorf("binomial posterior: %w", err)
	}

	fig := &render.Figure{
		Title:  fmt.Sprintf("Binomial α, %s prior", pr.Kind),
		XLabel: "α",
		YLabel: "posterior PDF",
	}
	row := s.posterior(fmt.Sprintf("%d/%d", n, ntot), p, fig)

	if pr.Kind == "flat" && b.Lo == 0 && b.Hi == 1 {
		bold := color.New(color.Bold).SprintfFunc()
		s.printf("Exact marginal likelihood B(n+1, N-n+1):\t%s\n", bold("%.6g", b.FlatMarginal()))
		s.printf("Grid marginal likelihood:\t\t%s\n", bold("%.6g", math.Exp(row.LogML)))
	}
	if m := ctx.Int(predictFlag.Name); m > 0 {
		pred := binomialPredictive(p, m)
		rows := make([][]string, len(pred))
		for k, pk := range pred {
			rows[k] = []string{strconv.Itoa(k), strconv.FormatFloat(pk, 'g', 4, 64)}
		}
		s.printf("Posterior predictive, %d further trials:\n", m)
		render.WriteTable(s.w, []string{"successes", "probability"}, rows)
	} else if m < 0 {
		return fmt.Errorf("--predict must be positive, got %d", m)
	}
	return s.finish(fig, []render.Summary{row})
}

// binomialPredictive returns the posterior predictive probability of
// k successes in m further trials for k in [0, m].
func binomialPredictive(p *stats.Posterior, m int) []float64 {
	pred := make([]float64, m+1)
	for k := range pred {
		pred[k] = p.Expect(func(a float64) float64 {
			return stats.BinomialDist{N: m, P: a}.PMF(float64(k))
		})
	}
	return pred
}
