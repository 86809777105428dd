// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bda-labs/gridbayes/config"
	"github.com/bda-labs/gridbayes/render"
	"github.com/urfave/cli/v2"
)

var (
	countsFlag = cli.IntFlag{
		Name:     "counts",
		Usage:    "number of events observed",
		Required: true,
	}
	intervalFlag = cli.Float64Flag{
		Name:     "interval",
		Usage:    "duration of the observation",
		Required: true,
	}
)

// poissonCommand infers a Poisson rate.
var poissonCommand = cli.Command{
	Action:    poissonAction,
	Name:      "poisson",
	Usage:     "computes the posterior for the rate of a Poisson process",
	ArgsUsage: " ",
	Flags: commonFlags(append(priorFlags(),
		&countsFlag,
		&intervalFlag,
		&loFlag,
		&hiFlag,
		&logSpaceFlag,
	)...),
	Description: `
The poisson command computes the posterior density of the rate r of a
Poisson process given --counts events in --interval. Without --hi the
grid extends about six standard deviations past the observed rate.`,
}

// poissonAction implements the poisson command.
func poissonAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Poisson")
	if err != nil {
		return err
	}

	n, interval := ctx.Int(countsFlag.Name), ctx.Float64(intervalFlag.Name)
	pr := flagPrior(ctx)
	g := config.Grid{Lo: ctx.Float64(loFlag.Name), Hi: ctx.Float64(hiFlag.Name), Points: s.points}
	m, err := poissonModel(n, interval, pr, g, ctx.Bool(logSpaceFlag.Name))
	if err != nil {
		return err
	}
	p, err := m.Posterior()
	if err != nil {
		return fmt.Errorf("poisson posterior: %w", err)
	}

	fig := &render.Figure{
		Title:  fmt.Sprintf("Poisson rate, %s prior", pr.Kind),
		XLabel: "rate",
		YLabel: "posterior PDF",
	}
	row := s.posterior(fmt.Sprintf("%d in %g", n, interval), p, fig)
	return s.finish(fig, []render.Summary{row})
}
