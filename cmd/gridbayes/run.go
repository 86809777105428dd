// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bda-labs/gridbayes/config"
	"github.com/bda-labs/gridbayes/render"
	"github.com/bda-labs/gridbayes/stats"
	"github.com/urfave/cli/v2"
)

// runCommand computes the posteriors described by a scenario file.
var runCommand = cli.Command{
	Action:    runAction,
	Name:      "run",
	Usage:     "computes and plots the posteriors described by a scenario file",
	ArgsUsage: "<scenario.yaml>",
	Flags:     commonFlags(),
	Description: `
The run command reads a YAML scenario file listing one or more
posteriors, computes each, and draws them on one figure. For example:

    title: Binomial priors
    plot: binomial.png
    scenarios:
      - name: flat
        model: binomial
        data: {successes: 8, trials: 12}
      - name: jeffreys
        model: binomial
        prior: {kind: jeffreys}
        data: {successes: 8, trials: 12}
        draws: 1000

Scenarios may set their own draws and sampler; otherwise the flags
apply. --plot and --html override the file's outputs.`,
}

// runAction implements the run command.
func runAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Run")
	if err != nil {
		return err
	}
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("run command requires exactly 1 argument")
	}

	file, err := config.LoadScenario(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	s.log.Infof("Running %d scenarios", len(file.Scenarios))

	fig := &render.Figure{Title: file.Title, XLabel: "parameter", YLabel: "posterior PDF"}
	rows := make([]render.Summary, 0, len(file.Scenarios))
	for i, sc := range file.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("%s #%d", sc.Model, i+1)
		}
		p, err := scenarioPosterior(sc, s.points)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", name, err)
		}

		n, method := s.draws, s.sampler
		if sc.Draws > 0 {
			n = sc.Draws
		}
		if sc.Sampler != "" {
			if method, err = stats.ParseSampleMethod(sc.Sampler); err != nil {
				return fmt.Errorf("scenario %s: %w", name, err)
			}
		}
		rows = append(rows, s.posteriorDraws(name, p, fig, n, method))
	}
	render.WriteSummaries(s.w, rows)

	plot, html := file.Plot, file.HTML
	if ctx.IsSet(plotFlag.Name) {
		plot = ctx.String(plotFlag.Name)
	}
	if ctx.IsSet(htmlFlag.Name) {
		html = ctx.String(htmlFlag.Name)
	}
	return s.output(fig, plot, html)
}
