// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bda-labs/gridbayes/config"
	"github.com/bda-labs/gridbayes/data"
	"github.com/bda-labs/gridbayes/render"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	siteFlag = cli.StringFlag{
		Name:  "site",
		Usage: "cancer site (\"breast\" or \"prostate\")",
		Value: "breast",
	}
	zipIndexFlag = cli.IntFlag{
		Name:  "zip-index",
		Usage: "row of the incidence table to analyze",
		Value: data.IthacaIndex,
	}
	allTownsFlag = cli.BoolFlag{
		Name:  "all",
		Usage: "summarize every row of the incidence table",
	}
)

// cancerCommand infers cancer incidence rates relative to expectation.
var cancerCommand = cli.Command{
	Action:    cancerAction,
	Name:      "cancer",
	Usage:     "computes the posterior for cancer incidence relative to the expected count",
	ArgsUsage: " ",
	Flags: commonFlags(
		&siteFlag,
		&zipIndexFlag,
		&allTownsFlag,
	),
	Description: `
The cancer command computes the posterior for the ratio of observed to
expected cancer cases in Tompkins County zip codes, treating the
observed count as Poisson with mean ratio × expected. With --all it
tabulates every zip code instead of one.`,
}

// cancerAction implements the cancer command.
func cancerAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Cancer")
	if err != nil {
		return err
	}
	site := ctx.String(siteFlag.Name)
	var g config.Grid
	if ctx.IsSet(pointsFlag.Name) {
		g.Points = s.points
	}

	if ctx.Bool(allTownsFlag.Name) {
		rows, err := data.Cancer(site)
		if err != nil {
			return err
		}
		return s.cancerTable(rows, g)
	}

	in, err := incidence(site, ctx.Int(zipIndexFlag.Name))
	if err != nil {
		return err
	}
	m, err := incidenceModel(in.Observed, in.Expected, config.Prior{}, g)
	if err != nil {
		return err
	}
	p, err := m.Posterior()
	if err != nil {
		return fmt.Errorf("incidence posterior: %w", err)
	}

	bold := color.New(color.Bold).SprintfFunc()
	s.printf("%s %s: %s observed, %s expected\n", in.Zip, in.Town, bold("%d", in.Observed), bold("%.1f", in.Expected))
	if in.CrossesCounty() {
		s.warnf("%s crosses the county line", in.Zip)
	}
	s.printf("P(ratio > 1):\t%s\n", bold("%.4f", 1-p.CDF(1)))

	fig := &render.Figure{
		Title:  fmt.Sprintf("%s cancer incidence, %s", site, in.Town),
		XLabel: "observed / expected",
		YLabel: "posterior PDF",
	}
	row := s.posterior(in.Zip, p, fig)
	return s.finish(fig, []render.Summary{row})
}

// cancerTable summarizes the incidence posterior of every row.
func (s *session) cancerTable(rows []data.Incidence, g config.Grid) error {
	out := make([][]string, 0, len(rows))
	for _, in := range rows {
		m, err := incidenceModel(in.Observed, in.Expected, config.Prior{}, g)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Zip, err)
		}
		p, err := m.Posterior()
		if err != nil {
			return fmt.Errorf("%s: %w", in.Zip, err)
		}
		lo, hi := p.CredibleInterval(0.954)
		out = append(out, []string{
			in.Zip,
			in.Town,
			strconv.Itoa(in.Observed),
			strconv.FormatFloat(in.Expected, 'f', 1, 64),
			strconv.FormatFloat(in.Ratio(), 'f', 3, 64),
			strconv.FormatFloat(p.Mean(), 'f', 3, 64),
			fmt.Sprintf("[%.3f, %.3f]", lo, hi),
			strconv.FormatFloat(1-p.CDF(1), 'f', 3, 64),
		})
	}
	render.WriteTable(s.w, []string{"Zip", "Town", "Observed", "Expected", "Ratio", "Mean", "95% CI", "P(>1)"}, out)
	return nil
}
