// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bda-labs/gridbayes/logger"
	"github.com/bda-labs/gridbayes/render"
	"github.com/bda-labs/gridbayes/stats"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// describeCommand summarizes samples read from standard input.
var describeCommand = cli.Command{
	Action:    describeAction,
	Name:      "describe",
	Usage:     "describes the distribution of numbers read from standard input",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&plotFlag,
		&htmlFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The describe command reads newline-separated numbers, such as posterior
draws, from standard input and reports their moments, quantiles, and
kernel density estimate.`,
}

// describeAction implements the describe command.
func describeAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Describe")
	if err != nil {
		return err
	}

	xs, err := readValues(ctx.App.Reader)
	if err != nil {
		return err
	}
	if len(xs) < 2 {
		return fmt.Errorf("need at least 2 values, got %d", len(xs))
	}
	sample := stats.Sample{Xs: xs}
	sample.Sort()

	bold := color.New(color.Bold).SprintfFunc()
	s.printf("N %s  sum %s  mean %s  std dev %s  variance %s\n",
		bold("%d", len(xs)), bold("%.6g", sample.Sum()), bold("%.6g", sample.Mean()),
		bold("%.6g", sample.StdDev()), bold("%.6g", sample.Variance()))

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	var rows [][]string
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		rows = append(rows, []string{label, strconv.FormatFloat(sample.Percentile(float64(p)/100), 'g', 6, 64)})
	}
	render.WriteTable(s.w, []string{"Quantile", "Value"}, rows)

	// Kernel density estimate.
	kde := stats.KDE{}.From(sample)
	lo, hi := sample.Bounds()
	pad := 3 * stats.BandwidthScott(sample)
	if pad == 0 || math.IsNaN(pad) {
		pad = 1
	}
	grid := stats.Linspace(lo-pad, hi+pad, 200)
	fig := &render.Figure{
		Title:  fmt.Sprintf("%d values", len(xs)),
		XLabel: "value",
		YLabel: "density",
		Hists:  []render.Hist{{Name: "values", Values: xs, Bins: 30}},
		Lines:  []render.Series{render.DensitySeries("KDE", kde, grid)},
	}
	return s.output(fig, ctx.String(plotFlag.Name), ctx.String(htmlFlag.Name))
}
