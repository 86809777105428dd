// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bda-labs/gridbayes/models"
	"github.com/bda-labs/gridbayes/render"
	"github.com/urfave/cli/v2"
)

var cauchyScaleFlag = cli.Float64Flag{
	Name:  "scale",
	Usage: "known scale of the Cauchy distribution",
	Value: 1,
}

// cauchyCommand infers the location of a Cauchy distribution.
var cauchyCommand = cli.Command{
	Action:    cauchyAction,
	Name:      "cauchy",
	Usage:     "computes the posterior for the location of a Cauchy distribution",
	ArgsUsage: "[values...]",
	Flags: commonFlags(
		&cauchyScaleFlag,
		&loFlag,
		&hiFlag,
	),
	Description: `
The cauchy command computes the posterior density of the location of a
Cauchy distribution with known --scale from the values given as
arguments, or one per line on standard input if there are none. The grid
spans the data unless --lo and --hi are given. Separate negative values
from the flags with --.`,
}

// cauchyAction implements the cauchy command.
func cauchyAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Cauchy")
	if err != nil {
		return err
	}

	var xs []float64
	if ctx.Args().Present() {
		xs, err = parseValues(ctx.Args().Slice())
	} else {
		xs, err = readValues(ctx.App.Reader)
	}
	if err != nil {
		return err
	}
	s.log.Infof("Read %d values", len(xs))

	c := models.CauchyLocation{
		Scale: ctx.Float64(cauchyScaleFlag.Name),
		Data:  xs,
		Lo:    ctx.Float64(loFlag.Name),
		Hi:    ctx.Float64(hiFlag.Name),
		N:     s.points,
	}
	p, err := c.Posterior()
	if err != nil {
		return fmt.Errorf("cauchy posterior: %w", err)
	}

	fig := &render.Figure{
		Title:  fmt.Sprintf("Cauchy location, scale %g", c.Scale),
		XLabel: "location",
		YLabel: "posterior PDF",
	}
	row := s.posterior(fmt.Sprintf("%d values", len(xs)), p, fig)
	return s.finish(fig, []render.Summary{row})
}

func parseValues(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// readValues reads one number per line from r, skipping blank lines.
func readValues(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		x, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, x)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
