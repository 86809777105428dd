// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bda-labs/gridbayes/data"
	"github.com/bda-labs/gridbayes/logger"
	"github.com/bda-labs/gridbayes/models"
	"github.com/bda-labs/gridbayes/render"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"
)

var (
	degreeFlag = cli.IntFlag{
		Name:  "degree",
		Usage: "polynomial degree",
		Value: 3,
	}
	basisFlag = cli.StringFlag{
		Name:  "basis",
		Usage: "polynomial basis (\"monomial\" or \"chebyshev\")",
		Value: "chebyshev",
	}
	noiseFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "standard deviation of the measurement noise",
		Value: 0.1,
	}
	coefSigmaFlag = cli.Float64Flag{
		Name:  "coef-sigma",
		Usage: "prior standard deviation of each coefficient",
		Value: 1,
	}
)

// climateCommand fits polynomial trends to the temperature record.
var climateCommand = cli.Command{
	Action:    climateAction,
	Name:      "climate",
	Usage:     "fits a polynomial trend to the global temperature anomaly record",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&degreeFlag,
		&basisFlag,
		&noiseFlag,
		&coefSigmaFlag,
		&plotFlag,
		&htmlFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The climate command fits a polynomial of --degree in the --basis to the
GISS annual global temperature anomalies, assuming Gaussian noise of
--sigma and independent N(0, coef-sigma²) priors on the coefficients.
It reports the posterior coefficients and compares the evidence of
every degree up to --degree.`,
}

// climateAction implements the climate command.
func climateAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Climate")
	if err != nil {
		return err
	}

	kind, err := models.ParseBasisKind(ctx.String(basisFlag.Name))
	if err != nil {
		return err
	}
	deg := ctx.Int(degreeFlag.Name)
	if deg < 1 {
		return fmt.Errorf("degree must be at least 1, got %d", deg)
	}
	sigma, coefSigma := ctx.Float64(noiseFlag.Name), ctx.Float64(coefSigmaFlag.Name)
	if !(coefSigma > 0) {
		return fmt.Errorf("coefficient prior sigma must be positive, got %g", coefSigma)
	}

	years, dTs, err := data.Temperatures()
	if err != nil {
		return fmt.Errorf("failed to read temperatures: %w", err)
	}
	s.log.Infof("Read %d years, %g to %g", len(years), years[0], years[len(years)-1])

	// Evidence for each degree.
	var evRows [][]string
	var basis *models.PolyBasis
	var fit *models.PolyFit
	for d := 1; d <= deg; d++ {
		b := models.NewPolyBasis(kind, d, years, 0, coefSigma)
		f, err := b.Fit(dTs, sigma)
		if err != nil {
			return fmt.Errorf("degree %d fit: %w", d, err)
		}
		evRows = append(evRows, []string{strconv.Itoa(d), strconv.FormatFloat(f.LogEvidence, 'f', 2, 64)})
		basis, fit = b, f
	}

	coefRows := make([][]string, len(fit.Mean))
	for i, sd := range fit.StdDevs() {
		coefRows[i] = []string{
			strconv.Itoa(i),
			strconv.FormatFloat(fit.Mean[i], 'g', 5, 64),
			strconv.FormatFloat(sd, 'g', 5, 64),
		}
	}
	bold := color.New(color.Bold).SprintfFunc()
	s.printf("%s basis, degree %s\n", kind, bold("%d", deg))
	render.WriteTable(s.w, []string{"Coefficient", "Mean", "Std dev"}, coefRows)
	render.WriteTable(s.w, []string{"Degree", "log evidence"}, evRows)

	// Posterior mean trend with a one sigma band.
	trend := basis.Func(fit.Mean)
	lo, hi := make([]float64, len(years)), make([]float64, len(years))
	for t := range years {
		x := mat.NewVecDense(deg+1, mat.Row(nil, t, basis.Basis()))
		sd := math.Sqrt(mat.Inner(x, fit.Cov, x))
		lo[t], hi[t] = trend[t]-sd, trend[t]+sd
	}
	fig := &render.Figure{
		Title:  fmt.Sprintf("GISS temperature anomaly, degree %d %s fit", deg, kind),
		XLabel: "year",
		YLabel: "ΔT (°C)",
		Points: []render.Series{{Name: "GISS", Xs: years, Ys: dTs}},
		Lines: []render.Series{
			{Name: "posterior mean", Xs: years, Ys: trend},
			{Name: "-1σ", Xs: years, Ys: lo, Dashed: true},
			{Name: "+1σ", Xs: years, Ys: hi, Dashed: true},
		},
	}
	return s.output(fig, ctx.String(plotFlag.Name), ctx.String(htmlFlag.Name))
}
