// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/bda-labs/gridbayes/config"
	"github.com/bda-labs/gridbayes/data"
	"github.com/bda-labs/gridbayes/models"
	"github.com/bda-labs/gridbayes/stats"
	"github.com/urfave/cli/v2"
)

// jeffreysMargin keeps binomial grids off 0 and 1 for priors that are
// infinite there.
const jeffreysMargin = 1e-4

// flagPrior returns the prior selected by the prior flags of ctx.
func flagPrior(ctx *cli.Context) config.Prior {
	return config.Prior{
		Kind:  ctx.String(priorFlag.Name),
		A:     ctx.Float64(priorAFlag.Name),
		B:     ctx.Float64(priorBFlag.Name),
		Shape: ctx.Float64(priorShapeFlag.Name),
		Scale: ctx.Float64(priorScaleFlag.Name),
		Mu:    ctx.Float64(priorMuFlag.Name),
		Sigma: ctx.Float64(priorSigmaFlag.Name),
	}
}

// buildPrior returns the prior density named by pr. A flat prior over
// a known grid [lo, hi] is normalized on it; otherwise it is nil,
// which is also flat.
func buildPrior(pr config.Prior, lo, hi float64) (stats.Func, error) {
	switch pr.Kind {
	case "", "flat":
		if lo < hi {
			return models.FlatPrior(lo, hi), nil
		}
		return nil, nil
	case "beta":
		if !(pr.A > 0 && pr.B > 0) {
			return nil, fmt.Errorf("beta prior needs a > 0 and b > 0, got %g, %g", pr.A, pr.B)
		}
		return models.BetaPrior(pr.A, pr.B), nil
	case "jeffreys":
		return models.JeffreysPrior(), nil
	case "gamma":
		if !(pr.Shape > 0 && pr.Scale > 0) {
			return nil, fmt.Errorf("gamma prior needs shape > 0 and scale > 0, got %g, %g", pr.Shape, pr.Scale)
		}
		return models.GammaPrior(pr.Shape, pr.Scale), nil
	case "exp":
		if !(pr.Scale > 0) {
			return nil, fmt.Errorf("exponential prior needs scale > 0, got %g", pr.Scale)
		}
		return models.ExpPrior(pr.Scale), nil
	case "normal":
		if !(pr.Sigma > 0) {
			return nil, fmt.Errorf("normal prior needs sigma > 0, got %g", pr.Sigma)
		}
		return models.NormalPrior(pr.Mu, pr.Sigma), nil
	}
	return nil, fmt.Errorf("unknown prior %q", pr.Kind)
}

// infiniteAtEnds reports whether pr diverges at 0 or 1.
func infiniteAtEnds(pr config.Prior) bool {
	return pr.Kind == "jeffreys" || pr.Kind == "beta" && (pr.A < 1 || pr.B < 1)
}

// binomialModel returns the binomial model for n successes in ntot
// trials.
func binomialModel(n, ntot int, pr config.Prior, g config.Grid, log bool) (models.Binomial, error) {
	b := models.Binomial{Successes: n, Trials: ntot, Lo: g.Lo, Hi: g.Hi, N: g.Points, Log: log}
	if b.Lo == 0 && b.Hi == 0 {
		b.Hi = 1
		if infiniteAtEnds(pr) {
			b.Lo, b.Hi = jeffreysMargin, 1-jeffreysMargin
		}
	}
	prior, err := buildPrior(pr, 0, 1)
	if err != nil {
		return b, err
	}
	b.Prior = prior
	return b, nil
}

// poissonModel returns the Poisson rate model for n counts in
// interval. A zero upper grid end spans well past the observed rate.
func poissonModel(n int, interval float64, pr config.Prior, g config.Grid, log bool) (models.PoissonRate, error) {
	p := models.PoissonRate{Counts: n, Interval: interval, Lo: g.Lo, Hi: g.Hi, N: g.Points, Log: log}
	if p.Hi == 0 && interval > 0 {
		p.Hi = (float64(n) + 6*math.Sqrt(float64(n)+1) + 1) / interval
	}
	prior, err := buildPrior(pr, p.Lo, p.Hi)
	if err != nil {
		return p, err
	}
	if log && prior != nil {
		p.LogPrior = prior.Log()
	} else {
		p.Prior = prior
	}
	return p, nil
}

// incidence returns the row of the cancer table for site.
func incidence(site string, index int) (data.Incidence, error) {
	rows, err := data.Cancer(site)
	if err != nil {
		return data.Incidence{}, err
	}
	if index < 0 || index >= len(rows) {
		return data.Incidence{}, fmt.Errorf("%s cancer table has no row %d (%d rows)", site, index, len(rows))
	}
	return rows[index], nil
}

// incidenceModel returns the incidence rate model for observed cases
// against expected, with an optional prior and grid.
func incidenceModel(observed int, expected float64, pr config.Prior, g config.Grid) (models.PoissonRate, error) {
	p := models.IncidenceRate(observed, expected)
	if g.Hi != 0 {
		p.Lo, p.Hi = g.Lo, g.Hi
	}
	if g.Points != 0 {
		p.N = g.Points
	}
	if pr.Kind != "" && pr.Kind != "flat" {
		prior, err := buildPrior(pr, p.Lo, p.Hi)
		if err != nil {
			return p, err
		}
		p.LogPrior = prior.Log()
	}
	return p, nil
}

// scenarioPosterior computes the posterior a scenario describes.
// Grids without a point count use points, except for incidence
// models, which have their own default.
func scenarioPosterior(sc config.Scenario, points int) (*stats.Posterior, error) {
	g := sc.Grid
	if g.Points == 0 {
		g.Points = points
	}
	d := sc.Data
	switch sc.Model {
	case "binomial":
		b, err := binomialModel(d.Successes, d.Trials, sc.Prior, g, sc.Log)
		if err != nil {
			return nil, err
		}
		return b.Posterior()
	case "poisson":
		p, err := poissonModel(d.Counts, d.Interval, sc.Prior, g, sc.Log)
		if err != nil {
			return nil, err
		}
		return p.Posterior()
	case "cauchy":
		c := models.CauchyLocation{Scale: d.Scale, Data: d.Values, Lo: g.Lo, Hi: g.Hi, N: g.Points}
		prior, err := buildPrior(sc.Prior, g.Lo, g.Hi)
		if err != nil {
			return nil, err
		}
		c.Prior = prior
		return c.Posterior()
	case "incidence":
		observed, expected := d.Observed, d.Expected
		if d.Site != "" {
			in, err := incidence(d.Site, *d.Index)
			if err != nil {
				return nil, err
			}
			observed, expected = in.Observed, in.Expected
		}
		p, err := incidenceModel(observed, expected, sc.Prior, sc.Grid)
		if err != nil {
			return nil, err
		}
		return p.Posterior()
	}
	return nil, fmt.Errorf("unknown model %q", sc.Model)
}
