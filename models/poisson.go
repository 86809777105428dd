// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"math"

	"github.com/bda-labs/gridbayes/stats"
)

// PoissonRate is inference for the rate r of a Poisson process from
// the number of events counted in an interval.
type PoissonRate struct {
	// Interval is the duration of the observation.
	Interval float64

	// Counts is the number of events observed.
	Counts int

	// Prior or LogPrior is the prior for r. If both are nil, the
	// prior is flat.
	Prior, LogPrior stats.Func

	// [Lo, Hi] is the range of the rate grid and N is the number
	// of grid points, which defaults to 200. Hi is required.
	Lo, Hi float64
	N      int

	// Log computes the posterior from the log likelihood. It is
	// implied by LogPrior.
	Log bool
}

// Like returns the likelihood (rT)^n exp(-rT).
func (p PoissonRate) Like() stats.Func {
	n := float64(p.Counts)
	return func(r float64) float64 {
		rt := p.Interval * r
		return math.Pow(rt, n) * math.Exp(-rt)
	}
}

// LogLike returns the log likelihood n log(rT) - rT.
func (p PoissonRate) LogLike() stats.Func {
	n := float64(p.Counts)
	return func(r float64) float64 {
		rt := p.Interval * r
		return xlogy(n, rt) - rt
	}
}

// Model returns the grid model for p.
func (p PoissonRate) Model() (stats.Model, error) {
	if p.Counts < 0 {
		return stats.Model{}, fmt.Errorf("%w: %d events", ErrCounts, p.Counts)
	}
	if !(p.Interval > 0) {
		return stats.Model{}, fmt.Errorf("%w: interval %g", ErrRange, p.Interval)
	}
	if p.Lo < 0 {
		return stats.Model{}, fmt.Errorf("%w: negative rate %g", ErrRange, p.Lo)
	}
	xs, err := grid(p.Lo, p.Hi, p.N, 200)
	if err != nil {
		return stats.Model{}, err
	}
	m := stats.Model{Grid: xs, Prior: p.Prior, LogPrior: p.LogPrior}
	if p.Log || p.LogPrior != nil {
		m.LogLike = p.LogLike()
	} else {
		m.Like = p.Like()
	}
	return m, nil
}

// Posterior computes the posterior for the rate.
func (p PoissonRate) Posterior() (*stats.Posterior, error) {
	m, err := p.Model()
	if err != nil {
		return nil, err
	}
	return m.Posterior()
}

// IncidenceRate returns inference for the ratio of an observed count
// of cases to the number expected, such as a cancer incidence
// relative to the population baseline. The ratio plays the role of
// a Poisson rate whose interval is the expected count, so a ratio of
// 1 means incidence matches expectation.
//
// The grid spans zero to well past the observed ratio and is computed
// in log space.
func IncidenceRate(observed int, expected float64) PoissonRate {
	n := float64(observed)
	hi := (n + 6*math.Sqrt(n+1) + 1) / expected
	return PoissonRate{
		Interval: expected,
		Counts:   observed,
		Lo:       1e-3 * hi,
		Hi:       hi,
		N:        400,
		Log:      true,
	}
}
