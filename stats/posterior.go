// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// modeTolerance is the precision, relative to the grid spacing, to
// which the mode is refined.
const modeTolerance = 1e-8

// Model describes Bayesian inference for a single parameter whose
// posterior is computed on a fixed grid.
//
// Exactly one of Like and LogLike must be set. At most one of Prior
// and LogPrior may be set; if neither is, the prior is flat.
//
// If LogPrior or LogLike is set, the computation is carried out in
// log space: the maximum log prior and maximum log likelihood over the
// grid are subtracted before exponentiating, so large counts do not
// overflow. A linear Prior or Like is converted to log space in that
// case.
type Model struct {
	// Grid is the parameter grid. It must be increasing and
	// uniformly spaced, with at least two points.
	Grid []float64

	// Prior and LogPrior are the prior density and its logarithm.
	Prior, LogPrior Func

	// Like and LogLike are the likelihood function and its
	// logarithm, with the observed data bound in.
	Like, LogLike Func
}

// A Posterior is the normalized posterior density of a Model on its
// grid, along with summaries derived from it.
//
// A Posterior is immutable except for the count of accept-reject
// iterations, so it must not be sampled with SampleAR from multiple
// goroutines at once.
type Posterior struct {
	xs   []float64
	span float64

	logSpace bool
	// In log space, prior and like are the log prior and log
	// likelihood and the max fields are what was subtracted from
	// them.
	prior, like             Func
	maxLogPrior, maxLogLike float64

	quasi, pdf, cdf []float64
	mlike           float64

	mean, variance float64

	mode, modeQuasi float64
	onBoundary      bool

	// envelope is the height of the uniform envelope used for
	// accept-reject sampling.
	envelope float64
	nAR      int
}

// Posterior computes the posterior distribution of m on its grid.
func (m Model) Posterior() (*Posterior, error) {
	if err := checkGrid(m.Grid); err != nil {
		return nil, err
	}
	switch {
	case m.Like == nil && m.LogLike == nil:
		return nil, ErrNoLikelihood
	case m.Like != nil && m.LogLike != nil:
		return nil, ErrBothLikelihoods
	case m.Prior != nil && m.LogPrior != nil:
		return nil, ErrBothPriors
	}

	xs := append([]float64(nil), m.Grid...)
	n := len(xs)
	p := &Posterior{
		xs:       xs,
		span:     xs[n-1] - xs[0],
		logSpace: m.LogPrior != nil || m.LogLike != nil,
	}

	// Evaluate the prior and likelihood over the grid.
	var priors, likes []float64
	if p.logSpace {
		p.prior, p.like = m.LogPrior, m.LogLike
		if p.prior == nil {
			if m.Prior != nil {
				p.prior = m.Prior.Log()
			} else {
				p.prior = Constant(0)
			}
		}
		if p.like == nil {
			p.like = m.Like.Log()
		}
		priors, likes = atEach(p.prior, xs), atEach(p.like, xs)

		// Subtract off the maxima to avoid overflow and
		// underflow. This rescales the marginal likelihood, so
		// keep the maxima to undo it later.
		p.maxLogPrior = floats.Max(priors)
		p.maxLogLike = floats.Max(likes)
		for i := range xs {
			priors[i] = math.Exp(priors[i] - p.maxLogPrior)
			likes[i] = math.Exp(likes[i] - p.maxLogLike)
		}
	} else {
		p.prior, p.like = m.Prior, m.Like
		if p.prior == nil {
			p.prior = Constant(1)
		}
		priors, likes = atEach(p.prior, xs), atEach(p.like, xs)
	}

	// Bayes's theorem, with the trapezoid rule for the marginal
	// likelihood.
	p.quasi = make([]float64, n)
	floats.MulTo(p.quasi, priors, likes)
	p.mlike = Trapezoid(xs, p.quasi)
	p.pdf = make([]float64, n)
	floats.ScaleTo(p.pdf, 1/p.mlike, p.quasi)

	// Moments and CDF.
	moment := make([]float64, n)
	floats.MulTo(moment, xs, p.pdf)
	p.mean = Trapezoid(xs, moment)
	floats.Mul(moment, xs)
	p.variance = Trapezoid(xs, moment) - p.mean*p.mean
	p.cdf = CumTrapezoid(xs, p.pdf)

	// Locate the mode on the grid and, unless it's on a boundary,
	// refine it between the neighboring grid points.
	i := floats.MaxIdx(p.pdf)
	if i == 0 || i == n-1 {
		p.mode, p.modeQuasi = xs[i], p.quasi[i]
		p.onBoundary = true
	} else {
		x, f := minimizeBounded(p.negLogQuasi, xs[i-1], xs[i+1], modeTolerance*(xs[1]-xs[0]))
		p.mode, p.modeQuasi = x, math.Exp(-f)
	}
	p.envelope = math.Max(p.pdf[i], p.modeQuasi/p.mlike)

	return p, nil
}

// logQuasi returns the log of the quasi-posterior at x, on the same
// scale as the values on the grid.
func (p *Posterior) logQuasi(x float64) float64 {
	if p.logSpace {
		return p.prior(x) - p.maxLogPrior + p.like(x) - p.maxLogLike
	}
	return math.Log(p.prior(x) * p.like(x))
}

func (p *Posterior) negLogQuasi(x float64) float64 {
	return -p.logQuasi(x)
}

// Quasi returns the quasi-posterior (prior times likelihood) at x.
// In log space, this is relative to exp(MaxLogPrior()+MaxLogLike()).
func (p *Posterior) Quasi(x float64) float64 {
	if p.logSpace {
		return math.Exp(p.logQuasi(x))
	}
	return p.prior(x) * p.like(x)
}

// Grid returns the parameter grid. The caller must not modify it.
func (p *Posterior) Grid() []float64 {
	return p.xs
}

// Density returns the normalized posterior density at each grid
// point. The caller must not modify it.
func (p *Posterior) Density() []float64 {
	return p.pdf
}

// Expect returns the posterior expectation of f, integrated over the
// grid.
func (p *Posterior) Expect(f Func) float64 {
	ys := make([]float64, len(p.xs))
	for i, x := range p.xs {
		ys[i] = p.pdf[i] * f(x)
	}
	return Trapezoid(p.xs, ys)
}

// CDFValues returns the posterior CDF at each grid point. The first
// value is 0. The caller must not modify it.
func (p *Posterior) CDFValues() []float64 {
	return p.cdf
}

// MarginalLikelihood returns the trapezoidal integral of the
// quasi-posterior. In log space this is relative to
// exp(MaxLogPrior()+MaxLogLike()); see LogMarginalLikelihood.
func (p *Posterior) MarginalLikelihood() float64 {
	return p.mlike
}

// LogMarginalLikelihood returns the log of the marginal likelihood
// with any log-space rescaling undone, suitable for Bayes factors.
func (p *Posterior) LogMarginalLikelihood() float64 {
	return math.Log(p.mlike) + p.maxLogPrior + p.maxLogLike
}

// MaxLogPrior returns the maximum log prior subtracted before
// exponentiating, or 0 if the Model was not in log space.
func (p *Posterior) MaxLogPrior() float64 {
	return p.maxLogPrior
}

// MaxLogLike returns the maximum log likelihood subtracted before
// exponentiating, or 0 if the Model was not in log space.
func (p *Posterior) MaxLogLike() float64 {
	return p.maxLogLike
}

// Mean returns the posterior mean.
func (p *Posterior) Mean() float64 {
	return p.mean
}

// Variance returns the posterior variance. Round-off can make this
// slightly negative for extremely narrow posteriors.
func (p *Posterior) Variance() float64 {
	return p.variance
}

// StdDev returns the posterior standard deviation. It is NaN if the
// computed variance is negative.
func (p *Posterior) StdDev() float64 {
	return math.Sqrt(p.variance)
}

// Mode returns the location of the posterior maximum.
func (p *Posterior) Mode() float64 {
	return p.mode
}

// ModeDensity returns the posterior density at Mode().
func (p *Posterior) ModeDensity() float64 {
	return p.modeQuasi / p.mlike
}

// OnBoundary reports whether the posterior maximum is at the first
// or last grid point. In that case Mode is that grid point.
func (p *Posterior) OnBoundary() bool {
	return p.onBoundary
}

// PDF returns the posterior density at x. It is 0 outside the grid.
func (p *Posterior) PDF(x float64) float64 {
	if x < p.xs[0] || x > p.xs[len(p.xs)-1] {
		return 0
	}
	return p.Quasi(x) / p.mlike
}

func (p *Posterior) PDFEach(xs []float64) []float64 {
	return atEach(p.PDF, xs)
}

// CDF returns the posterior CDF at x, linearly interpolated between
// grid points.
func (p *Posterior) CDF(x float64) float64 {
	n := len(p.xs)
	if x <= p.xs[0] {
		return 0
	} else if x >= p.xs[n-1] {
		return 1
	}
	i := sort.SearchFloat64s(p.xs, x)
	if p.xs[i] == x {
		return p.cdf[i]
	}
	// p.xs[i-1] < x < p.xs[i]
	t := (x - p.xs[i-1]) / (p.xs[i] - p.xs[i-1])
	return p.cdf[i-1] + t*(p.cdf[i]-p.cdf[i-1])
}

func (p *Posterior) CDFEach(xs []float64) []float64 {
	return atEach(p.CDF, xs)
}

// InvCDF returns the parameter value at which the linearly
// interpolated posterior CDF equals y.
func (p *Posterior) InvCDF(y float64) float64 {
	n := len(p.xs)
	if y <= 0 {
		return p.xs[0]
	}
	// The location with cdf >= y, so cdf[i-1] < y.
	i := sort.SearchFloat64s(p.cdf, y)
	if i >= n {
		return p.xs[n-1]
	}
	dudx := (p.cdf[i] - p.cdf[i-1]) / (p.xs[i] - p.xs[i-1])
	return p.xs[i-1] + (y-p.cdf[i-1])/dudx
}

func (p *Posterior) InvCDFEach(ys []float64) []float64 {
	return atEach(p.InvCDF, ys)
}

// Bounds returns the first and last grid points.
func (p *Posterior) Bounds() (float64, float64) {
	return p.xs[0], p.xs[len(p.xs)-1]
}

// CredibleInterval returns the central interval containing
// probability level of the posterior.
func (p *Posterior) CredibleInterval(level float64) (lo, hi float64) {
	tail := (1 - level) / 2
	return p.InvCDF(tail), p.InvCDF(1 - tail)
}
