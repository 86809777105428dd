// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// laplaceStep is the second-differencing step as a fraction of the
// posterior standard deviation.
const laplaceStep = 0.01

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// LaplaceApprox is a Gaussian approximation to a peaked integrand
// g(x)·q(x), where q is the quasi-posterior.
type LaplaceApprox struct {
	// Amplitude is the integrand's value at its peak.
	Amplitude float64

	// Location is the refined location of the peak.
	Location float64

	// Sigma is the width of the Gaussian implied by the
	// integrand's curvature at the peak.
	Sigma float64

	// Integral is the Laplace approximation of the integral of
	// the integrand, sqrt(2π)·Sigma·Amplitude.
	Integral float64
}

// Laplace returns the Laplace approximation for the integral of g
// times the quasi-posterior. If g is nil, g = 1 is used and Integral
// approximates MarginalLikelihood().
//
// In log space, Amplitude and Integral carry the same
// exp(MaxLogPrior()+MaxLogLike()) scaling as the quasi-posterior.
//
// Laplace returns ErrBoundaryPeak if either the posterior or the
// g-weighted quasi-posterior peaks at a grid boundary, where the
// curvature can't be estimated.
func (p *Posterior) Laplace(g Func) (LaplaceApprox, error) {
	if p.onBoundary {
		return LaplaceApprox{}, ErrBoundaryPeak
	}
	if g == nil {
		g = Constant(1)
	}

	// Find the peak of g*q on the grid.
	n := len(p.xs)
	gq := atEach(g, p.xs)
	floats.Mul(gq, p.quasi)
	i := floats.MaxIdx(gq)
	if i == 0 || i == n-1 {
		return LaplaceApprox{}, ErrBoundaryPeak
	}

	// Refine the peak by minimizing -log(g*q).
	f := func(x float64) float64 {
		return -math.Log(g(x)) + p.negLogQuasi(x)
	}
	locn, fmin := minimizeBounded(f, p.xs[i-1], p.xs[i+1], modeTolerance*(p.xs[1]-p.xs[0]))
	ampl := math.Exp(-fmin)

	// Curvature by second differencing.
	h := laplaceStep * p.StdDev()
	gqAt := func(x float64) float64 { return g(x) * p.Quasi(x) }
	d2 := (gqAt(locn-h) - 2*ampl + gqAt(locn+h)) / (h * h)
	sig := 1 / math.Sqrt(-d2/ampl)

	return LaplaceApprox{
		Amplitude: ampl,
		Location:  locn,
		Sigma:     sig,
		Integral:  sqrt2Pi * sig * ampl,
	}, nil
}

// NormalApprox returns a normal distribution centered on the
// posterior mode whose width matches the posterior's curvature there.
// It returns ErrBoundaryPeak if the mode is on a grid boundary.
func (p *Posterior) NormalApprox() (NormalDist, error) {
	if p.onBoundary {
		return NormalDist{}, ErrBoundaryPeak
	}
	h := laplaceStep * p.StdDev()
	d2 := (p.Quasi(p.mode-h) - 2*p.modeQuasi + p.Quasi(p.mode+h)) / (h * h)
	return NormalDist{Mu: p.mode, Sigma: 1 / math.Sqrt(-d2/p.modeQuasi)}, nil
}
