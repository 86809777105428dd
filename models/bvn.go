// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"math"

	"github.com/bda-labs/gridbayes/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// BivariateNormal is a bivariate normal distribution for (x, y)
// given by its marginal means and standard deviations and the
// correlation coefficient.
type BivariateNormal struct {
	Means [2]float64
	Sigs  [2]float64
	Rho   float64

	dist *distmv.Normal
}

// NewBivariateNormal returns the bivariate normal with the given
// marginals and correlation. It returns an error unless the
// covariance matrix is positive definite, which requires positive
// sigmas and |rho| < 1.
func NewBivariateNormal(means, sigs [2]float64, rho float64) (*BivariateNormal, error) {
	b := &BivariateNormal{Means: means, Sigs: sigs, Rho: rho}
	dist, ok := distmv.NewNormal(means[:], b.Cov(), nil)
	if !ok || !(sigs[0] > 0 && sigs[1] > 0) {
		return nil, fmt.Errorf("%w: sigs %v, rho %g", ErrNotPosDef, sigs, rho)
	}
	b.dist = dist
	return b, nil
}

// Cov returns the covariance matrix.
func (b *BivariateNormal) Cov() *mat.SymDense {
	cross := b.Rho * b.Sigs[0] * b.Sigs[1]
	return mat.NewSymDense(2, []float64{
		b.Sigs[0] * b.Sigs[0], cross,
		cross, b.Sigs[1] * b.Sigs[1],
	})
}

// YGivenX returns the conditional expectation of y given x.
func (b *BivariateNormal) YGivenX(x float64) float64 {
	slope := b.Rho * b.Sigs[1] / b.Sigs[0]
	return b.Means[1] + slope*(x-b.Means[0])
}

// XGivenY returns the conditional expectation of x given y.
func (b *BivariateNormal) XGivenY(y float64) float64 {
	slope := b.Rho * b.Sigs[0] / b.Sigs[1]
	return b.Means[0] + slope*(y-b.Means[1])
}

// CondSigY returns the standard deviation of y given x, which does
// not depend on x.
func (b *BivariateNormal) CondSigY() float64 {
	return b.Sigs[1] * math.Sqrt(1-b.Rho*b.Rho)
}

// CondSigX returns the standard deviation of x given y.
func (b *BivariateNormal) CondSigX() float64 {
	return b.Sigs[0] * math.Sqrt(1-b.Rho*b.Rho)
}

// PDF returns the density at (x, y).
func (b *BivariateNormal) PDF(x, y float64) float64 {
	return b.dist.Prob([]float64{x, y})
}

// LogPDF returns the log density at (x, y).
func (b *BivariateNormal) LogPDF(x, y float64) float64 {
	return b.dist.LogProb([]float64{x, y})
}

// Sample returns n draws from the distribution, drawing x from its
// marginal and then y from its conditional given x.
func (b *BivariateNormal) Sample(r *rand.Rand, n int) (xs, ys []float64) {
	xm := stats.NormalDist{Mu: b.Means[0], Sigma: b.Sigs[0]}
	xs, ys = make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = xm.Rand(r)
		ys[i] = stats.NormalDist{Mu: b.YGivenX(xs[i]), Sigma: b.CondSigY()}.Rand(r)
	}
	return
}

// Grid returns n values of x and of y spanning fac standard
// deviations either side of the means.
func (b *BivariateNormal) Grid(n int, fac float64) (xs, ys []float64) {
	xs = stats.Linspace(b.Means[0]-fac*b.Sigs[0], b.Means[0]+fac*b.Sigs[0], n)
	ys = stats.Linspace(b.Means[1]-fac*b.Sigs[1], b.Means[1]+fac*b.Sigs[1], n)
	return
}

// LogPDFGrid returns the log density over the grid xs × ys relative
// to its peak. Element (j, i) is at (xs[i], ys[j]), so rows run over
// y.
func (b *BivariateNormal) LogPDFGrid(xs, ys []float64) *mat.Dense {
	g := mat.NewDense(len(ys), len(xs), nil)
	for j, y := range ys {
		for i, x := range xs {
			g.Set(j, i, b.LogPDF(x, y))
		}
	}
	peak := floats.Max(g.RawMatrix().Data)
	g.Apply(func(_, _ int, v float64) float64 { return v - peak }, g)
	return g
}

// BVNContourLevels are the levels of LogPDFGrid whose contours
// enclose 68.3%, 95.4%, 99.73%, and 99.99% of the probability.
var BVNContourLevels = []float64{-1.148, -3.090, -5.915, -9.667}
