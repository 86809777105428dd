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
)

// BasisKind selects the polynomials of a PolyBasis.
type BasisKind int

const (
	// Monomial uses the powers 1, x, x², ….
	Monomial BasisKind = iota

	// Chebyshev uses the Chebyshev polynomials of the first kind,
	// T₀ = 1, T₁ = x, Tₖ = 2x·Tₖ₋₁ - Tₖ₋₂.
	Chebyshev
)

func (k BasisKind) String() string {
	switch k {
	case Monomial:
		return "monomial"
	case Chebyshev:
		return "chebyshev"
	}
	return fmt.Sprintf("BasisKind(%d)", int(k))
}

// ParseBasisKind returns the BasisKind named s.
func ParseBasisKind(s string) (BasisKind, error) {
	for _, k := range []BasisKind{Monomial, Chebyshev} {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown basis %q", s)
}

// PolyBasis is a linear regression basis of polynomials up to a given
// degree over a set of times. Times are mapped linearly so the first
// is -1 and the last is 1.
//
// The coefficients have independent normal priors.
type PolyBasis struct {
	Kind   BasisKind
	Degree int
	Times  []float64

	// Means and Sigmas are the prior means and standard deviations
	// of the Degree+1 coefficients.
	Means, Sigmas []float64

	mid, hdurn float64
	basis      *mat.Dense // basis[t, d]; rows run over time
}

// NewPolyBasis returns the basis of the given kind and degree over
// times, which must be increasing. Every coefficient has the prior
// N(mean, sigma²). NewPolyBasis panics if deg < 1 or there are fewer
// than two times.
func NewPolyBasis(kind BasisKind, deg int, times []float64, mean, sigma float64) *PolyBasis {
	if deg < 1 {
		panic("polynomial degree must be 1 or greater")
	}
	if len(times) < 2 {
		panic("basis needs at least two times")
	}
	n := len(times)
	b := &PolyBasis{
		Kind:   kind,
		Degree: deg,
		Times:  times,
		Means:  make([]float64, deg+1),
		Sigmas: make([]float64, deg+1),
		hdurn:  (times[n-1] - times[0]) / 2,
	}
	b.mid = times[0] + b.hdurn
	for i := range b.Means {
		b.Means[i], b.Sigmas[i] = mean, sigma
	}
	b.basis = mat.NewDense(n, deg+1, nil)
	for t, time := range times {
		b.basis.SetRow(t, b.terms(b.X(time)))
	}
	return b
}

// X maps time t to the basis coordinate.
func (b *PolyBasis) X(t float64) float64 {
	return (t - b.mid) / b.hdurn
}

// terms returns the Degree+1 basis polynomials at x.
func (b *PolyBasis) terms(x float64) []float64 {
	ts := make([]float64, b.Degree+1)
	ts[0], ts[1] = 1, x
	for d := 2; d <= b.Degree; d++ {
		switch b.Kind {
		case Monomial:
			ts[d] = x * ts[d-1]
		case Chebyshev:
			ts[d] = 2*x*ts[d-1] - ts[d-2]
		default:
			panic(fmt.Sprint("unknown basis ", b.Kind))
		}
	}
	return ts
}

// Basis returns the basis matrix. Element (t, d) is polynomial d at
// Times[t].
func (b *PolyBasis) Basis() mat.Matrix {
	return b.basis
}

// Func returns the polynomial with coefficients betas at each of
// Times.
func (b *PolyBasis) Func(betas []float64) []float64 {
	if len(betas) != b.Degree+1 {
		panic("len(betas) != Degree+1")
	}
	var f mat.VecDense
	f.MulVec(b.basis, mat.NewVecDense(len(betas), betas))
	return f.RawVector().Data
}

// Eval returns the polynomial with coefficients betas at time t,
// which need not be one of Times.
func (b *PolyBasis) Eval(t float64, betas []float64) float64 {
	return floats.Dot(b.terms(b.X(t)), betas)
}

// SamplePrior draws coefficients from the prior.
func (b *PolyBasis) SamplePrior(r *rand.Rand) []float64 {
	betas := make([]float64, b.Degree+1)
	for i := range betas {
		betas[i] = stats.NormalDist{Mu: b.Means[i], Sigma: b.Sigmas[i]}.Rand(r)
	}
	return betas
}

// PolyFit is the Gaussian posterior for the coefficients of a
// PolyBasis given data with known noise.
type PolyFit struct {
	// Mean is the posterior mean of the coefficients, which is
	// also the posterior mode.
	Mean []float64

	// Cov is the posterior covariance of the coefficients.
	Cov *mat.SymDense

	// LogEvidence is the log marginal likelihood of the data,
	// for comparing bases.
	LogEvidence float64

	chol mat.Cholesky
}

// Fit computes the posterior for the coefficients given ys observed
// at Times with independent normal noise of standard deviation
// sigma.
func (b *PolyBasis) Fit(ys []float64, sigma float64) (*PolyFit, error) {
	n, k := len(b.Times), b.Degree+1
	if len(ys) != n {
		panic("len(ys) != len(Times)")
	}
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: noise sigma %g", ErrRange, sigma)
	}
	y := mat.NewVecDense(n, ys)
	s2 := sigma * sigma

	// Posterior precision A = S₀⁻¹ + XᵀX/σ².
	prec := mat.NewSymDense(k, nil)
	prec.SymOuterK(1/s2, b.basis.T())
	// Right-hand side S₀⁻¹m + Xᵀy/σ².
	rhs := mat.NewVecDense(k, nil)
	rhs.MulVec(b.basis.T(), y)
	rhs.ScaleVec(1/s2, rhs)
	logDetPrior := 0.0
	for i := 0; i < k; i++ {
		v := b.Sigmas[i] * b.Sigmas[i]
		prec.SetSym(i, i, prec.At(i, i)+1/v)
		rhs.SetVec(i, rhs.AtVec(i)+b.Means[i]/v)
		logDetPrior += math.Log(v)
	}

	fit := &PolyFit{Cov: new(mat.SymDense)}
	if ok := fit.chol.Factorize(prec); !ok {
		return nil, fmt.Errorf("%w: posterior precision", ErrNotPosDef)
	}
	var mean mat.VecDense
	if err := fit.chol.SolveVecTo(&mean, rhs); err != nil {
		return nil, err
	}
	if err := fit.chol.InverseTo(fit.Cov); err != nil {
		return nil, err
	}
	fit.Mean = mean.RawVector().Data

	// Residuals of the data and of the coefficients from the
	// prior.
	var resid mat.VecDense
	resid.MulVec(b.basis, &mean)
	resid.SubVec(y, &resid)
	chi2 := mat.Dot(&resid, &resid) / s2
	for i := 0; i < k; i++ {
		d := fit.Mean[i] - b.Means[i]
		chi2 += d * d / (b.Sigmas[i] * b.Sigmas[i])
	}
	fit.LogEvidence = -0.5*(float64(n)*math.Log(2*math.Pi*s2)+chi2+logDetPrior) - 0.5*fit.chol.LogDet()
	return fit, nil
}

// StdDevs returns the posterior standard deviations of the
// coefficients.
func (f *PolyFit) StdDevs() []float64 {
	sds := make([]float64, len(f.Mean))
	for i := range sds {
		sds[i] = math.Sqrt(f.Cov.At(i, i))
	}
	return sds
}
