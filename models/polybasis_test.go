// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

func TestPolyBasisTerms(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	cheb := NewPolyBasis(Chebyshev, 5, times, 0, 1)
	mono := NewPolyBasis(Monomial, 5, times, 0, 1)

	// t=3 maps to x=0.5.
	if x := cheb.X(3); x != 0.5 {
		t.Fatalf("X(3): want 0.5, got %v", x)
	}
	x := 0.5
	wantCheb := []float64{1, x, 2*x*x - 1, x * (4*x*x - 3), 1 + x*x*(8*x*x-8), x * (5 + x*x*(-20+16*x*x))}
	for d, want := range wantCheb {
		if got := cheb.Basis().At(3, d); !aeq(want, got) {
			t.Errorf("T_%d(%v): want %v, got %v", d, x, want, got)
		}
		if got := mono.Basis().At(3, d); !aeq(math.Pow(x, float64(d)), got) {
			t.Errorf("x^%d: want %v, got %v", d, math.Pow(x, float64(d)), got)
		}
	}
	if cheb.Basis().At(0, 1) != -1 || cheb.Basis().At(4, 1) != 1 {
		t.Errorf("times don't map onto [-1, 1]")
	}
}

func TestPolyBasisFunc(t *testing.T) {
	times := []float64{1900, 1925, 1950, 1975, 2000}
	b := NewPolyBasis(Chebyshev, 3, times, 0, 1)
	betas := []float64{0.5, -1, 2, 0.25}
	f := b.Func(betas)
	for i, tm := range times {
		if got := b.Eval(tm, betas); !aeq(f[i], got) {
			t.Errorf("Eval(%v) = %v, Func gives %v", tm, got, f[i])
		}
	}

	r := rand.New(rand.NewSource(1))
	if draw := b.SamplePrior(r); len(draw) != 4 {
		t.Errorf("SamplePrior: got %d coefficients", len(draw))
	}
}

func TestPolyBasisFit(t *testing.T) {
	times := make([]float64, 21)
	for i := range times {
		times[i] = float64(i)
	}
	for _, kind := range []BasisKind{Monomial, Chebyshev} {
		b := NewPolyBasis(kind, 2, times, 0, 10)
		want := []float64{1, 2, -0.5}
		fit, err := b.Fit(b.Func(want), 1e-3)
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}
		for i := range want {
			if math.Abs(fit.Mean[i]-want[i]) > 1e-4 {
				t.Errorf("%v: beta[%d]: want %v, got %v", kind, i, want[i], fit.Mean[i])
			}
		}
		for i, sd := range fit.StdDevs() {
			if !(sd > 0 && sd < 1e-2) {
				t.Errorf("%v: beta[%d] std dev %v", kind, i, sd)
			}
		}
	}
}

func TestPolyBasisEvidence(t *testing.T) {
	// The evidence is the density of the data under its prior
	// predictive distribution, N(0, σ²I + σₚ²XXᵀ).
	times := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{0.3, -0.1, 0.4, 0.9, 0.7, 1.2}
	const sigma, sigp = 0.5, 2.0
	b := NewPolyBasis(Monomial, 2, times, 0, sigp)
	fit, err := b.Fit(ys, sigma)
	if err != nil {
		t.Fatal(err)
	}

	cov := mat.NewSymDense(len(times), nil)
	cov.SymOuterK(sigp*sigp, b.Basis())
	for i := range times {
		cov.SetSym(i, i, cov.At(i, i)+sigma*sigma)
	}
	pred, ok := distmv.NewNormal(make([]float64, len(times)), cov, nil)
	if !ok {
		t.Fatal("prior predictive covariance not positive definite")
	}
	if want := pred.LogProb(ys); !req(want, fit.LogEvidence, 1e-9) {
		t.Errorf("log evidence: want %v, got %v", want, fit.LogEvidence)
	}
}

func TestParseBasisKind(t *testing.T) {
	for _, k := range []BasisKind{Monomial, Chebyshev} {
		got, err := ParseBasisKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseBasisKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseBasisKind("legendre"); err == nil {
		t.Errorf("ParseBasisKind(legendre) succeeded")
	}
}
