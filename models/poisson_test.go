// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"errors"
	"math"
	"testing"
)

func TestPoissonRate(t *testing.T) {
	flat := FlatPrior(0.001, 1e5)
	lin, err := PoissonRate{Interval: 2, Counts: 16, Prior: flat, Lo: 0.001, Hi: 20}.Posterior()
	if err != nil {
		t.Fatal(err)
	}
	logp, err := PoissonRate{Interval: 2, Counts: 16, LogPrior: flat.Log(), Lo: 0.001, Hi: 20}.Posterior()
	if err != nil {
		t.Fatal(err)
	}
	// Gamma(17, 2).
	for name, p := range map[string]interface{ Mean() float64 }{"linear": lin, "log": logp} {
		if !req(8.5, p.Mean(), 1e-4) {
			t.Errorf("%s: mean: want 8.5, got %v", name, p.Mean())
		}
	}
	if !req(math.Log(lin.MarginalLikelihood()), logp.LogMarginalLikelihood(), 1e-9) {
		t.Errorf("log marginal likelihood: linear %v, log %v", math.Log(lin.MarginalLikelihood()), logp.LogMarginalLikelihood())
	}
}

func TestPoissonRateLargeCounts(t *testing.T) {
	// The linear likelihood overflows here.
	p, err := PoissonRate{Interval: 200, Counts: 1600, LogPrior: LogGammaPrior(1, 10), Lo: 0.001, Hi: 20, N: 500}.Posterior()
	if err != nil {
		t.Fatal(err)
	}
	// Gamma(1601, 200.1).
	if want := 1601 / 200.1; !req(want, p.Mean(), 1e-4) {
		t.Errorf("mean: want %v, got %v", want, p.Mean())
	}
}

func TestIncidenceRate(t *testing.T) {
	p, err := IncidenceRate(181, 175.1).Posterior()
	if err != nil {
		t.Fatal(err)
	}
	if want := 182 / 175.1; math.Abs(want-p.Mean()) > 1e-3 {
		t.Errorf("mean: want %v, got %v", want, p.Mean())
	}
	if want := 181 / 175.1; math.Abs(want-p.Mode()) > 1e-5 {
		t.Errorf("mode: want %v, got %v", want, p.Mode())
	}
}

func TestPoissonRateErrors(t *testing.T) {
	for _, pr := range []PoissonRate{
		{Interval: 1, Counts: -1, Hi: 10},
		{Interval: 0, Counts: 1, Hi: 10},
		{Interval: 1, Counts: 1},
		{Interval: 1, Counts: 1, Lo: -1, Hi: 10},
	} {
		_, err := pr.Posterior()
		if !errors.Is(err, ErrCounts) && !errors.Is(err, ErrRange) {
			t.Errorf("%+v: want error, got %v", pr, err)
		}
	}
}
