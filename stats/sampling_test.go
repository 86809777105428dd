// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDraw(t *testing.T) {
	const n = 20000
	p := mustPosterior(t, Model{Grid: Linspace(0, 1, 200), Like: binomialLike(8, 12)})
	for _, method := range []SampleMethod{InverseCDF, AcceptReject} {
		r := rand.New(rand.NewSource(1))
		s := p.Draw(r, n, method)
		if len(s.Xs) != n {
			t.Fatalf("%v: got %d samples, want %d", method, len(s.Xs), n)
		}
		lo, hi := s.Bounds()
		if lo < 0 || hi > 1 {
			t.Errorf("%v: samples span [%v, %v], outside grid", method, lo, hi)
		}
		if d := math.Abs(s.Mean() - p.Mean()); d > 0.005 {
			t.Errorf("%v: sample mean %v, posterior mean %v", method, s.Mean(), p.Mean())
		}
		if !req(p.StdDev(), s.StdDev(), 0.03) {
			t.Errorf("%v: sample std dev %v, posterior std dev %v", method, s.StdDev(), p.StdDev())
		}
		if q := s.Quantile(0.5); math.Abs(p.CDF(q)-0.5) > 0.02 {
			t.Errorf("%v: sample median %v has posterior CDF %v", method, q, p.CDF(q))
		}
	}

	// The expected number of accept-reject candidates is the
	// envelope area, about 3 for this posterior.
	if it := p.ARIterations(); it < n || it > 10*n {
		t.Errorf("accept-reject used %d iterations for %d samples", it, n)
	}
}

func TestDrawDeterministic(t *testing.T) {
	p := mustPosterior(t, Model{Grid: Linspace(0.001, 20, 200), LogLike: poissonLogLike(16, 2)})
	for _, method := range []SampleMethod{InverseCDF, AcceptReject} {
		a := p.Draw(rand.New(rand.NewSource(42)), 10, method)
		b := p.Draw(rand.New(rand.NewSource(42)), 10, method)
		for i := range a.Xs {
			if a.Xs[i] != b.Xs[i] {
				t.Errorf("%v: draw %d differs with the same seed: %v != %v", method, i, a.Xs[i], b.Xs[i])
			}
		}
	}
}

func TestSampleGlobalSource(t *testing.T) {
	p := mustPosterior(t, Model{Grid: Linspace(0, 1, 50), Like: binomialLike(3, 4)})
	for i := 0; i < 100; i++ {
		if x := p.SampleInvCDF(nil); x < 0 || x > 1 {
			t.Fatalf("SampleInvCDF: %v outside grid", x)
		}
		if x := p.SampleAR(nil); x < 0 || x > 1 {
			t.Fatalf("SampleAR: %v outside grid", x)
		}
	}
}

func TestSampleMethodString(t *testing.T) {
	for m, want := range map[SampleMethod]string{
		InverseCDF:      "inverse-cdf",
		AcceptReject:    "accept-reject",
		SampleMethod(7): "SampleMethod(7)",
	} {
		if got := m.String(); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}
}

func TestParseSampleMethod(t *testing.T) {
	for _, want := range []SampleMethod{InverseCDF, AcceptReject} {
		got, err := ParseSampleMethod(want.String())
		if err != nil || got != want {
			t.Errorf("ParseSampleMethod(%q): want %v, got %v, %v", want.String(), want, got, err)
		}
	}
	if _, err := ParseSampleMethod("gibbs"); err == nil {
		t.Error("ParseSampleMethod(gibbs): want error")
	}
}
