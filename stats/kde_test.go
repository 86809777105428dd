// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestKDEBandwidth(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3, 4, 5}}
	want := 1.06 * s.StdDev() * math.Pow(5, -0.2)
	if got := BandwidthSilverman(s); !aeq(want, got) {
		t.Errorf("Silverman: want %v, got %v", want, got)
	}
	if got := BandwidthScott(s); got > want || got <= 0 {
		t.Errorf("Scott: want (0, %v], got %v", want, got)
	}
}

func TestKDESingle(t *testing.T) {
	kde := KDE{Bandwidth: 1}.From(Sample{Xs: []float64{0}})
	testFunc(t, "PDF", kde.PDF, map[float64]float64{
		-1: StdNormal.PDF(-1),
		0:  StdNormal.PDF(0),
		2:  StdNormal.PDF(2),
	})
	testFunc(t, "CDF", kde.CDF, map[float64]float64{
		0: 0.5,
		1: StdNormal.CDF(1),
	})
}

func TestKDEReflect(t *testing.T) {
	// A sample on [0, 1] reflected at both bounds keeps all its
	// mass on [0, 1].
	kde := KDE{Bandwidth: 0.1, BoundaryMin: 0, BoundaryMax: 1}.From(Sample{Xs: []float64{0.05, 0.5, 0.95}})
	if kde.PDF(-0.01) != 0 || kde.PDF(1.01) != 0 {
		t.Errorf("PDF outside bounds is nonzero")
	}
	if got := kde.CDF(1) - kde.CDF(0); !aeq(1, got) {
		t.Errorf("mass on [0, 1]: want 1, got %v", got)
	}
	xs := Linspace(0, 1, 1001)
	if got := Trapezoid(xs, kde.PDFEach(xs)); math.Abs(got-1) > 5e-3 {
		t.Errorf("integral of PDF: want 1, got %v", got)
	}
}

func TestKDEReflectImages(t *testing.T) {
	// With both bounds set, a point near the lower bound has only
	// mirror images far from the middle of the interval.
	kde := KDE{Bandwidth: 0.05, BoundaryMin: 0, BoundaryMax: 1}.From(Sample{Xs: []float64{0.1}})
	if got := kde.PDF(0.7); got > 1e-20 {
		t.Errorf("PDF(0.7): want ≈0, got %v", got)
	}
	k := NormalDist{0, 0.05}
	testFunc(t, "PDF", kde.PDF, map[float64]float64{
		0.1: k.PDF(0) + k.PDF(0.2),
		0:   2 * k.PDF(0.1),
	})
}

func TestKDEPosteriorDraws(t *testing.T) {
	// A KDE of posterior draws tracks the grid posterior.
	p := mustPosterior(t, Model{Grid: Linspace(0, 1, 200), Like: binomialLike(30, 100)})
	s := p.Draw(rand.New(rand.NewSource(7)), 5000, InverseCDF)
	lo, hi := p.Bounds()
	kde := KDE{BoundaryMin: lo, BoundaryMax: hi}.From(s)
	for _, x := range []float64{0.25, 0.3, 0.35} {
		if want, got := p.PDF(x), kde.PDF(x); !req(want, got, 0.15) {
			t.Errorf("PDF(%v): posterior %v, KDE %v", x, want, got)
		}
	}
}
