// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialLogPMF(t *testing.T) {
	for _, dist := range []BinomialDist{{N: 5, P: 0.2}, {N: 12, P: 0.5}, {N: 10, P: 0}, {N: 10, P: 1}} {
		for k := -1; k <= dist.N+1; k++ {
			want := math.Log(dist.PMF(float64(k)))
			got := dist.LogPMF(float64(k))
			if !(want == got || aeq(want, got)) {
				t.Errorf("%+v.LogPMF(%d): want %v, got %v", dist, k, want, got)
			}
		}
	}

	// Large N underflows the PMF but not the log PMF.
	dist := BinomialDist{N: 5000, P: 0.5}
	if got := dist.LogPMF(2500); math.IsInf(got, 0) || got > 0 {
		t.Errorf("%+v.LogPMF(2500): got %v", dist, got)
	}
}
