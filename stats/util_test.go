// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// req reports whether got is within relative tolerance tol of expect.
func req(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol*math.Abs(expect)
}

// testFunc checks that f(x) is approximately want for each x -> want
// in tests.
func testFunc(t *testing.T, name string, f func(float64) float64, tests map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(tests))
	for x := range tests {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := tests[x], f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}

// testDiscreteCDF checks that dist's CDF is the running sum of its PMF
// and is constant between steps.
func testDiscreteCDF(t *testing.T, name string, dist interface {
	PMF(float64) float64
	CDF(float64) float64
	Step() float64
	Bounds() (float64, float64)
}) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()
	if dist.CDF(lo-step) != 0 {
		t.Errorf("%s(%v): want 0, got %v", name, lo-step, dist.CDF(lo-step))
	}
	sum := 0.0
	for x := lo; x <= hi; x += step {
		sum += dist.PMF(x)
		for _, dx := range []float64{0, step / 2} {
			if got := dist.CDF(x + dx); !aeq(sum, got) {
				t.Errorf("%s(%v): want %v, got %v", name, x+dx, sum, got)
			}
		}
	}
	if got := dist.CDF(hi + step); got != 1 {
		t.Errorf("%s(%v): want 1, got %v", name, hi+step, got)
	}
}
