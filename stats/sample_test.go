// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{40, 15, 50, 20, 35}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 20,
		.50: 35,
		.70: 40,
		.95: 50,
		1:   50,
		2:   50,
	})
	if s.Sorted || s.Xs[0] != 40 {
		t.Errorf("Quantile modified the sample: %v", s)
	}
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if !aeq(5, s.Mean()) {
		t.Errorf("Mean: want 5, got %v", s.Mean())
	}
	if want := 32.0 / 7; !aeq(want, s.Variance()) {
		t.Errorf("Variance: want %v, got %v", want, s.Variance())
	}
	if !aeq(40, s.Sum()) || s.Weight() != 8 {
		t.Errorf("Sum, Weight: got %v, %v", s.Sum(), s.Weight())
	}

	w := Sample{Xs: []float64{1, 2, 3}, Weights: []float64{1, 0, 3}}
	if !aeq(2.5, w.Mean()) {
		t.Errorf("weighted Mean: want 2.5, got %v", w.Mean())
	}
	if !aeq(10, w.Sum()) || w.Weight() != 4 {
		t.Errorf("weighted Sum, Weight: got %v, %v", w.Sum(), w.Weight())
	}

	var empty Sample
	if !math.IsNaN(empty.Mean()) || !math.IsNaN(empty.Variance()) {
		t.Errorf("empty sample: got mean %v, variance %v", empty.Mean(), empty.Variance())
	}
	if one := (Sample{Xs: []float64{3}}); one.Variance() != 0 {
		t.Errorf("single sample: want variance 0, got %v", one.Variance())
	}
}

func TestSampleBounds(t *testing.T) {
	check := func(s Sample, wlo, whi float64) {
		t.Helper()
		lo, hi := s.Bounds()
		if lo != wlo || hi != whi {
			t.Errorf("%v: want [%v, %v], got [%v, %v]", s, wlo, whi, lo, hi)
		}
	}
	check(Sample{Xs: []float64{3, 1, 2}}, 1, 3)
	check(Sample{Xs: []float64{1, 2, 3}, Sorted: true}, 1, 3)
	check(Sample{Xs: []float64{3, 1, 2}, Weights: []float64{0, 1, 1}}, 1, 2)
	check(Sample{Xs: []float64{1, 2, 3}, Weights: []float64{0, 1, 1}, Sorted: true}, 2, 3)

	lo, hi := Sample{Xs: []float64{1}, Weights: []float64{0}}.Bounds()
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("zero weights: want NaN bounds, got [%v, %v]", lo, hi)
	}
}

func TestSampleSort(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{30, 10, 20}}
	c := s.Copy().Sort()
	for i, want := range []float64{1, 2, 3} {
		if c.Xs[i] != want || c.Weights[i] != 10*want {
			t.Errorf("sorted[%d]: want %v@%v, got %v@%v", i, want, 10*want, c.Xs[i], c.Weights[i])
		}
	}
	if !c.Sorted {
		t.Errorf("Sort did not set Sorted")
	}
	if s.Xs[0] != 3 || s.Weights[0] != 30 {
		t.Errorf("sorting a copy modified the original: %v", s)
	}
}
