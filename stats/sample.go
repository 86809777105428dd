// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points, such as
// draws from a posterior.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of xs.
func Bounds(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	return floats.Min(xs), floats.Max(xs)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is weighted, this ignores samples with zero weight.
//
// This is constant time if s.Sorted and there are no zero-weighted
// values.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 || (!s.Sorted && s.Weights == nil) {
		return Bounds(s.Xs)
	}

	if s.Sorted {
		if s.Weights == nil {
			return s.Xs[0], s.Xs[len(s.Xs)-1]
		}
		min, max = nan, nan
		for i, w := range s.Weights {
			if w != 0 {
				min = s.Xs[i]
				break
			}
		}
		for i := len(s.Weights) - 1; i >= 0; i-- {
			if s.Weights[i] != 0 {
				max = s.Xs[i]
				break
			}
		}
		return
	}

	min, max = inf, -inf
	for i, x := range s.Xs {
		w := s.Weights[i]
		if x < min && w != 0 {
			min = x
		}
		if x > max && w != 0 {
			max = x
		}
	}
	if math.IsInf(min, 0) {
		min, max = nan, nan
	}
	return
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// Variance returns the sample variance of the Sample.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	} else if len(s.Xs) <= 1 {
		return 0
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Quantile returns the empirical q'th quantile of the Sample, for
// 0 <= q <= 1.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if q <= 0 {
		min, _ := s.Bounds()
		return min
	} else if q >= 1 {
		_, max := s.Bounds()
		return max
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return stat.Quantile(q, stat.Empirical, s.Xs, s.Weights)
}

// Percentile is an alias for Quantile, for use by the bandwidth
// estimators.
func (s Sample) Percentile(q float64) float64 {
	return s.Quantile(q)
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := append([]float64(nil), s.Xs...)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = append([]float64(nil), s.Weights...)
	}

	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		stat.SortWeighted(s.Xs, s.Weights)
	}
	s.Sorted = true
	return s
}
