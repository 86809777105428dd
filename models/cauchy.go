// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"

	"github.com/bda-labs/gridbayes/stats"
	"gonum.org/v1/gonum/floats"
)

// CauchyLocation is inference for the location x0 of a Cauchy
// distribution with known scale from a sample drawn from it.
type CauchyLocation struct {
	Scale float64
	Data  []float64

	// Prior is the prior for x0. If nil, the prior is flat.
	Prior stats.Func

	// [Lo, Hi] is the range of the x0 grid, which defaults to the
	// range of the data if both are zero. N defaults to 250.
	Lo, Hi float64
	N      int
}

// Like returns the Cauchy likelihood for x0, the product over the
// data of 1/(1+((x0-d)/scale)^2).
func (c CauchyLocation) Like() stats.Func {
	s2 := c.Scale * c.Scale
	return func(x0 float64) float64 {
		l := 1.0
		for _, d := range c.Data {
			l *= 1 / (1 + (x0-d)*(x0-d)/s2)
		}
		return l
	}
}

// Model returns the grid model for c.
func (c CauchyLocation) Model() (stats.Model, error) {
	if len(c.Data) == 0 {
		return stats.Model{}, ErrNoData
	}
	if !(c.Scale > 0) {
		return stats.Model{}, fmt.Errorf("%w: scale %g", ErrRange, c.Scale)
	}
	lo, hi := c.Lo, c.Hi
	if lo == 0 && hi == 0 {
		lo, hi = floats.Min(c.Data), floats.Max(c.Data)
	}
	xs, err := grid(lo, hi, c.N, 250)
	if err != nil {
		return stats.Model{}, err
	}
	return stats.Model{Grid: xs, Prior: c.Prior, Like: c.Like()}, nil
}

// Posterior computes the posterior for the location.
func (c CauchyLocation) Posterior() (*stats.Posterior, error) {
	m, err := c.Model()
	if err != nil {
		return nil, err
	}
	return m.Posterior()
}
