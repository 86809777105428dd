// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package models provides the concrete inference problems built on
// the grid posterior in package stats: binomial success
// probabilities, Poisson rates, Cauchy locations, and a few models
// with closed-form answers (machine failure, two-state Markov chains,
// bivariate normals, and polynomial regression bases).
package models // import "github.com/bda-labs/gridbayes/models"

import (
	"errors"
	"fmt"
	"math"

	"github.com/bda-labs/gridbayes/stats"
)

var (
	ErrCounts    = errors.New("invalid counts")
	ErrRange     = errors.New("invalid parameter range")
	ErrNoData    = errors.New("no data")
	ErrNotPosDef = errors.New("matrix is not positive definite")
)

// grid returns the n-point grid over [lo, hi], using def for n if n
// is zero.
func grid(lo, hi float64, n, def int) ([]float64, error) {
	if n == 0 {
		n = def
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrRange, lo, hi)
	}
	return stats.Linspace(lo, hi, n), nil
}

// xlogy returns x*log(y), treating 0*log(0) as 0.
func xlogy(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}
