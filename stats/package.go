// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes posterior distributions of univariate models
// on a fixed parameter grid using trapezoidal quadrature.
//
// A Model pairs a grid with a prior and a likelihood (or their
// logarithms). Its Posterior method evaluates them once, normalizes
// the product, and returns a Posterior that reports moments, the CDF,
// the mode, Laplace approximations, and draws random samples.
package stats // import "github.com/bda-labs/gridbayes/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	ErrShortGrid       = errors.New("grid must have at least two points")
	ErrNonUniformGrid  = errors.New("grid is not uniformly spaced")
	ErrNoLikelihood    = errors.New("must specify either a likelihood or a log-likelihood")
	ErrBothLikelihoods = errors.New("cannot specify both a likelihood and a log-likelihood")
	ErrBothPriors      = errors.New("cannot specify both a prior and a log prior")
	ErrBoundaryPeak    = errors.New("Laplace approximation not possible; peak is on a grid boundary")
)
