// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"math"

	"github.com/bda-labs/gridbayes/stats"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// FlatPrior returns the normalized uniform density on [lo, hi].
// It is constant everywhere so it can be evaluated on grids that
// extend beyond its support.
func FlatPrior(lo, hi float64) stats.Func {
	return stats.Constant(1 / (hi - lo))
}

// BetaPrior returns the Beta(a, b) density on [0, 1].
func BetaPrior(a, b float64) stats.Func {
	return func(x float64) float64 {
		return math.Exp(logBeta(a, b, x))
	}
}

// LogBetaPrior returns the log of the Beta(a, b) density.
func LogBetaPrior(a, b float64) stats.Func {
	return func(x float64) float64 {
		return logBeta(a, b, x)
	}
}

func logBeta(a, b, x float64) float64 {
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}
	return xlogy(a-1, x) + xlogy(b-1, 1-x) - mathext.Lbeta(a, b)
}

// JeffreysPrior returns the Jeffreys prior for a binomial success
// probability, Beta(1/2, 1/2). It is infinite at 0 and 1, so grids
// using it must exclude the end points.
func JeffreysPrior() stats.Func {
	return BetaPrior(0.5, 0.5)
}

// GammaPrior returns the gamma density with the given shape and
// scale.
func GammaPrior(shape, scale float64) stats.Func {
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale}.Prob
}

// LogGammaPrior returns the log of the gamma density with the given
// shape and scale.
func LogGammaPrior(shape, scale float64) stats.Func {
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale}.LogProb
}

// ExpPrior returns the exponential density with the given scale,
// which is the gamma density with shape 1.
func ExpPrior(scale float64) stats.Func {
	return GammaPrior(1, scale)
}

// NormalPrior returns the normal density with mean mu and standard
// deviation sigma.
func NormalPrior(mu, sigma float64) stats.Func {
	return distuv.Normal{Mu: mu, Sigma: sigma}.Prob
}
