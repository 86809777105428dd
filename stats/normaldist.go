// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

func (n NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.dist().Prob(x)
}

func (n NormalDist) PDFEach(xs []float64) []float64 {
	return atEach(n.dist().Prob, xs)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.dist().CDF(x)
}

func (n NormalDist) CDFEach(xs []float64) []float64 {
	return atEach(n.dist().CDF, xs)
}

func (n NormalDist) InvCDF(y float64) float64 {
	return n.dist().Quantile(y)
}

func (n NormalDist) InvCDFEach(ys []float64) []float64 {
	return atEach(n.dist().Quantile, ys)
}

// Rand returns a random sample drawn from the distribution, using r
// or the default global source if r is nil.
func (n NormalDist) Rand(r *rand.Rand) float64 {
	var z float64
	if r == nil {
		z = rand.NormFloat64()
	} else {
		z = r.NormFloat64()
	}
	return n.Mu + n.Sigma*z
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
