// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// eigenEps is the tolerance for recognizing an eigenvalue of one.
const eigenEps = 1e-9

// TwoStateMarkov is a Markov chain on the states 0 and 1. Alpha is
// the probability of moving from state 0 to state 1 in a step, and
// Beta the probability of moving from state 1 to state 0.
type TwoStateMarkov struct {
	Alpha, Beta float64
}

// Transition returns the transition matrix in right-multiplying
// form: element (j, i) is the probability of a move from i to j, so
// the columns sum to one.
func (c TwoStateMarkov) Transition() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1 - c.Alpha, c.Beta,
		c.Alpha, 1 - c.Beta,
	})
}

// Equilibrium returns the equilibrium probabilities of states 0 and
// 1, β/(α+β) and α/(α+β).
func (c TwoStateMarkov) Equilibrium() (p0, p1 float64) {
	return c.Beta / (c.Alpha + c.Beta), c.Alpha / (c.Alpha + c.Beta)
}

// Stationary computes the stationary distribution of the chain from
// the left eigenvector of the row-stochastic transition matrix with
// eigenvalue one.
func (c TwoStateMarkov) Stationary() ([]float64, error) {
	var p mat.Dense
	p.CloneFrom(c.Transition().T())

	var eig mat.Eigen
	if ok := eig.Factorize(&p, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("eigen-decomposition failed")
	}

	// The unit eigenvalue isn't necessarily first.
	k := -1
	for i, v := range eig.Values(nil) {
		if math.Abs(real(v)-1) < eigenEps && math.Abs(imag(v)) < eigenEps {
			k = i
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("eigen-decomposition failed; no eigenvalue of one found")
	}

	var ev mat.CDense
	eig.LeftVectorsTo(&ev)
	total := ev.At(0, k) + ev.At(1, k)
	if math.Abs(imag(total)) > eigenEps {
		return nil, fmt.Errorf("eigen-decomposition failed; eigenvector is complex")
	}
	dist := make([]float64, 2)
	for i := range dist {
		dist[i] = math.Abs(real(ev.At(i, k)) / real(total))
	}
	return dist, nil
}

// Step returns the state following state.
func (c TwoStateMarkov) Step(r *rand.Rand, state int) int {
	// The probability of landing in state 1.
	p1 := c.Alpha
	if state == 1 {
		p1 = 1 - c.Beta
	}
	return int(distuv.Bernoulli{P: p1, Src: source(r)}.Rand())
}

// SimulatePath returns a sample path of length steps starting from
// init. The path has length+1 states including init.
func (c TwoStateMarkov) SimulatePath(r *rand.Rand, init, length int) []int {
	path := make([]int, length+1)
	path[0] = init
	for i := 1; i <= length; i++ {
		path[i] = c.Step(r, path[i-1])
	}
	return path
}

// SimulatePaths returns n sample paths of the given length, each
// starting from a state drawn by init.
func (c TwoStateMarkov) SimulatePaths(r *rand.Rand, n, length int, init func(*rand.Rand) int) [][]int {
	paths := make([][]int, n)
	for i := range paths {
		paths[i] = c.SimulatePath(r, init(r), length)
	}
	return paths
}

// StateSampler returns a function that draws state 1 with
// probability p1 and state 0 otherwise, for use as the initial state
// distribution of SimulatePaths.
func StateSampler(p1 float64) func(*rand.Rand) int {
	return func(r *rand.Rand) int {
		return int(distuv.Bernoulli{P: p1, Src: source(r)}.Rand())
	}
}

// StatePMF is the distribution over states at a time step, estimated
// from sample paths, with posterior standard deviations.
type StatePMF struct {
	P0, P1     float64
	Sig0, Sig1 float64
}

// MarginalPMF estimates the marginal distribution of the state at
// step t from paths. A negative t counts back from the end of the
// paths.
func MarginalPMF(paths [][]int, t int) StatePMF {
	ntot := len(paths)
	n1 := 0
	for _, path := range paths {
		i := t
		if i < 0 {
			i += len(path)
		}
		n1 += path[i]
	}
	n0 := ntot - n1
	return StatePMF{
		P0:   float64(n0) / float64(ntot),
		P1:   float64(n1) / float64(ntot),
		Sig0: SigAlpha(n0, ntot),
		Sig1: SigAlpha(n1, ntot),
	}
}

// SigAlpha returns the standard deviation of the beta posterior for a
// binomial success probability given n successes in ntot trials and a
// flat prior.
func SigAlpha(n, ntot int) float64 {
	a, b := float64(n+1), float64(ntot-n+1)
	return math.Sqrt(a * b / ((a + b) * (a + b) * (a + b + 1)))
}

// source returns r as a gonum random source, or nil for the global
// source.
func source(r *rand.Rand) rand.Source {
	if r == nil {
		return nil
	}
	return r
}
