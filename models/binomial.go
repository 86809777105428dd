// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"math"

	"github.com/bda-labs/gridbayes/stats"
	"gonum.org/v1/gonum/mathext"
)

// Binomial is inference for the success probability α of a Bernoulli
// process from the number of successes in a fixed number of trials.
//
// The likelihood omits the combinatorial factor, which doesn't
// depend on α, so the marginal likelihood is that of a particular
// sequence of outcomes.
type Binomial struct {
	Successes, Trials int

	// Prior is the prior density for α. If nil, the prior is flat.
	Prior stats.Func

	// [Lo, Hi] is the range of the α grid, which defaults to
	// [0, 1] if both are zero. N is the number of grid points,
	// which defaults to 200.
	Lo, Hi float64
	N      int

	// Log computes the posterior from the log likelihood. This is
	// required for large counts.
	Log bool
}

func (b Binomial) check() error {
	if b.Trials < 0 || b.Successes < 0 || b.Successes > b.Trials {
		return fmt.Errorf("%w: %d successes in %d trials", ErrCounts, b.Successes, b.Trials)
	}
	return nil
}

// Like returns the likelihood α^n (1-α)^(N-n).
func (b Binomial) Like() stats.Func {
	n, m := float64(b.Successes), float64(b.Trials-b.Successes)
	return func(a float64) float64 {
		return math.Pow(a, n) * math.Pow(1-a, m)
	}
}

// LogLike returns the log of Like.
func (b Binomial) LogLike() stats.Func {
	n, m := float64(b.Successes), float64(b.Trials-b.Successes)
	return func(a float64) float64 {
		return xlogy(n, a) + xlogy(m, 1-a)
	}
}

// Model returns the grid model for b.
func (b Binomial) Model() (stats.Model, error) {
	if err := b.check(); err != nil {
		return stats.Model{}, err
	}
	lo, hi := b.Lo, b.Hi
	if lo == 0 && hi == 0 {
		hi = 1
	}
	if lo < 0 || hi > 1 {
		return stats.Model{}, fmt.Errorf("%w: α range [%g, %g] outside [0, 1]", ErrRange, lo, hi)
	}
	xs, err := grid(lo, hi, b.N, 200)
	if err != nil {
		return stats.Model{}, err
	}
	m := stats.Model{Grid: xs}
	if b.Log {
		m.LogLike = b.LogLike()
		if b.Prior != nil {
			m.LogPrior = b.Prior.Log()
		}
	} else {
		m.Like, m.Prior = b.Like(), b.Prior
	}
	return m, nil
}

// Posterior computes the posterior for α.
func (b Binomial) Posterior() (*stats.Posterior, error) {
	m, err := b.Model()
	if err != nil {
		return nil, err
	}
	return m.Posterior()
}

// FlatMarginal returns the exact marginal likelihood of the data
// under a flat prior on [0, 1], B(n+1, N-n+1).
func (b Binomial) FlatMarginal() float64 {
	return mathext.Beta(float64(b.Successes+1), float64(b.Trials-b.Successes+1))
}
