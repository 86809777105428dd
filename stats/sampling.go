// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// uniform returns a uniform random number in [0, 1) from r, or from
// the global source if r is nil.
func uniform(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}

// SampleInvCDF returns a single sample from the posterior using the
// inverse CDF method: a uniform variate is located in the tabulated
// CDF and linearly interpolated between the bracketing grid points.
//
// If r is nil, SampleInvCDF uses the default global source.
func (p *Posterior) SampleInvCDF(r *rand.Rand) float64 {
	return p.InvCDF(uniform(r))
}

// SampleAR returns a single sample from the posterior using the
// accept-reject method with a uniform envelope spanning the grid and
// reaching the posterior's maximum density.
//
// There is no bound on the number of candidates drawn; the expected
// number is the envelope area over the posterior's, which is large
// for sharply peaked posteriors on wide grids. ARIterations reports
// the cumulative count.
//
// If r is nil, SampleAR uses the default global source.
func (p *Posterior) SampleAR(r *rand.Rand) float64 {
	for {
		p.nAR++
		x := p.xs[0] + uniform(r)*p.span
		y := uniform(r) * p.envelope
		if y < p.PDF(x) {
			return x
		}
	}
}

// ARIterations returns the total number of accept-reject candidates
// drawn by SampleAR on p so far.
func (p *Posterior) ARIterations() int {
	return p.nAR
}

// SampleMethod selects a posterior sampling algorithm.
type SampleMethod int

const (
	// InverseCDF samples by inverting the tabulated CDF.
	InverseCDF SampleMethod = iota

	// AcceptReject samples by rejection from a uniform envelope.
	AcceptReject
)

func (m SampleMethod) String() string {
	switch m {
	case InverseCDF:
		return "inverse-cdf"
	case AcceptReject:
		return "accept-reject"
	}
	return fmt.Sprintf("SampleMethod(%d)", int(m))
}

// ParseSampleMethod returns the SampleMethod named by s, as returned
// by String.
func ParseSampleMethod(s string) (SampleMethod, error) {
	for _, m := range []SampleMethod{InverseCDF, AcceptReject} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown sample method %q", s)
}

// Draw returns n samples from the posterior using method.
func (p *Posterior) Draw(r *rand.Rand, n int, method SampleMethod) Sample {
	var next func(*rand.Rand) float64
	switch method {
	default:
		panic(fmt.Sprint("unknown sample method ", method))
	case InverseCDF:
		next = p.SampleInvCDF
	case AcceptReject:
		next = p.SampleAR
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = next(r)
	}
	return Sample{Xs: xs}
}
