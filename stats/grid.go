// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// gridTolerance is the relative deviation from the first grid step
// that any other step may have before a grid is considered
// non-uniform. It only has to absorb the round-off of Linspace.
const gridTolerance = 1e-6

// Func is a function of a single parameter value, such as a prior
// density, a likelihood, or the logarithm of either.
type Func func(x float64) float64

// Constant returns a Func that is c everywhere. A constant prior is a
// flat prior.
func Constant(c float64) Func {
	return func(float64) float64 { return c }
}

// Log returns a Func that computes math.Log(f(x)).
func (f Func) Log() Func {
	return func(x float64) float64 { return math.Log(f(x)) }
}

// Linspace returns num values spaced evenly between lo and hi,
// inclusive. num must be at least 2.
func Linspace(lo, hi float64, num int) []float64 {
	xs := floats.Span(make([]float64, num), lo, hi)
	// Span accumulates round-off at the top end.
	xs[num-1] = hi
	return xs
}

// checkGrid returns an error if xs is not an increasing, uniformly
// spaced grid of at least two points.
func checkGrid(xs []float64) error {
	if len(xs) < 2 {
		return ErrShortGrid
	}
	delta := xs[1] - xs[0]
	if !(delta > 0) || math.IsInf(delta, 0) {
		return fmt.Errorf("%w: first step is %g", ErrNonUniformGrid, delta)
	}
	for i := 2; i < len(xs); i++ {
		step := xs[i] - xs[i-1]
		if !(math.Abs(step-delta) <= gridTolerance*delta) {
			return fmt.Errorf("%w: step %d is %g, want %g", ErrNonUniformGrid, i, step, delta)
		}
	}
	return nil
}

// Trapezoid returns the trapezoidal-rule integral of the function
// sampled as ys at the points xs.
func Trapezoid(xs, ys []float64) float64 {
	return integrate.Trapezoidal(xs, ys)
}

// CumTrapezoid returns the running trapezoidal-rule integral of ys
// sampled at xs. The first element is always 0 and the last element
// equals Trapezoid(xs, ys) up to round-off.
func CumTrapezoid(xs, ys []float64) []float64 {
	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}
	res := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		res[i] = res[i-1] + 0.5*(xs[i]-xs[i-1])*(ys[i-1]+ys[i])
	}
	return res
}
