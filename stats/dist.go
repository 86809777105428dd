// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Density is a continuous density that can be evaluated pointwise
// and integrated.
type Density interface {
	// PDF returns the value of the probability density function
	// at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the integral of the PDF from the lower bound
	// of the support to x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// Bounds returns reasonable bounds for the PDF and CDF. The
	// total weight outside of these bounds should be
	// approximately 0.
	Bounds() (float64, float64)
}

// A Dist is a continuous statistical distribution with an invertible
// CDF.
type Dist interface {
	Density

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64
}

// atEach returns f(x) for each x in xs.
func atEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
