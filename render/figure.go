// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws posterior distributions as image plots, as
// interactive HTML pages, and as console summary tables.
//
// A Figure describes what to draw independently of the output
// format, so the same Figure can be written as PNG, SVG, PDF, or
// HTML.
package render // import "github.com/bda-labs/gridbayes/render"

import (
	"github.com/bda-labs/gridbayes/stats"
	"gonum.org/v1/gonum/mat"
)

// Series is a sequence of (x, y) points.
type Series struct {
	Name   string
	Xs, Ys []float64

	// Dashed draws a line series dashed in image plots.
	Dashed bool
}

// Hist is a histogram of samples, normalized to unit area so it can
// be overlaid on a density.
type Hist struct {
	Name   string
	Values []float64
	Bins   int
}

// ErrorSeries is a series of points with symmetric vertical error
// bars.
type ErrorSeries struct {
	Name   string
	Xs, Ys []float64
	Errs   []float64
}

// Contours are contour lines of a function tabulated on a grid.
// Element (j, i) of Z is the value at (Xs[i], Ys[j]).
type Contours struct {
	Xs, Ys []float64
	Z      *mat.Dense
	Levels []float64
}

// A Figure is a single set of axes with any number of plotted
// elements.
type Figure struct {
	Title          string
	XLabel, YLabel string

	Lines     []Series
	Points    []Series
	Hists     []Hist
	ErrorBars []ErrorSeries
	Contours  []Contours
}

// PosteriorSeries returns the posterior density of p on its grid as
// a line series.
func PosteriorSeries(name string, p *stats.Posterior) Series {
	return Series{Name: name, Xs: p.Grid(), Ys: p.Density()}
}

// DensitySeries returns d evaluated at xs as a line series, for
// overlaying approximations such as a Laplace normal or a KDE of
// draws.
func DensitySeries(name string, d stats.Density, xs []float64) Series {
	return Series{Name: name, Xs: xs, Ys: d.PDFEach(xs), Dashed: true}
}

// AddPosterior adds the posterior density of p, and a histogram of
// draws with their kernel density estimate if there are any. The
// KDE is reflected at the grid ends.
func (f *Figure) AddPosterior(name string, p *stats.Posterior, draws stats.Sample) {
	f.Lines = append(f.Lines, PosteriorSeries(name, p))
	if len(draws.Xs) == 0 {
		return
	}
	f.Hists = append(f.Hists, Hist{Name: name + " draws", Values: draws.Xs, Bins: histBins(len(draws.Xs))})
	if len(draws.Xs) < 2 || !(stats.BandwidthScott(draws) > 0) {
		return
	}
	lo, hi := p.Bounds()
	kde := stats.KDE{BoundaryMin: lo, BoundaryMax: hi}.From(draws)
	f.Lines = append(f.Lines, DensitySeries(name+" KDE", kde, p.Grid()))
}

// histBins returns a bin count for n samples.
func histBins(n int) int {
	switch {
	case n < 100:
		return 10
	case n < 10000:
		return 30
	}
	return 60
}
