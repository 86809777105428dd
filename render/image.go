// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ImageFormats are the file formats WriteImage supports.
var ImageFormats = []string{"png", "svg", "pdf", "jpg"}

// Plot builds a gonum plot of f.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Legend.Top = true

	// Colors are assigned in order across all elements so
	// overlaid series are distinguishable.
	color := 0
	for _, h := range f.Hists {
		hist, err := plotter.NewHist(plotter.Values(h.Values), h.Bins)
		if err != nil {
			return nil, fmt.Errorf("histogram %q: %w", h.Name, err)
		}
		hist.Normalize(1)
		hist.FillColor = plotutil.SoftColors[color%len(plotutil.SoftColors)]
		hist.LineStyle.Width = 0
		color++
		p.Add(hist)
		p.Legend.Add(h.Name, hist)
	}
	for _, c := range f.Contours {
		p.Add(plotter.NewContour(gridXYZ{c}, c.Levels, palette.Heat(len(c.Levels), 1)))
	}
	for i, s := range f.Lines {
		l, err := plotter.NewLine(xys(s.Xs, s.Ys))
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", s.Name, err)
		}
		l.Color = plotutil.Color(i)
		if s.Dashed {
			l.Dashes = plotutil.Dashes(1)
		}
		p.Add(l)
		if s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
	}
	for i, s := range f.Points {
		sc, err := plotter.NewScatter(xys(s.Xs, s.Ys))
		if err != nil {
			return nil, fmt.Errorf("points %q: %w", s.Name, err)
		}
		sc.Color = plotutil.Color(len(f.Lines) + i)
		sc.Radius = vg.Points(1)
		p.Add(sc)
		if s.Name != "" {
			p.Legend.Add(s.Name, sc)
		}
	}
	for i, e := range f.ErrorBars {
		pts := errPoints{XYs: xys(e.Xs, e.Ys), YErrors: make(plotter.YErrors, len(e.Errs))}
		for j, v := range e.Errs {
			pts.YErrors[j].Low, pts.YErrors[j].High = v, v
		}
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, fmt.Errorf("error bars %q: %w", e.Name, err)
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("error bars %q: %w", e.Name, err)
		}
		c := plotutil.Color(len(f.Lines) + len(f.Points) + i)
		bars.Color, sc.Color = c, c
		p.Add(bars, sc)
		if e.Name != "" {
			p.Legend.Add(e.Name, sc)
		}
	}
	return p, nil
}

// WriteImage writes f to w as an image in format, one of
// ImageFormats, with the given size.
func WriteImage(w io.Writer, f *Figure, format string, width, height vg.Length) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveImage writes f to the file path, choosing the format from its
// extension.
func SaveImage(path string, f *Figure, width, height vg.Length) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !isImageFormat(format) {
		return fmt.Errorf("unsupported image format %q", format)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteImage(out, f, format, width, height)
}

func isImageFormat(format string) bool {
	for _, f := range ImageFormats {
		if format == f {
			return true
		}
	}
	return false
}

func xys(xs, ys []float64) plotter.XYs {
	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts
}

type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// gridXYZ adapts Contours to plotter.GridXYZ.
type gridXYZ struct{ c Contours }

func (g gridXYZ) Dims() (c, r int)   { return len(g.c.Xs), len(g.c.Ys) }
func (g gridXYZ) Z(c, r int) float64 { return g.c.Z.At(r, c) }
func (g gridXYZ) X(c int) float64    { return g.c.Xs[c] }
func (g gridXYZ) Y(r int) float64    { return g.c.Ys[r] }
