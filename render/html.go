// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// globalOpts returns the chart options shared by all charts of f.
func (f *Figure) globalOpts(subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: f.Title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: f.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.YLabel, Type: "value"}),
	}
}

// convertLineData converts a series to chart points.
func convertLineData(xs, ys []float64) []opts.LineData {
	items := make([]opts.LineData, len(xs))
	for i := range xs {
		items[i] = opts.LineData{Value: [2]float64{xs[i], ys[i]}}
	}
	return items
}

// convertScatterData converts a series to scatter chart points.
func convertScatterData(xs, ys []float64) []opts.ScatterData {
	items := make([]opts.ScatterData, len(xs))
	for i := range xs {
		items[i] = opts.ScatterData{Value: [2]float64{xs[i], ys[i]}, SymbolSize: 4}
	}
	return items
}

// Charts returns the interactive charts for f: one line chart for
// its lines, error bars (as points with their upper and lower
// limits), and histograms, and one scatter chart for its points.
// Contours are not rendered.
func (f *Figure) Charts() []components.Charter {
	var out []components.Charter

	if len(f.Lines) > 0 || len(f.Hists) > 0 || len(f.ErrorBars) > 0 {
		line := charts.NewLine()
		line.SetGlobalOptions(f.globalOpts("")...)
		for _, h := range f.Hists {
			xs, ys := histSteps(h)
			line.AddSeries(h.Name, convertLineData(xs, ys),
				charts.WithLineChartOpts(opts.LineChart{Step: "end"}),
				charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.3}))
		}
		for _, s := range f.Lines {
			line.AddSeries(s.Name, convertLineData(s.Xs, s.Ys))
		}
		for _, e := range f.ErrorBars {
			lo, hi := make([]float64, len(e.Ys)), make([]float64, len(e.Ys))
			for i := range e.Ys {
				lo[i], hi[i] = e.Ys[i]-e.Errs[i], e.Ys[i]+e.Errs[i]
			}
			line.AddSeries(e.Name, convertLineData(e.Xs, e.Ys))
			line.AddSeries(e.Name+" -1σ", convertLineData(e.Xs, lo))
			line.AddSeries(e.Name+" +1σ", convertLineData(e.Xs, hi))
		}
		out = append(out, line)
	}

	if len(f.Points) > 0 {
		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(f.globalOpts("samples")...)
		for _, s := range f.Points {
			scatter.AddSeries(s.Name, convertScatterData(s.Xs, s.Ys))
		}
		out = append(out, scatter)
	}
	return out
}

// histSteps returns the left bin edges of h and the normalized bin
// heights, with a final point closing the last bin.
func histSteps(h Hist) (xs, ys []float64) {
	if len(h.Values) == 0 {
		return nil, nil
	}
	lo, hi := floats.Min(h.Values), floats.Max(h.Values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	bins := h.Bins
	if bins < 1 {
		bins = histBins(len(h.Values))
	}
	width := (hi - lo) / float64(bins)
	counts := make([]float64, bins)
	for _, v := range h.Values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	xs, ys = make([]float64, bins+1), make([]float64, bins+1)
	norm := 1 / (float64(len(h.Values)) * width)
	for i, c := range counts {
		xs[i], ys[i] = lo+float64(i)*width, c*norm
	}
	xs[bins], ys[bins] = hi, ys[bins-1]
	return xs, ys
}

// WriteHTML writes f to w as an interactive HTML page.
func WriteHTML(w io.Writer, f *Figure) error {
	cs := f.Charts()
	if len(cs) == 0 {
		return fmt.Errorf("figure %q has nothing to chart", f.Title)
	}
	page := components.NewPage()
	page.PageTitle = f.Title
	page.AddCharts(cs...)
	return page.Render(w)
}

// SaveHTML writes f to the file path as an interactive HTML page.
func SaveHTML(path string, f *Figure) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteHTML(out, f)
}
