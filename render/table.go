// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/bda-labs/gridbayes/stats"
	"github.com/olekukonko/tablewriter"
)

// Summary is the row of summary statistics reported for a posterior.
type Summary struct {
	Name string

	Mean, StdDev float64
	Mode         float64
	OnBoundary   bool

	// CI68 and CI95 are central credible intervals.
	CI68, CI95 [2]float64

	// LogML is the log marginal likelihood.
	LogML float64

	// Draws is the number of samples drawn, and Efficiency is the
	// fraction of accept-reject candidates accepted, or NaN if no
	// accept-reject samples were drawn.
	Draws      int
	Efficiency float64
}

// Summarize returns the summary of p after draws samples.
func Summarize(name string, p *stats.Posterior, draws int) Summary {
	s := Summary{
		Name:       name,
		Mean:       p.Mean(),
		StdDev:     p.StdDev(),
		Mode:       p.Mode(),
		OnBoundary: p.OnBoundary(),
		LogML:      p.LogMarginalLikelihood(),
		Draws:      draws,
		Efficiency: math.NaN(),
	}
	s.CI68[0], s.CI68[1] = p.CredibleInterval(0.683)
	s.CI95[0], s.CI95[1] = p.CredibleInterval(0.954)
	if n := p.ARIterations(); n > 0 {
		s.Efficiency = float64(draws) / float64(n)
	}
	return s
}

// SummaryHeader is the header of the table written by WriteSummaries.
var SummaryHeader = []string{"Posterior", "Mean", "Std Dev", "Mode", "68% CI", "95% CI", "log ML", "Draws", "AR eff."}

// WriteSummaries writes a table of posterior summaries to w.
func WriteSummaries(w io.Writer, rows []Summary) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(SummaryHeader)
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, s := range rows {
		mode := fmtFloat(s.Mode)
		if s.OnBoundary {
			mode += " (edge)"
		}
		eff := "-"
		if !math.IsNaN(s.Efficiency) {
			eff = strconv.FormatFloat(s.Efficiency, 'f', 3, 64)
		}
		tbl.Append([]string{
			s.Name,
			fmtFloat(s.Mean),
			fmtFloat(s.StdDev),
			mode,
			fmtInterval(s.CI68),
			fmtInterval(s.CI95),
			fmtFloat(s.LogML),
			strconv.Itoa(s.Draws),
			eff,
		})
	}

	tbl.Render()
}

// WriteTable writes rows of cells under header as a table.
func WriteTable(w io.Writer, header []string, rows [][]string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetBorder(true)
	tbl.AppendBulk(rows)
	tbl.Render()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 5, 64)
}

func fmtInterval(ci [2]float64) string {
	return fmt.Sprintf("[%s, %s]", fmtFloat(ci[0]), fmtFloat(ci[1]))
}
