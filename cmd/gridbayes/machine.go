// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bda-labs/gridbayes/logger"
	"github.com/bda-labs/gridbayes/models"
	"github.com/bda-labs/gridbayes/render"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	nominalRateFlag = cli.Float64Flag{
		Name:  "nominal",
		Usage: "defect rate of a working line",
		Value: 0.01,
	}
	failedRateFlag = cli.Float64Flag{
		Name:  "failed",
		Usage: "defect rate of a failed line",
		Value: 0.4,
	}
	pFailFlag = cli.Float64Flag{
		Name:  "prior",
		Usage: "prior probability that the line has failed",
		Value: 0.1,
	}
	batchFlag = cli.IntSliceFlag{
		Name:     "batch",
		Usage:    "a batch of `N,n` items of which n were defective; may be repeated",
		Required: true,
	}
)

// machineCommand updates the failure probability of a production line
// batch by batch.
var machineCommand = cli.Command{
	Action:    machineAction,
	Name:      "machine",
	Usage:     "computes the probability that a production line has failed from defect counts",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&nominalRateFlag,
		&failedRateFlag,
		&pFailFlag,
		&batchFlag,
		&plotFlag,
		&htmlFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The machine command decides between two hypotheses for a production
line, working with defect rate --nominal or failed with defect rate
--failed, starting from the prior probability --prior that it failed.
Each --batch N,n adds N inspected items of which n were defective.`,
}

// machineAction implements the machine command.
func machineAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "Machine")
	if err != nil {
		return err
	}

	batches, err := parseBatches(ctx.IntSlice(batchFlag.Name))
	if err != nil {
		return err
	}

	m := models.NewMachineFailure(ctx.Float64(nominalRateFlag.Name), ctx.Float64(failedRateFlag.Name), ctx.Float64(pFailFlag.Name))
	if !(m.NominalRate > 0 && m.NominalRate < 1 && m.FailedRate > 0 && m.FailedRate < 1) {
		return fmt.Errorf("defect rates must be in (0, 1), got %g and %g", m.NominalRate, m.FailedRate)
	}
	if m.PFail < 0 || m.PFail > 1 {
		return fmt.Errorf("prior probability must be in [0, 1], got %g", m.PFail)
	}

	xs, ys := []float64{0}, []float64{m.PFail}
	rows := [][]string{{"prior", "", "", "0", "0", strconv.FormatFloat(m.PFail, 'f', 4, 64)}}
	for i, b := range batches {
		m.Update(b[0], b[1])
		pf := m.PostFailedLog()
		xs, ys = append(xs, float64(m.Items)), append(ys, pf)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(b[0]),
			strconv.Itoa(b[1]),
			strconv.Itoa(m.Items),
			strconv.Itoa(m.Defects),
			strconv.FormatFloat(pf, 'f', 4, 64),
		})
	}
	render.WriteTable(s.w, []string{"Batch", "Items", "Defects", "Total items", "Total defects", "P(failed)"}, rows)

	bold := color.New(color.Bold).SprintfFunc()
	s.printf("%s\n", m)
	s.printf("P(nominal | data):\t%s\n", bold("%.4f", 1-m.PostFailedLog()))

	fig := &render.Figure{
		Title:  "Machine failure",
		XLabel: "items inspected",
		YLabel: "P(failed)",
		Lines:  []render.Series{{Name: "P(failed)", Xs: xs, Ys: ys}},
		Points: []render.Series{{Name: "after batch", Xs: xs, Ys: ys}},
	}
	return s.output(fig, ctx.String(plotFlag.Name), ctx.String(htmlFlag.Name))
}

// parseBatches pairs up the values of repeated --batch N,n flags.
func parseBatches(vals []int) ([][2]int, error) {
	if len(vals)%2 != 0 {
		return nil, fmt.Errorf("batches must be pairs N,n, got %v", vals)
	}
	batches := make([][2]int, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		n, nf := vals[i], vals[i+1]
		if n < 0 || nf < 0 || nf > n {
			return nil, fmt.Errorf("batch %d,%d: need 0 <= n <= N", n, nf)
		}
		batches = append(batches, [2]int{n, nf})
	}
	return batches, nil
}
