// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gridbayes computes single-parameter Bayesian posteriors on a
// grid, along with the other models of an introductory Bayesian
// statistics course, and summarizes and plots them.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// initApp initializes the gridbayes application.
func initApp() *cli.App {
	return &cli.App{
		Name:      "gridbayes",
		HelpName:  "gridbayes",
		Usage:     "grid-based Bayesian inference",
		Copyright: "(c) 2026 The gridbayes Authors",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&binomialCommand,
			&poissonCommand,
			&cauchyCommand,
			&machineCommand,
			&markovCommand,
			&climateCommand,
			&cancerCommand,
			&bvnCommand,
			&runCommand,
			&describeCommand,
			&envCommand,
		},
	}
}

func main() {
	app := initApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
