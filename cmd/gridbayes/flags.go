// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bda-labs/gridbayes/logger"
	"github.com/urfave/cli/v2"
)

// Output and sampling flags shared by the posterior commands. Unset
// flags take their defaults from the GRIDBAYES_* environment.
var (
	plotFlag = cli.StringFlag{
		Name:  "plot",
		Usage: "write the figure to an image `FILE` (png, svg, pdf, or jpg)",
	}
	htmlFlag = cli.StringFlag{
		Name:  "html",
		Usage: "write the figure to an interactive HTML `FILE`",
	}
	drawsFlag = cli.IntFlag{
		Name:  "draws",
		Usage: "number of samples to draw from each posterior",
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed for the random source; 0 seeds from the clock",
	}
	samplerFlag = cli.StringFlag{
		Name:  "sampler",
		Usage: "posterior sampling method (\"inverse-cdf\" or \"accept-reject\")",
	}
	pointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "number of grid points",
	}
)

// Model flags.
var (
	logSpaceFlag = cli.BoolFlag{
		Name:  "logspace",
		Usage: "compute the posterior in log space, for large counts",
	}
	loFlag = cli.Float64Flag{
		Name:  "lo",
		Usage: "lower end of the parameter grid",
	}
	hiFlag = cli.Float64Flag{
		Name:  "hi",
		Usage: "upper end of the parameter grid",
	}
	priorFlag = cli.StringFlag{
		Name:  "prior",
		Usage: "prior family (\"flat\", \"beta\", \"jeffreys\", \"gamma\", \"exp\", or \"normal\")",
		Value: "flat",
	}
	priorAFlag = cli.Float64Flag{
		Name:  "a",
		Usage: "first beta prior parameter",
		Value: 1,
	}
	priorBFlag = cli.Float64Flag{
		Name:  "b",
		Usage: "second beta prior parameter",
		Value: 1,
	}
	priorShapeFlag = cli.Float64Flag{
		Name:  "shape",
		Usage: "gamma prior shape",
		Value: 1,
	}
	priorScaleFlag = cli.Float64Flag{
		Name:  "scale",
		Usage: "gamma or exponential prior scale, or Cauchy scale",
		Value: 1,
	}
	priorMuFlag = cli.Float64Flag{
		Name:  "mu",
		Usage: "normal prior mean",
	}
	priorSigmaFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "normal prior standard deviation, or noise standard deviation",
		Value: 1,
	}
)

// commonFlags returns the flags every posterior command accepts.
func commonFlags(extra ...cli.Flag) []cli.Flag {
	return append(extra,
		&plotFlag,
		&htmlFlag,
		&drawsFlag,
		&seedFlag,
		&samplerFlag,
		&pointsFlag,
		&logger.LogLevelFlag,
	)
}

// priorFlags returns the flags that select a prior.
func priorFlags() []cli.Flag {
	return []cli.Flag{
		&priorFlag,
		&priorAFlag,
		&priorBFlag,
		&priorShapeFlag,
		&priorScaleFlag,
		&priorMuFlag,
		&priorSigmaFlag,
	}
}
