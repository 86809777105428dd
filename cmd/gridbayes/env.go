// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bda-labs/gridbayes/config"
	"github.com/urfave/cli/v2"
)

// envCommand lists the environment variables that set defaults.
var envCommand = cli.Command{
	Action: envAction,
	Name:   "env",
	Usage:  "lists the GRIDBAYES_* environment variables and their current values",
}

// envAction implements the env command.
func envAction(ctx *cli.Context) error {
	if err := config.Usage(ctx.App.Writer); err != nil {
		return err
	}
	cfg := config.LoadOrDefault()
	_, err := fmt.Fprintf(ctx.App.Writer, "\nCurrent: %+v\n", *cfg)
	return err
}
