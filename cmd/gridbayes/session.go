// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/bda-labs/gridbayes/config"
	"github.com/bda-labs/gridbayes/logger"
	"github.com/bda-labs/gridbayes/render"
	"github.com/bda-labs/gridbayes/stats"
	"github.com/fatih/color"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot/vg"
)

// session holds the settings of a single command invocation,
// resolved from its flags and the environment.
type session struct {
	ctx *cli.Context
	cfg *config.Config
	log *logging.Logger
	w   io.Writer
	rng *rand.Rand

	draws   int
	sampler stats.SampleMethod
	points  int
}

// newSession resolves the common flags of ctx. Flags that aren't set
// fall back to the environment configuration.
func newSession(ctx *cli.Context, module string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if ctx.IsSet(logger.LogLevelFlag.Name) {
		level = ctx.String(logger.LogLevelFlag.Name)
	}

	s := &session{
		ctx:    ctx,
		cfg:    cfg,
		log:    logger.NewLoggerTo(ctx.App.ErrWriter, level, module),
		w:      ctx.App.Writer,
		draws:  cfg.Draws,
		points: cfg.Points,
	}
	if ctx.IsSet(drawsFlag.Name) {
		s.draws = ctx.Int(drawsFlag.Name)
	}
	if s.draws < 0 {
		return nil, fmt.Errorf("negative number of draws %d", s.draws)
	}
	if ctx.IsSet(pointsFlag.Name) {
		s.points = ctx.Int(pointsFlag.Name)
	}

	name := cfg.Sampler
	if ctx.IsSet(samplerFlag.Name) {
		name = ctx.String(samplerFlag.Name)
	}
	if s.sampler, err = stats.ParseSampleMethod(name); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if ctx.IsSet(seedFlag.Name) {
		seed = ctx.Uint64(seedFlag.Name)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s.log.Debugf("random seed %d", seed)
	s.rng = rand.New(rand.NewSource(seed))

	return s, nil
}

// printf writes formatted output for the user.
func (s *session) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(s.w, format, a...); err != nil {
		s.log.Errorf("output error: %v", err)
	}
}

// warnf writes a highlighted warning.
func (s *session) warnf(format string, a ...any) {
	warn := color.New(color.FgYellow).SprintfFunc()
	s.printf("%s\n", warn(format, a...))
}

// posterior draws from p if requested, adds it to fig, and returns
// its summary.
func (s *session) posterior(name string, p *stats.Posterior, fig *render.Figure) render.Summary {
	return s.posteriorDraws(name, p, fig, s.draws, s.sampler)
}

// posteriorDraws is like posterior with an explicit number of draws
// and sampler.
func (s *session) posteriorDraws(name string, p *stats.Posterior, fig *render.Figure, n int, method stats.SampleMethod) render.Summary {
	var draws stats.Sample
	if n > 0 {
		timer := logger.StartTimer(s.log, fmt.Sprintf("%d %s draws from %s", n, method, name))
		draws = p.Draw(s.rng, n, method)
		timer.Stop()
	}
	fig.AddPosterior(name, p, draws)

	if approx, err := p.NormalApprox(); err != nil {
		s.warnf("%s: %v at %.4g", name, err, p.Mode())
	} else {
		fig.Lines = append(fig.Lines, render.DensitySeries(name+" normal approx.", approx, p.Grid()))
	}
	return render.Summarize(name, p, n)
}

// finish writes the summary table and the requested figure outputs.
func (s *session) finish(fig *render.Figure, rows []render.Summary) error {
	if len(rows) > 0 {
		render.WriteSummaries(s.w, rows)
	}
	return s.output(fig, s.ctx.String(plotFlag.Name), s.ctx.String(htmlFlag.Name))
}

// output writes fig to the image file plot and the HTML file html,
// either of which may be empty. Relative paths are in the configured
// output directory.
func (s *session) output(fig *render.Figure, plot, html string) error {
	if plot != "" {
		path := s.outPath(plot)
		w, h := vg.Length(s.cfg.PlotWidth)*vg.Centimeter, vg.Length(s.cfg.PlotHeight)*vg.Centimeter
		if err := render.SaveImage(path, fig, w, h); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		s.log.Noticef("Wrote %s", path)
	}
	if html != "" {
		path := s.outPath(html)
		if err := render.SaveHTML(path, fig); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		s.log.Noticef("Wrote %s", path)
	}
	return nil
}

func (s *session) outPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.cfg.OutDir, path)
}
