// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger configures leveled logging for the gridbayes
// commands and times their steps.
package logger // import "github.com/bda-labs/gridbayes/logger"

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// LogLevelFlag selects the logging level of a command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of logging (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	EnvVars: []string{"GRIDBAYES_LOG_LEVEL"},
	Value:   "info",
}

// defaultLogFormat defines the format used for log output.
const defaultLogFormat = "%{time:2006/01/02 15:04:05} %{color}%{level:-8s} %{shortpkg}/%{shortfunc}%{color:reset}: %{message}"

// NewLogger returns a logger for module that writes to stderr, so
// logs don't mix with command output. Unknown levels mean INFO.
func NewLogger(level string, module string) *logging.Logger {
	return NewLoggerTo(os.Stderr, level, module)
}

// NewLoggerTo is like NewLogger but writes to w.
func NewLoggerTo(w io.Writer, level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	logging.SetBackend(lvlBackend)
	return logging.MustGetLogger(module)
}

// ParseTime splits elapsed into hours, minutes, and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours, minutes, seconds uint32
	)

	seconds = uint32(elapsed.Round(1 * time.Second).Seconds())

	if seconds >= 60 {
		minutes = seconds / 60
		seconds -= minutes * 60
	}

	if minutes >= 60 {
		hours = minutes / 60
		minutes -= hours * 60
	}

	return hours, minutes, seconds
}

// FormatElapsed formats elapsed as milliseconds below a second,
// seconds below a minute, and hours, minutes, and seconds otherwise.
func FormatElapsed(elapsed time.Duration) string {
	switch {
	case elapsed < time.Second:
		return fmt.Sprintf("%.2f ms", float64(elapsed)/float64(time.Millisecond))
	case elapsed < time.Minute:
		return fmt.Sprintf("%.2f s", elapsed.Seconds())
	}
	h, m, s := ParseTime(elapsed)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// Timer measures how long a named step takes and logs it.
type Timer struct {
	log   *logging.Logger
	name  string
	start time.Time
}

// StartTimer logs the start of the step name at DEBUG level and
// returns a Timer for it.
func StartTimer(log *logging.Logger, name string) *Timer {
	log.Debugf("%s...", name)
	return &Timer{log: log, name: name, start: time.Now()}
}

// Stop logs the time since the Timer started at INFO level and
// returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.log.Infof("%s: elapsed time %s", t.name, FormatElapsed(elapsed))
	return elapsed
}
