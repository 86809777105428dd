// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	for _, tc := range []struct {
		in      time.Duration
		h, m, s uint32
	}{
		{0, 0, 0, 0},
		{1400 * time.Millisecond, 0, 0, 1},
		{59 * time.Second, 0, 0, 59},
		{60 * time.Second, 0, 1, 0},
		{61 * time.Second, 0, 1, 1},
		{2*time.Hour + 3*time.Minute + 4*time.Second, 2, 3, 4},
		{time.Hour, 1, 0, 0},
	} {
		h, m, s := ParseTime(tc.in)
		assert.Equal(t, [3]uint32{tc.h, tc.m, tc.s}, [3]uint32{h, m, s}, tc.in.String())
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "12.50 ms", FormatElapsed(12500*time.Microsecond))
	assert.Equal(t, "2.25 s", FormatElapsed(2250*time.Millisecond))
	assert.Equal(t, "1h 2m 3s", FormatElapsed(time.Hour+2*time.Minute+3*time.Second))
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warning", "test")
	log.Info("hidden")
	log.Warning("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARNING")

	buf.Reset()
	log = NewLoggerTo(&buf, "bogus", "test")
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "debug", "test")
	tm := StartTimer(log, "posterior")
	elapsed := tm.Stop()
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Contains(t, buf.String(), "posterior...")
	assert.Contains(t, buf.String(), "posterior: elapsed time")
}
