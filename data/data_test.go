// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatures(t *testing.T) {
	years, dTs, err := Temperatures()
	require.NoError(t, err)
	require.Len(t, years, 2021-1880+1)
	require.Len(t, dTs, len(years))

	assert.Equal(t, 1880.0, years[0])
	assert.Equal(t, 2021.0, years[len(years)-1])
	assert.Equal(t, -0.16, dTs[0])
	assert.Equal(t, 1.02, dTs[2016-1880])

	// Callers get their own copy.
	dTs[0] = 99
	_, again, err := Temperatures()
	require.NoError(t, err)
	assert.Equal(t, -0.16, again[0])
}

func TestParseGISSErrors(t *testing.T) {
	header := "a\nb\nc\nd\ne\n"
	_, err := parseGISS([]byte(header + "1880 x\n"))
	assert.Error(t, err)
	_, err = parseGISS([]byte(header + "1880\n"))
	assert.Error(t, err)

	rows, err := parseGISS([]byte(header + "1880 -0.1 0\n\n1881 0.2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1880, -0.1}, {1881, 0.2}}, rows)
}

func TestCancer(t *testing.T) {
	bc, err := BreastCancer()
	require.NoError(t, err)
	pc, err := ProstateCancer()
	require.NoError(t, err)
	require.Len(t, bc, 11)
	require.Len(t, pc, 11)

	ith := bc[IthacaIndex]
	assert.Equal(t, "14850", ith.Zip)
	assert.Equal(t, "Ithaca", ith.Town)
	assert.Equal(t, []string{"13062", "14851", "14852", "14853"}, ith.Included)
	assert.Equal(t, 181, ith.Observed)
	assert.Equal(t, 175.1, ith.Expected)
	assert.False(t, ith.CrossesCounty())
	assert.InDelta(t, 181/175.1, ith.Ratio(), 1e-12)

	assert.Equal(t, 240, pc[IthacaIndex].Observed)
	assert.Equal(t, 188.7, pc[IthacaIndex].Expected)

	assert.True(t, bc[0].CrossesCounty())
	assert.Nil(t, bc[1].Included)
	assert.Equal(t, "Very sparse data", bc[4].Note)

	viaSite, err := Cancer("prostate")
	require.NoError(t, err)
	assert.Equal(t, pc, viaSite)
	_, err = Cancer("lung")
	assert.Error(t, err)
}

func TestParseIncidenceErrors(t *testing.T) {
	header := "a|b|c|d|e|f\n"
	_, err := parseIncidence([]byte(header + "1|x||many|1.0|n\n"))
	assert.Error(t, err)
	_, err = parseIncidence([]byte(header + "1|x||3|lots|n\n"))
	assert.Error(t, err)
	_, err = parseIncidence([]byte(header + "1|x|3|1.0\n"))
	assert.Error(t, err)
}
