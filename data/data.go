// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data provides the datasets used by the example analyses.
//
// The global temperature series is the NASA GISS Land-Ocean
// Temperature Index (GISTEMP), as annual mean anomalies in °C
// relative to the 1951-1980 average, retrieved 2022-04-21. The
// cancer tables are Tompkins County, NY incidence counts for
// 2005-2009 by primary ZIP code, from the New York State Cancer
// Surveillance Improvement Initiative. ZIP codes whose town ends in
// "*" cross county lines, and their counts cover the whole ZIP code.
package data // import "github.com/bda-labs/gridbayes/data"

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	//go:embed giss_temp.txt
	gissTemp []byte

	//go:embed breast_cancer.psv
	breastCancer []byte

	//go:embed prostate_cancer.psv
	prostateCancer []byte
)

// gissHeaderLines is the number of lines before the first row of
// the GISS table.
const gissHeaderLines = 5

// IthacaIndex is the index of Ithaca in the cancer tables.
const IthacaIndex = 6

// Incidence is the cancer incidence for one ZIP code area.
type Incidence struct {
	// Zip is the primary ZIP code.
	Zip string

	// Town is the post office name.
	Town string

	// Included lists any other ZIP codes counted with Zip.
	Included []string

	// Observed is the number of cases observed, and Expected is
	// the number expected from state-wide rates for the area's
	// population.
	Observed int
	Expected float64

	// Note is the registry's comparison of observed to expected.
	Note string
}

// CrossesCounty reports whether the ZIP code extends beyond the
// county.
func (in Incidence) CrossesCounty() bool {
	return strings.HasSuffix(in.Town, "*")
}

// Ratio returns the ratio of observed to expected cases.
func (in Incidence) Ratio() float64 {
	return float64(in.Observed) / in.Expected
}

var temperatures = sync.OnceValues(func() ([][2]float64, error) {
	return parseGISS(gissTemp)
})

// Temperatures returns the years of the GISS series and the
// temperature anomaly for each year.
func Temperatures() (years, dTs []float64, err error) {
	rows, err := temperatures()
	if err != nil {
		return nil, nil, err
	}
	years, dTs = make([]float64, len(rows)), make([]float64, len(rows))
	for i, row := range rows {
		years[i], dTs[i] = row[0], row[1]
	}
	return years, dTs, nil
}

// parseGISS parses the year and unsmoothed anomaly columns of a GISS
// temperature table.
func parseGISS(text []byte) ([][2]float64, error) {
	var rows [][2]float64
	sc := bufio.NewScanner(bytes.NewReader(text))
	for line := 1; sc.Scan(); line++ {
		if line <= gissHeaderLines {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("giss line %d: want at least 2 columns, got %d", line, len(fields))
		}
		var row [2]float64
		for i := range row {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("giss line %d: %w", line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, sc.Err()
}

var (
	breast   = sync.OnceValues(func() ([]Incidence, error) { return parseIncidence(breastCancer) })
	prostate = sync.OnceValues(func() ([]Incidence, error) { return parseIncidence(prostateCancer) })
)

// BreastCancer returns the breast cancer incidence table.
func BreastCancer() ([]Incidence, error) {
	return copyIncidence(breast())
}

// ProstateCancer returns the prostate cancer incidence table.
func ProstateCancer() ([]Incidence, error) {
	return copyIncidence(prostate())
}

// Cancer returns the incidence table for site, which is "breast" or
// "prostate".
func Cancer(site string) ([]Incidence, error) {
	switch site {
	case "breast":
		return BreastCancer()
	case "prostate":
		return ProstateCancer()
	}
	return nil, fmt.Errorf("unknown cancer site %q", site)
}

func copyIncidence(in []Incidence, err error) ([]Incidence, error) {
	if err != nil {
		return nil, err
	}
	return append([]Incidence(nil), in...), nil
}

// parseIncidence parses a '|'-delimited incidence table with a
// header row.
func parseIncidence(text []byte) ([]Incidence, error) {
	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = '|'
	r.FieldsPerRecord = 6
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("incidence table has no header")
	}
	var out []Incidence
	for i, rec := range records[1:] {
		obs, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("incidence row %d: observed: %w", i+1, err)
		}
		exp, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("incidence row %d: expected: %w", i+1, err)
		}
		var included []string
		for _, z := range strings.Split(rec[2], ",") {
			if z = strings.TrimSpace(z); z != "" {
				included = append(included, z)
			}
		}
		out = append(out, Incidence{
			Zip:      rec[0],
			Town:     rec[1],
			Included: included,
			Observed: obs,
			Expected: exp,
			Note:     rec[5],
		})
	}
	return out, nil
}
