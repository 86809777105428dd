// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// req reports whether got is within relative tolerance tol of expect.
func req(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol*math.Abs(expect)
}
