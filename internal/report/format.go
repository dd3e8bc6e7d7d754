// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"math"
	"strconv"
)

// missing is written for values that do not exist (no data for a city in a
// year, no evolution metrics, unknown last rank).
const missing = "-"

// fixed formats f with prec decimals; NaN renders as missing.
func fixed(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return missing
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// percent formats f as "12.5%", or missing for NaN.
func percent(f float64, prec int) string {
	s := fixed(f, prec)
	if s == missing {
		return s
	}
	return s + "%"
}
