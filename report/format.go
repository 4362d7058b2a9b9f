// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed1 renders v with exactly one decimal, rounding the shortest decimal
// representation of v half away from zero (0.15 → "0.2", 2.25 → "2.3").
func Fixed1(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return decimal.NewFromFloat(v).StringFixed(1)
}

// Cost renders a total path cost: rounded half-up to one decimal place, then
// printed in shortest form with at least one fractional digit ("3.0", "12.5").
// Magnitudes outside [1e-3, 1e7) switch to scientific form ("1.0E7").
func Cost(v float64) string {
	return shortest(math.Floor(v*10+0.5) / 10)
}

// sciLow and sciHigh bound the plain (non-scientific) rendering range.
const (
	sciLow  = 1e-3
	sciHigh = 1e7
)

func shortest(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	abs := math.Abs(v)
	if v == 0 || (abs >= sciLow && abs < sciHigh) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}

		return s
	}

	// "1.2345E+07" → "1.2345E7", "1E-04" → "1.0E-4"
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	exp = strings.TrimLeft(exp[1:], "0")

	return mant + "E" + sign + exp
}
