package fixedwidth

import (
	"strconv"
	"strings"
)

// ExpThreshold is the smallest days-supply value rendered in exponential
// notation. Values below it render as plain integers.
const ExpThreshold = 1_000_000

// formatFixed renders v with exactly prec digits after the decimal point,
// a leading minus for negative values, no sign otherwise, and no grouping
// separators. All money and quantity columns share this policy and differ
// only in precision.
func formatFixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatCount(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatDaysSupply renders the days-supply column. At or above ExpThreshold
// the value switches to exponential notation with up to five fractional
// digits, trailing zeros trimmed, and a signed two-digit exponent
// (e.g. 1000000 -> "1E+06", 123456789 -> "1.23457E+08").
func formatDaysSupply(v int64) string {
	if v < ExpThreshold {
		return strconv.FormatInt(v, 10)
	}
	s := strconv.FormatFloat(float64(v), 'E', 5, 64)
	mant, exp, _ := strings.Cut(s, "E")
	mant = strings.TrimRight(mant, "0")
	mant = strings.TrimSuffix(mant, ".")
	return mant + "E" + exp
}
