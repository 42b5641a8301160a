package normalize

import "math"

// DollarsToCents converts a dollar amount to int64 cents for the two-decimal
// money columns. Uses math.Round to avoid truncation bias; negative amounts
// (clawbacks) round symmetrically.
func DollarsToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// DollarsToMicros converts a dollar amount to int64 millionths of a dollar.
// The lowest-acceptable-price column carries four decimal places, which
// micros represent exactly.
func DollarsToMicros(v float64) int64 {
	return int64(math.Round(v * 1_000_000))
}

// CentsToDollars is the inverse of DollarsToCents.
func CentsToDollars(c int64) float64 {
	return float64(c) / 100
}

// MicrosToDollars is the inverse of DollarsToMicros.
func MicrosToDollars(m int64) float64 {
	return float64(m) / 1_000_000
}
