package dto

import "math"

// Money travels as decimal units over the wire and as integer cents
// internally; conversion happens only at this boundary.

func CentsFromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

func DecimalFromCents(c int64) float64 {
	return float64(c) / 100
}
