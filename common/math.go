package common

import "math"

// DecimalToFixed rounds num to the given number of decimal places.
// Decoded degrees carry float noise past the 14th decimal; rounding
// there keeps cell edges stable.
func DecimalToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return math.Round(num*output) / output
}

// Approx reports whether a and b differ by no more than tolerance.
func Approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
