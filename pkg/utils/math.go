package utils

import "math"

// RoundDecimal rounds a float64 value to the specified number of decimal places.
// For example, RoundDecimal(3.14159, 2) returns 3.14.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

// Ratio returns part/total rounded to four decimals, or 0 when total is 0.
func Ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundDecimal(float64(part)/float64(total), 4)
}
