package utils

import "math"

// RoundWithTwoDecimalPlace rounds to two decimal places, half away from zero.
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
