package utils

import "math"

// RoundMoney rounds an amount to the currency's minor unit (2 decimals).
// Intermediate values are kept at full precision; rounding happens only when
// a line item or derived amount is finalized.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// MinorUnits converts a 2-decimal amount to integer cents. Exact-identity
// checks compare in minor units so float representation cannot blur them.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
