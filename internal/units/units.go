// Package units provides stateless length-unit conversions.
//
// Conversions are exact; callers that display converted values round to two
// decimal places with Round2, while aggregation always works on the
// unrounded results so rounding error never compounds across conversions.
package units

import "math"

// MetersPerFoot is the exact international foot definition.
const MetersPerFoot = 0.3048

// FeetToMeters converts feet to meters.
func FeetToMeters(ft float64) float64 {
	return ft * MetersPerFoot
}

// MetersToFeet converts meters to feet.
func MetersToFeet(m float64) float64 {
	return m / MetersPerFoot
}

// FeetToInches converts feet to inches.
func FeetToInches(ft float64) float64 {
	return ft * 12
}

// InchesToFeet converts inches to feet.
func InchesToFeet(in float64) float64 {
	return in / 12
}

// MetersToCentimeters converts meters to centimeters.
func MetersToCentimeters(m float64) float64 {
	return m * 100
}

// CentimetersToMeters converts centimeters to meters.
func CentimetersToMeters(cm float64) float64 {
	return cm / 100
}

// Round2 rounds a value to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
