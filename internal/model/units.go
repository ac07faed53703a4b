// Package model defines the entities of an estimating session and the
// validated inputs used to create them.
package model

// UnitSystem selects which measurement system dimensional fields are
// entered and displayed in.
type UnitSystem string

const (
	// UnitImperial measures lengths in feet.
	UnitImperial UnitSystem = "imperial"
	// UnitMetric measures lengths in meters.
	UnitMetric UnitSystem = "metric"
)

// Other returns the opposite unit system.
func (u UnitSystem) Other() UnitSystem {
	if u == UnitImperial {
		return UnitMetric
	}
	return UnitImperial
}
