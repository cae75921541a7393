// Package terrain classifies a route into a steepness category based on
// elevation gained per meter traveled.
package terrain

// Type is a route steepness category.
type Type string

// Terrain categories, ordered from least to most demanding.
const (
	Flat     Type = "flat"
	Rolling  Type = "rolling"
	Hilly    Type = "hilly"
	Mountain Type = "mountain"
)

// Classification thresholds in meters of climb per meter traveled.
const (
	rollingThreshold  = 0.01
	hillyThreshold    = 0.03
	mountainThreshold = 0.06
)

// Ideal-time multipliers per category.
const (
	flatCoefficient     = 1.0
	rollingCoefficient  = 1.1
	hillyCoefficient    = 1.25
	mountainCoefficient = 1.5
)

// Classify maps a route's distance and elevation gain to a terrain category.
// A non-positive distance yields Flat, guarding the division.
func Classify(distanceM, elevationGainM float64) Type {
	if distanceM <= 0 {
		return Flat
	}

	ratio := elevationGainM / distanceM
	switch {
	case ratio < rollingThreshold:
		return Flat
	case ratio < hillyThreshold:
		return Rolling
	case ratio < mountainThreshold:
		return Hilly
	default:
		return Mountain
	}
}

// Coefficient returns the ideal-time multiplier for a terrain category.
// Unknown categories fall back to the flat multiplier.
func Coefficient(t Type) float64 {
	switch t {
	case Flat:
		return flatCoefficient
	case Rolling:
		return rollingCoefficient
	case Hilly:
		return hillyCoefficient
	case Mountain:
		return mountainCoefficient
	default:
		return flatCoefficient
	}
}
