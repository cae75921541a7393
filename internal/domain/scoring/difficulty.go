package scoring

// Difficulty factor bounds and weights.
const (
	maxDifficultyFactor      = 3.0
	distanceWeightPer100Km   = 0.1
	elevationWeightPer1000M  = 0.2
	difficultyDistanceUnitKm = 100.0
	difficultyElevationUnitM = 1000.0
)

// DifficultyFactor rates the route's overall demand on a 1.0-3.0 scale from
// its distance and elevation gain. It is reporting-only context for the
// narrative and never feeds back into the score itself.
func DifficultyFactor(distanceKm, elevationGainM float64) float64 {
	distanceFactor := 1.0 + (distanceKm/difficultyDistanceUnitKm)*distanceWeightPer100Km
	elevationFactor := 1.0 + (elevationGainM/difficultyElevationUnitM)*elevationWeightPer1000M

	combined := distanceFactor * elevationFactor
	if combined > maxDifficultyFactor {
		return maxDifficultyFactor
	}
	return combined
}
