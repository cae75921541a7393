package scoring

import (
	"fmt"

	"github.com/peakline/peakline/internal/domain/terrain"
)

// Tier is a named performance bucket derived from PLS points.
type Tier string

// Performance tiers, best first.
const (
	TierElite            Tier = "Elite"
	TierExcellent        Tier = "Excellent"
	TierVeryGood         Tier = "Very Good"
	TierGood             Tier = "Good"
	TierAverage          Tier = "Average"
	TierFair             Tier = "Fair"
	TierNeedsImprovement Tier = "Needs Improvement"
)

// Tier breakpoints on the 0-1000 points scale.
const (
	eliteFloor     = 900
	excellentFloor = 800
	veryGoodFloor  = 700
	goodFloor      = 600
	averageFloor   = 500
	fairFloor      = 400
)

// Difficulty-factor buckets used only for wording.
const (
	highDifficultyFloor   = 2.0
	mediumDifficultyFloor = 1.5
)

// TierForPoints maps PLS points to a performance tier.
func TierForPoints(points int) Tier {
	switch {
	case points >= eliteFloor:
		return TierElite
	case points >= excellentFloor:
		return TierExcellent
	case points >= veryGoodFloor:
		return TierVeryGood
	case points >= goodFloor:
		return TierGood
	case points >= averageFloor:
		return TierAverage
	case points >= fairFloor:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// terrainDescriptions holds the wording for each terrain category.
var terrainDescriptions = map[terrain.Type]string{
	terrain.Flat:     "flat terrain",
	terrain.Rolling:  "rolling terrain",
	terrain.Hilly:    "hilly terrain",
	terrain.Mountain: "mountain terrain",
}

// narrative composes the human-readable analysis for a result. It is a
// deterministic presentation function kept apart from the numeric scoring
// so scores can be verified independently of wording.
func narrative(points int, terrainType terrain.Type, difficulty float64) string {
	terrainDesc, ok := terrainDescriptions[terrainType]
	if !ok {
		terrainDesc = "mixed terrain"
	}

	text := fmt.Sprintf("A result of %d points corresponds to the '%s' level for a route over %s. ",
		points, TierForPoints(points), terrainDesc)

	switch {
	case difficulty > highDifficultyFloor:
		text += "The route is highly demanding. "
	case difficulty > mediumDifficultyFloor:
		text += "The route is moderately demanding. "
	default:
		text += "A relatively easy route. "
	}

	switch {
	case points >= excellentFloor:
		text += "Outstanding performance!"
	case points >= goodFloor:
		text += "Solid performance."
	default:
		text += "There is room for improvement."
	}

	return text
}
