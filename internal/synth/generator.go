// Package synth generates synthetic activity records for exercising the
// scoring engine and the summary aggregator from the command line.
package synth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/peakline/peakline/internal/domain/model"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	archetypeDivisor   = 6
)

// Activity archetype cases.
const (
	caseFlatRide = iota
	caseRollingRide
	caseMountainRide
	caseEasyRun
	caseTempoRun
	caseIncomplete
)

// Generation ranges per archetype. Distances in km, speeds in km/h,
// climb ratios in meters gained per meter traveled.
const (
	flatRideMinKm       = 30.0
	flatRideRangeKm     = 50.0
	flatRideMinSpeed    = 25.0
	flatRideRangeSpeed  = 12.0
	flatRideMaxRatio    = 0.005
	rollingRideMinKm    = 40.0
	rollingRideRangeKm  = 60.0
	rollingRideMinRatio = 0.012
	rollingRideMaxRatio = 0.028
	mountainMinKm       = 25.0
	mountainRangeKm     = 70.0
	mountainMinRatio    = 0.06
	mountainMaxRatio    = 0.09
	mountainMinSpeed    = 14.0
	mountainRangeSpeed  = 8.0
	rideMinSpeed        = 18.0
	rideRangeSpeed      = 10.0
	runMinKm            = 5.0
	runRangeKm          = 12.0
	easyRunMinSpeed     = 8.0
	easyRunRangeSpeed   = 3.0
	tempoRunMinSpeed    = 11.0
	tempoRunRangeSpeed  = 5.0
	runMaxRatio         = 0.02
)

var archetypeNames = map[int]string{
	caseFlatRide:     "Flat Ride",
	caseRollingRide:  "Rolling Hills Ride",
	caseMountainRide: "Mountain Epic",
	caseEasyRun:      "Easy Run",
	caseTempoRun:     "Tempo Run",
	caseIncomplete:   "Trainer Session",
}

// randomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func between(minVal, rangeVal float64) float64 {
	return minVal + randomFloat()*rangeVal
}

// Generator produces synthetic activities across performer archetypes.
// A small share of records is generated without required fields so the
// fail-soft path of the scoring boundary gets exercised too.
type Generator struct {
	now time.Time
}

// NewGenerator creates a Generator anchored at the current time.
func NewGenerator() *Generator {
	return &Generator{now: time.Now().UTC()}
}

// Generate produces n synthetic activities, most recent last, spaced one
// day apart ending today.
func (g *Generator) Generate(n int) []model.Activity {
	activities := make([]model.Activity, 0, n)
	for i := 0; i < n; i++ {
		date := g.now.AddDate(0, 0, -(n - 1 - i))
		activities = append(activities, g.generateOne(i, date))
	}
	return activities
}

func (g *Generator) generateOne(seq int, date time.Time) model.Activity {
	archetype := seq % archetypeDivisor

	a := model.Activity{
		ID:        uuid.NewString(),
		Name:      fmt.Sprintf("%s #%d", archetypeNames[archetype], seq+1),
		StartDate: date.Format(time.RFC3339),
		Type:      model.TypeRide,
	}

	var distanceKm, speedKmh, climbRatio float64
	switch archetype {
	case caseFlatRide:
		distanceKm = between(flatRideMinKm, flatRideRangeKm)
		speedKmh = between(flatRideMinSpeed, flatRideRangeSpeed)
		climbRatio = randomFloat() * flatRideMaxRatio
	case caseRollingRide:
		distanceKm = between(rollingRideMinKm, rollingRideRangeKm)
		speedKmh = between(rideMinSpeed, rideRangeSpeed)
		climbRatio = between(rollingRideMinRatio, rollingRideMaxRatio-rollingRideMinRatio)
	case caseMountainRide:
		distanceKm = between(mountainMinKm, mountainRangeKm)
		speedKmh = between(mountainMinSpeed, mountainRangeSpeed)
		climbRatio = between(mountainMinRatio, mountainMaxRatio-mountainMinRatio)
	case caseEasyRun:
		a.Type = model.TypeRun
		distanceKm = between(runMinKm, runRangeKm)
		speedKmh = between(easyRunMinSpeed, easyRunRangeSpeed)
		climbRatio = randomFloat() * runMaxRatio
	case caseTempoRun:
		a.Type = model.TypeRun
		distanceKm = between(runMinKm, runRangeKm)
		speedKmh = between(tempoRunMinSpeed, tempoRunRangeSpeed)
		climbRatio = randomFloat() * runMaxRatio
	case caseIncomplete:
		// No distance or moving time; the boundary must absorb these.
		return a
	}

	distanceM := distanceKm * 1000
	movingTimeS := distanceKm / speedKmh * 3600
	a.Distance = &distanceM
	a.MovingTime = &movingTimeS
	a.ElevationGain = distanceM * climbRatio
	a.AverageSpeed = speedKmh / 3.6

	return a
}
