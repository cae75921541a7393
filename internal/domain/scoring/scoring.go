// Package scoring computes the PeakLine Score (PLS) for a single activity.
//
// The score compares the athlete's actual moving time against the time a
// fixed reference athlete would need for the same route and maps the ratio
// onto a 0-1000 scale. Everything here is pure computation; callers own
// logging and failure policy.
package scoring

import (
	"math"

	"github.com/peakline/peakline/internal/domain/model"
	"github.com/peakline/peakline/internal/domain/terrain"
)

// Score bounds.
const (
	minPoints = 0
	maxPoints = 1000
)

// Profile holds the reference-athlete parameters used to derive the ideal
// completion time. The defaults model a hypothetical top performer and act
// as the fixed ceiling every activity is measured against.
type Profile struct {
	// RideBaseSpeedKmh is the flat-ground cruising speed for rides.
	RideBaseSpeedKmh float64

	// RideClimbPenaltyMin is the time penalty in minutes per 100 m of
	// elevation gain on a ride.
	RideClimbPenaltyMin float64

	// RunBaseSpeedKmh is the flat-ground speed for runs.
	RunBaseSpeedKmh float64

	// RunClimbPenaltyMin is the time penalty in minutes per 100 m of
	// elevation gain on a run.
	RunClimbPenaltyMin float64
}

// DefaultProfile returns the reference-athlete parameters.
func DefaultProfile() Profile {
	return Profile{
		RideBaseSpeedKmh:    55,
		RideClimbPenaltyMin: 0.3,
		RunBaseSpeedKmh:     20,
		RunClimbPenaltyMin:  0.5,
	}
}

// speedAndPenalty selects the base speed and climb penalty for an activity
// type. Anything that is not a run is treated as a ride.
func (p Profile) speedAndPenalty(activityType string) (baseSpeedKmh, climbPenaltyMin float64) {
	if activityType == model.TypeRun {
		return p.RunBaseSpeedKmh, p.RunClimbPenaltyMin
	}
	return p.RideBaseSpeedKmh, p.RideClimbPenaltyMin
}

// Result contains the full PLS breakdown for one activity. JSON keys match
// the enrichment record consumed by the ingestion pipeline.
type Result struct {
	Points           int          `json:"pls_points"`
	IdealTimeHours   float64      `json:"ideal_time_hours"`
	ActualTimeHours  float64      `json:"actual_time_hours"`
	TimeRatio        float64      `json:"time_ratio"`
	Terrain          terrain.Type `json:"terrain_type"`
	DifficultyFactor float64      `json:"difficulty_factor"`
	Tier             Tier         `json:"performance_level"`
	Narrative        string       `json:"analysis"`
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithProfile replaces the reference-athlete profile. Profiles with a
// non-positive base speed are ignored.
func WithProfile(p Profile) Option {
	return func(e *Engine) {
		if p.RideBaseSpeedKmh > 0 && p.RunBaseSpeedKmh > 0 {
			e.profile = p
		}
	}
}

// Engine computes PLS results against a fixed reference profile. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	profile Profile
}

// NewEngine creates an Engine with the default reference profile unless
// overridden by options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{profile: DefaultProfile()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Profile returns the reference profile the engine scores against.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Score computes the PLS result for one activity.
//
// It returns ErrMissingData when distance or moving time is absent and
// ErrNonPositiveDistance when the ideal time is undefined. A non-positive
// moving time is not an error: the ratio is forced to 0 instead.
func (e *Engine) Score(a model.Activity) (Result, error) {
	if !a.HasRequiredFields() {
		return Result{}, ErrMissingData
	}

	distanceKm := a.DistanceM() / 1000
	actualHours := a.MovingTimeS() / 3600

	idealHours, err := e.idealTime(distanceKm, a.ElevationGain, a.Type)
	if err != nil {
		return Result{}, err
	}

	ratio := 0.0
	if actualHours > 0 {
		ratio = idealHours / actualHours
	}

	points := clampPoints(int(math.Round(ratio * float64(maxPoints))))

	terrainType := terrain.Classify(a.DistanceM(), a.ElevationGain)
	difficulty := DifficultyFactor(distanceKm, a.ElevationGain)

	return Result{
		Points:           points,
		IdealTimeHours:   roundTo(idealHours, 2),
		ActualTimeHours:  roundTo(actualHours, 2),
		TimeRatio:        roundTo(ratio, 3),
		Terrain:          terrainType,
		DifficultyFactor: roundTo(difficulty, 2),
		Tier:             TierForPoints(points),
		Narrative:        narrative(points, terrainType, difficulty),
	}, nil
}

// idealTime computes the reference athlete's expected completion time in
// hours: flat-ground time plus a climb penalty, scaled by the terrain
// coefficient.
func (e *Engine) idealTime(distanceKm, elevationGainM float64, activityType string) (float64, error) {
	if distanceKm <= 0 {
		return 0, ErrNonPositiveDistance
	}

	baseSpeedKmh, climbPenaltyMin := e.profile.speedAndPenalty(activityType)

	flatHours := distanceKm / baseSpeedKmh
	penaltyHours := (elevationGainM / 100 * climbPenaltyMin) / 60
	coefficient := terrain.Coefficient(terrain.Classify(distanceKm*1000, elevationGainM))

	return (flatHours + penaltyHours) * coefficient, nil
}

func clampPoints(points int) int {
	if points < minPoints {
		return minPoints
	}
	if points > maxPoints {
		return maxPoints
	}
	return points
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
