// Package summary reduces a user's activity history to a single rolling
// PLS summary: the average of their best results plus a trend signal.
package summary

import (
	"math"
	"sort"

	"github.com/peakline/peakline/internal/domain/model"
	"github.com/peakline/peakline/internal/domain/scoring"
	"github.com/peakline/peakline/internal/domain/terrain"
)

// Aggregation defaults.
const (
	defaultTopN = 6
	trendWindow = 3
)

// Trend is the direction of a user's recent results.
type Trend string

// Trend values.
const (
	TrendInsufficient Trend = "Insufficient"
	TrendPositive     Trend = "Positive"
	TrendNegative     Trend = "Negative"
	TrendStable       Trend = "Stable"
)

// Scorer computes a PLS result for one activity. *scoring.Engine satisfies it.
type Scorer interface {
	Score(a model.Activity) (scoring.Result, error)
}

// Entry is one scored activity inside a summary, carrying just enough of
// the activity's identity for reporting.
type Entry struct {
	ActivityID string       `json:"activity_id"`
	Name       string       `json:"activity_name"`
	Date       string       `json:"date"`
	Points     int          `json:"pls_points"`
	Terrain    terrain.Type `json:"terrain_type"`
	Tier       scoring.Tier `json:"performance_level"`
}

// UserSummary is the rolling per-user metric: the mean of the best results,
// the tier that mean lands in, and a trend over the most recent scores.
type UserSummary struct {
	OverallScore            float64      `json:"overall_pls_score"`
	Tier                    scoring.Tier `json:"performance_level"`
	TopScores               []Entry      `json:"top_scores"`
	TotalActivitiesAnalyzed int          `json:"total_activities_analyzed"`
	Trend                   Trend        `json:"trend"`
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithTopN sets how many of the best results feed the overall score.
func WithTopN(n int) Option {
	return func(g *Aggregator) {
		if n > 0 {
			g.topN = n
		}
	}
}

// Aggregator scores a list of activities and reduces them to a UserSummary.
type Aggregator struct {
	scorer Scorer
	topN   int
}

// NewAggregator creates an Aggregator using the given scorer.
func NewAggregator(scorer Scorer, opts ...Option) *Aggregator {
	g := &Aggregator{
		scorer: scorer,
		topN:   defaultTopN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Aggregate scores each activity, drops the unscoreable ones and builds the
// summary from what remains. It returns ErrNoActivities for an empty input
// and ErrNothingScoreable when every activity fails to score.
func (g *Aggregator) Aggregate(activities []model.Activity) (UserSummary, error) {
	if len(activities) == 0 {
		return UserSummary{}, ErrNoActivities
	}

	// Scored entries in original input order; the trend depends on it.
	scored := make([]Entry, 0, len(activities))
	for _, a := range activities {
		result, err := g.scorer.Score(a)
		if err != nil {
			continue
		}
		name := a.Name
		if name == "" {
			name = "Unknown"
		}
		scored = append(scored, Entry{
			ActivityID: a.ID,
			Name:       name,
			Date:       a.StartDate,
			Points:     result.Points,
			Terrain:    result.Terrain,
			Tier:       result.Tier,
		})
	}

	if len(scored) == 0 {
		return UserSummary{}, ErrNothingScoreable
	}

	trend := trendOf(scored)

	// Stable sort keeps the original relative order for equal scores.
	ranked := make([]Entry, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	top := ranked[:min(g.topN, len(ranked))]

	sum := 0
	for _, e := range top {
		sum += e.Points
	}
	overall := math.Round(float64(sum)/float64(len(top))*10) / 10

	return UserSummary{
		OverallScore:            overall,
		Tier:                    scoring.TierForPoints(int(math.Floor(overall))),
		TopScores:               top,
		TotalActivitiesAnalyzed: len(scored),
		Trend:                   trend,
	}, nil
}

// trendOf inspects the last three scored entries in input order and
// compares the first of them against the last. The middle entry and all
// earlier history are deliberately ignored to match the published metric.
func trendOf(scored []Entry) Trend {
	if len(scored) < trendWindow {
		return TrendInsufficient
	}

	recent := scored[len(scored)-trendWindow:]
	first, last := recent[0].Points, recent[len(recent)-1].Points
	switch {
	case last > first:
		return TrendPositive
	case last < first:
		return TrendNegative
	default:
		return TrendStable
	}
}
