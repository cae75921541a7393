// Package service provides the fail-soft boundary between the ingestion
// pipeline and the scoring core. Scoring is an enrichment, never a blocking
// requirement: every failure is logged, counted and converted into an
// absent result, and nothing escapes to the caller.
package service

import (
	"context"
	"errors"

	"github.com/peakline/peakline/internal/config"
	"github.com/peakline/peakline/internal/domain/model"
	"github.com/peakline/peakline/internal/domain/scoring"
	"github.com/peakline/peakline/internal/domain/summary"
	"github.com/peakline/peakline/pkg/logger"
	"github.com/peakline/peakline/pkg/metrics"
)

// enrichmentKey is the key under which the score is attached to an
// analysis record.
const enrichmentKey = "peakline_score"

// Service wires the scoring engine and aggregator behind the fail-soft
// contract. It holds no mutable state and is safe for concurrent use.
type Service struct {
	engine     *scoring.Engine
	aggregator *summary.Aggregator

	// Configuration applied before the components are built.
	profile        scoring.Profile
	topScores      int
	metricsEnabled bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProfile overrides the reference-athlete profile.
func WithProfile(p scoring.Profile) Option {
	return func(s *Service) {
		s.profile = p
	}
}

// WithTopScores sets how many best results feed the summary score.
func WithTopScores(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topScores = n
		}
	}
}

// WithMetrics enables or disables Prometheus instrumentation.
func WithMetrics(enabled bool) Option {
	return func(s *Service) {
		s.metricsEnabled = enabled
	}
}

// WithConfig applies a loaded configuration in one step.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg == nil {
			return
		}
		s.profile = scoring.Profile{
			RideBaseSpeedKmh:    cfg.RideBaseSpeedKmh,
			RideClimbPenaltyMin: cfg.RideClimbPenaltyMin,
			RunBaseSpeedKmh:     cfg.RunBaseSpeedKmh,
			RunClimbPenaltyMin:  cfg.RunClimbPenaltyMin,
		}
		if cfg.TopScores > 0 {
			s.topScores = cfg.TopScores
		}
		s.metricsEnabled = cfg.MetricsEnabled
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		profile:        scoring.DefaultProfile(),
		topScores:      6,
		metricsEnabled: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.engine = scoring.NewEngine(scoring.WithProfile(s.profile))
	s.aggregator = summary.NewAggregator(s.engine, summary.WithTopN(s.topScores))

	return s
}

// ScoreActivity computes the PLS result for one activity. A nil result
// means the activity could not be scored; the reason is logged and counted
// but never returned as an error.
func (s *Service) ScoreActivity(ctx context.Context, a model.Activity) (result *scoring.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "scoring panicked",
				logger.Any("panic", r),
				logger.String("activity_id", a.ID),
			)
			s.recordAbsent(metrics.ReasonInternal)
			result = nil
		}
	}()

	res, err := s.engine.Score(a)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrMissingData):
			s.logger.Warn(ctx, "insufficient data for PLS calculation",
				logger.String("activity_id", a.ID),
			)
			s.recordAbsent(metrics.ReasonMissingData)
		case errors.Is(err, scoring.ErrNonPositiveDistance):
			s.logger.Warn(ctx, "could not calculate ideal time",
				logger.String("activity_id", a.ID),
				logger.Float64("distance_m", a.DistanceM()),
			)
			s.recordAbsent(metrics.ReasonDegenerateData)
		default:
			s.logger.Error(ctx, "scoring failed",
				logger.String("activity_id", a.ID),
				logger.Error(err),
			)
			s.recordAbsent(metrics.ReasonInternal)
		}
		return nil
	}

	if s.metricsEnabled {
		metrics.RecordActivityScored(res.Points)
	}
	s.logger.Info(ctx, "PLS calculated",
		logger.String("activity_id", a.ID),
		logger.Int("points", res.Points),
	)

	return &res
}

// SummarizeAthlete reduces a user's activity history to one rolling summary.
// A nil result means nothing in the history could be scored.
func (s *Service) SummarizeAthlete(ctx context.Context, activities []model.Activity) (result *summary.UserSummary) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "aggregation panicked", logger.Any("panic", r))
			if s.metricsEnabled {
				metrics.RecordSummaryAbsent()
			}
			result = nil
		}
	}()

	sum, err := s.aggregator.Aggregate(activities)
	if err != nil {
		s.logger.Warn(ctx, "no user summary produced",
			logger.Int("activities", len(activities)),
			logger.Error(err),
		)
		if s.metricsEnabled {
			metrics.RecordSummaryAbsent()
		}
		return nil
	}

	if s.metricsEnabled {
		metrics.RecordSummary(sum.TotalActivitiesAnalyzed)
	}
	s.logger.Info(ctx, "user summary calculated",
		logger.Float64("overall_score", sum.OverallScore),
		logger.Int("activities", sum.TotalActivitiesAnalyzed),
	)

	return &sum
}

// EnrichAnalysis attaches the PLS result to an activity analysis record
// under the "peakline_score" key. When the record cannot be scored, the
// input is returned unchanged.
func (s *Service) EnrichAnalysis(ctx context.Context, analysis map[string]any) map[string]any {
	if analysis == nil {
		return analysis
	}

	details, ok := analysis["details"].(map[string]any)
	if !ok {
		return analysis
	}

	result := s.ScoreActivity(ctx, model.FromRecord(details))
	if result == nil {
		return analysis
	}

	analysis[enrichmentKey] = *result
	return analysis
}

func (s *Service) recordAbsent(reason string) {
	if s.metricsEnabled {
		metrics.RecordScoreAbsent(reason)
	}
}
