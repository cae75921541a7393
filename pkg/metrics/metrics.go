// Package metrics provides Prometheus metrics for the PeakLine scoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Absent-result reasons used as label values.
const (
	ReasonMissingData    = "missing_data"
	ReasonDegenerateData = "degenerate_distance"
	ReasonInternal       = "internal"
)

// Manager manages all Prometheus metrics for the scoring engine.
type Manager struct {
	namespace    string
	subsystem    string
	enabled      bool
	pointBuckets []float64
	registry     prometheus.Registerer

	// Scoring metrics
	activitiesScored prometheus.Counter
	scoreAbsent      *prometheus.CounterVec
	awardedPoints    prometheus.Histogram

	// Aggregation metrics
	summariesComputed prometheus.Counter
	summariesAbsent   prometheus.Counter
	summaryActivities prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:    "peakline",
		subsystem:    "scoring",
		enabled:      true,
		pointBuckets: prometheus.LinearBuckets(0, 100, 11), // 0..1000 in steps of 100
		registry:     prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	if !m.enabled {
		return
	}

	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		}
	}

	m.activitiesScored = prometheus.NewCounter(factory(
		"activities_scored_total", "Number of activities scored successfully."))
	m.scoreAbsent = prometheus.NewCounterVec(factory(
		"score_absent_total", "Number of activities that yielded no score, by reason."),
		[]string{"reason"})
	m.summariesComputed = prometheus.NewCounter(factory(
		"summaries_computed_total", "Number of user summaries produced."))
	m.summariesAbsent = prometheus.NewCounter(factory(
		"summaries_absent_total", "Number of summary requests that yielded no result."))

	m.awardedPoints = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "awarded_points",
		Help:      "Distribution of awarded PLS points.",
		Buckets:   m.pointBuckets,
	})
	m.summaryActivities = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "summary_activities",
		Help:      "Number of scoreable activities per user summary.",
		Buckets:   []float64{1, 3, 6, 10, 20, 50, 100},
	})

	m.registry.MustRegister(
		m.activitiesScored,
		m.scoreAbsent,
		m.summariesComputed,
		m.summariesAbsent,
		m.awardedPoints,
		m.summaryActivities,
	)
}

// RecordActivityScored counts one successful score and its awarded points.
func (m *Manager) RecordActivityScored(points int) {
	if !m.enabled {
		return
	}
	m.activitiesScored.Inc()
	m.awardedPoints.Observe(float64(points))
}

// RecordScoreAbsent counts one absent score result, bucketed by reason.
func (m *Manager) RecordScoreAbsent(reason string) {
	if !m.enabled {
		return
	}
	m.scoreAbsent.WithLabelValues(reason).Inc()
}

// RecordSummary counts one produced summary over the given scored set size.
func (m *Manager) RecordSummary(scoredActivities int) {
	if !m.enabled {
		return
	}
	m.summariesComputed.Inc()
	m.summaryActivities.Observe(float64(scoredActivities))
}

// RecordSummaryAbsent counts one summary request with no result.
func (m *Manager) RecordSummaryAbsent() {
	if !m.enabled {
		return
	}
	m.summariesAbsent.Inc()
}

// Package-level helpers against the global manager.

// RecordActivityScored counts one successful score and its awarded points.
func RecordActivityScored(points int) { globalManager.RecordActivityScored(points) }

// RecordScoreAbsent counts one absent score result, bucketed by reason.
func RecordScoreAbsent(reason string) { globalManager.RecordScoreAbsent(reason) }

// RecordSummary counts one produced summary over the given scored set size.
func RecordSummary(scoredActivities int) { globalManager.RecordSummary(scoredActivities) }

// RecordSummaryAbsent counts one summary request with no result.
func RecordSummaryAbsent() { globalManager.RecordSummaryAbsent() }

// Registry exposes the custom registry, e.g. for test gathering.
func Registry() *prometheus.Registry { return customRegistry }
