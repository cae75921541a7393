package summary

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoActivities signals that the input list was empty.
	ErrNoActivities = errors.New("no activities to aggregate")

	// ErrNothingScoreable signals that no activity in the list could be scored.
	ErrNothingScoreable = errors.New("no scoreable activities")
)
