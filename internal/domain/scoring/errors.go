package scoring

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrMissingData signals that distance or moving time is absent.
	ErrMissingData = errors.New("activity is missing required fields")

	// ErrNonPositiveDistance signals that the ideal time is undefined
	// because the recorded distance is zero or negative.
	ErrNonPositiveDistance = errors.New("activity distance must be positive")
)
