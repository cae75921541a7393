// Package model contains domain models passed between layers.
package model

import "encoding/json"

// Activity represents one endurance activity as supplied by the ingestion
// pipeline. Distance and MovingTime are pointers so that a missing field is
// distinguishable from a zero value; everything else defaults safely.
type Activity struct {
	ID            string   `json:"id,omitempty"`         // opaque platform id, reporting only
	Name          string   `json:"name,omitempty"`       // activity title, reporting only
	StartDate     string   `json:"start_date,omitempty"` // opaque timestamp, reporting only
	Distance      *float64 `json:"distance"`             // meters
	MovingTime    *float64 `json:"moving_time"`          // seconds
	ElevationGain float64  `json:"total_elevation_gain"` // meters, defaults to 0
	AverageSpeed  float64  `json:"average_speed"`        // m/s, carried through unused
	Type          string   `json:"type"`                 // e.g. "Ride", "Run"; empty means Ride
}

// Activity type values with dedicated reference profiles.
const (
	TypeRide = "Ride"
	TypeRun  = "Run"
)

// HasRequiredFields reports whether the fields scoring cannot do without
// are present.
func (a Activity) HasRequiredFields() bool {
	return a.Distance != nil && a.MovingTime != nil
}

// DistanceM returns the distance in meters, 0 when absent.
func (a Activity) DistanceM() float64 {
	if a.Distance == nil {
		return 0
	}
	return *a.Distance
}

// MovingTimeS returns the moving time in seconds, 0 when absent.
func (a Activity) MovingTimeS() float64 {
	if a.MovingTime == nil {
		return 0
	}
	return *a.MovingTime
}

// FromRecord decodes the loosely typed activity record the ingestion
// pipeline passes around. Numeric fields arrive as whatever the upstream
// JSON decoder produced, so all common numeric shapes are accepted; fields
// that are missing or null stay absent.
func FromRecord(record map[string]any) Activity {
	a := Activity{
		ID:        stringField(record, "id"),
		Name:      stringField(record, "name"),
		StartDate: stringField(record, "start_date"),
		Type:      stringField(record, "type"),
	}

	if v, ok := numericField(record, "distance"); ok {
		a.Distance = &v
	}
	if v, ok := numericField(record, "moving_time"); ok {
		a.MovingTime = &v
	}
	if v, ok := numericField(record, "total_elevation_gain"); ok {
		a.ElevationGain = v
	}
	if v, ok := numericField(record, "average_speed"); ok {
		a.AverageSpeed = v
	}

	return a
}

func stringField(record map[string]any, key string) string {
	if s, ok := record[key].(string); ok {
		return s
	}
	return ""
}

func numericField(record map[string]any, key string) (float64, bool) {
	raw, ok := record[key]
	if !ok || raw == nil {
		return 0, false
	}

	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
