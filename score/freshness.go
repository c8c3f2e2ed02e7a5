package score

import (
	"time"
)

const (
	freshnessUnknown = 0.80
)

// FreshnessMultiplier discounts a hospital's score when its capacity data
// is stale. Applied after weighted aggregation, not as a weighted factor.
func FreshnessMultiplier(lastUpdated *time.Time, now time.Time) float64 {
	if lastUpdated == nil || lastUpdated.IsZero() {
		return freshnessUnknown
	}

	age := now.Sub(*lastUpdated)
	switch {
	case age <= 12*time.Hour:
		return 1.0
	case age <= 24*time.Hour:
		return 0.95
	case age <= 48*time.Hour:
		return 0.85
	default:
		return 0.70
	}
}
