package score

import (
	"math"
)

// clamp bounds a factor score into [0, 100] before aggregation.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// round converts a float score to the integer form exposed to dispatchers.
func round(f float64) int {
	return int(math.Round(f))
}
