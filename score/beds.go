package score

import (
	"fmt"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// BedScore rates available beds across the profile's relevant categories
// using a three-tier curve: plenty (>=10), adequate (5-9), scarce (1-4),
// none (0). When no categorized beds are reported the general availability
// count stands in, so sparse records do not zero out a hospital that still
// reports open beds.
func BedScore(h *schema.Hospital, p schema.EmergencyProfile) (float64, []string, int) {
	beds := 0
	for _, cat := range p.BedCategories {
		beds += h.BedsForCategory(cat)
	}
	if beds == 0 {
		beds = h.BedAvailability.Available
	}

	var score float64
	switch {
	case beds >= 10:
		score = 80 + 2*float64(beds-10)
	case beds >= 5:
		score = 60 + 4*float64(beds-5)
	case beds >= 1:
		score = 20 + 8*float64(beds)
	default:
		score = 0
	}

	reasons := []string{}
	if beds > 0 {
		reasons = append(reasons, fmt.Sprintf("%d relevant beds available", beds))
	}

	return clamp(score), reasons, beds
}
