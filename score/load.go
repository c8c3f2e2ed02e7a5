package score

import (
	"fmt"

	"github.com/lifeline-inc/dispatch-api/schema"
)

const (
	divertingPenalty    = 50
	queuePenaltyPerUnit = 6
	queuePenaltyCap     = 30
	non24x7Penalty      = 15
)

// LoadScore rates current operational pressure: diversion status, the
// ambulance queue at the door, and whether the emergency department runs
// around the clock.
func LoadScore(h *schema.Hospital) (float64, []string) {
	score := 100.0
	reasons := []string{}

	if h.EmergencyReadiness.Diverting {
		score -= divertingPenalty
		reasons = append(reasons, "Currently diverting ambulances")
	}

	if q := h.EmergencyReadiness.AmbulanceQueue; q > 0 {
		penalty := float64(queuePenaltyPerUnit * q)
		if penalty > queuePenaltyCap {
			penalty = queuePenaltyCap
		}
		score -= penalty
		reasons = append(reasons, fmt.Sprintf("%d ambulances queued", q))
	}

	if !h.ServiceAvailability.Emergency24x7 {
		score -= non24x7Penalty
	} else {
		reasons = append(reasons, "24/7 emergency department")
	}

	return clamp(score), reasons
}
