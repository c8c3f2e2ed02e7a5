package score

import (
	"fmt"
	"math"

	"github.com/lifeline-inc/dispatch-api/schema"
)

const (
	// specialistSaturation is the weighted headcount at which the factor
	// reaches 100.
	specialistSaturation = 5

	// neutralSpecialistScore applies when a profile names no specialists.
	neutralSpecialistScore = 50
)

// SpecialistScore rates on-duty specialist coverage for the emergency
// type. The profile defines which roles matter and their relative weight
// (a trauma surgeon counts double for trauma, for example).
func SpecialistScore(h *schema.Hospital, p schema.EmergencyProfile) (float64, []string) {
	if len(p.Specialists) == 0 {
		return neutralSpecialistScore, nil
	}

	weighted := 0.0
	reasons := []string{}
	for role, weight := range p.Specialists {
		n := h.Specialists[role]
		if n > 0 {
			weighted += weight * float64(n)
			reasons = append(reasons, fmt.Sprintf("%d %s on duty", n, roleLabel(role)))
		}
	}

	score := math.Round(weighted / specialistSaturation * 100)
	return clamp(score), reasons
}

func roleLabel(role string) string {
	switch role {
	case "trauma_surgeon":
		return "trauma surgeon(s)"
	case "orthopedic_surgeon":
		return "orthopedic surgeon(s)"
	case "burn_specialist":
		return "burn specialist(s)"
	case "plastic_surgeon":
		return "plastic surgeon(s)"
	case "infectious_disease":
		return "infectious disease specialist(s)"
	default:
		return role + "(s)"
	}
}
