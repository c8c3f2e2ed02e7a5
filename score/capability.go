package score

import (
	"fmt"

	"github.com/lifeline-inc/dispatch-api/schema"
)

const (
	capabilityBaseScore = 30
	surgery24x7Bonus    = 10
)

// CapabilityScore rates how well a hospital's clinical programs match the
// emergency profile. Passing the disqualification filter already proves
// basic acceptance, worth the base score; trauma designation, matched
// capabilities and 24/7 surgery add on top.
func CapabilityScore(h *schema.Hospital, p schema.EmergencyProfile) (float64, []string) {
	score := float64(capabilityBaseScore)
	reasons := []string{}

	if p.TraumaBonus != nil {
		if bonus, ok := p.TraumaBonus[h.TraumaLevel]; ok && bonus > 0 {
			score += bonus
			reasons = append(reasons, fmt.Sprintf("Designated trauma center (%s)", h.TraumaLevel))
		}
	}

	for key, points := range p.CapabilityPoints {
		if h.Capability(key) {
			score += points
			reasons = append(reasons, fmt.Sprintf("Has %s", capabilityLabel(key)))
		}
	}

	if h.ServiceAvailability.Surgery24x7 {
		score += surgery24x7Bonus
		reasons = append(reasons, "24/7 surgical team on site")
	}

	return clamp(score), reasons
}

func capabilityLabel(key string) string {
	switch key {
	case schema.CapabilityStrokeCenter:
		return "certified stroke center"
	case schema.CapabilityEmergencySurgery:
		return "emergency surgery"
	case schema.CapabilityCTScan:
		return "CT scanning"
	case schema.CapabilityMRI:
		return "MRI"
	}
	return key
}
