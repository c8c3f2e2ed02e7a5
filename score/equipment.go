package score

import (
	"fmt"

	"github.com/lifeline-inc/dispatch-api/schema"
)

const (
	equipmentBaseScore = 50

	ventilatorPresentBonus     = 20
	ventilatorAbsentPenalty    = -40
	defibrillatorPresentBonus  = 25
	defibrillatorAbsentPenalty = -40
	oxygenBonus                = 5
)

// EquipmentScore rates equipment readiness against the patient's required
// support and the profile's equipment preferences. Required-but-missing
// equipment is penalized harder than present equipment is rewarded; a
// hospital without a ventilator for a ventilated patient is close to
// unusable regardless of its other merits.
func EquipmentScore(h *schema.Hospital, c *schema.EmergencyCase, p schema.EmergencyProfile) (float64, []string) {
	score := float64(equipmentBaseScore)
	reasons := []string{}

	if c.SupportRequired.Ventilator {
		if h.Equipment.Ventilators.Available > 0 {
			score += ventilatorPresentBonus
			reasons = append(reasons, "Ventilator available for transport-dependent patient")
		} else {
			score += ventilatorAbsentPenalty
			reasons = append(reasons, "No ventilator available")
		}
	}

	if c.SupportRequired.Defibrillator {
		if h.Equipment.Defibrillators > 0 {
			score += defibrillatorPresentBonus
			reasons = append(reasons, "Defibrillator available")
		} else {
			score += defibrillatorAbsentPenalty
			reasons = append(reasons, "No defibrillator available")
		}
	}

	if c.SupportRequired.Oxygen {
		score += oxygenBonus
	}

	for _, d := range p.EquipmentDeltas {
		if h.EquipmentPresent(d.Key) {
			score += d.PresentDelta
			if d.PresentDelta > 0 {
				reasons = append(reasons, fmt.Sprintf("Has %s", equipmentLabel(d.Key)))
			}
		} else {
			score += d.AbsentDelta
		}
	}

	return clamp(score), reasons
}

func equipmentLabel(key string) string {
	switch key {
	case schema.EquipmentPortableXRay:
		return "portable X-ray"
	case schema.EquipmentDialysis:
		return "dialysis"
	case schema.EquipmentCTScanner:
		return "CT scanner"
	}
	return key
}
