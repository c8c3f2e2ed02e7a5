package score

import (
	"fmt"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// criticalAcuity is the acuity band treated as critical for
// disqualification and weighting (5 is the most critical case).
const criticalAcuity = 4

// Disqualify applies the hard elimination rules that run before any
// scoring. A disqualified hospital is excluded from ranking but still
// reported with its reasons so dispatchers can see why it was skipped.
func Disqualify(h *schema.Hospital, c *schema.EmergencyCase, p schema.EmergencyProfile) (bool, []string) {
	reasons := []string{}

	if !h.AcceptsType(p.AcceptanceKey) {
		reasons = append(reasons, fmt.Sprintf("Does not accept %s cases", p.Type))
	}

	if h.EmergencyReadiness.Status == schema.ReadinessFull {
		reasons = append(reasons, "Emergency department at full capacity")
	}

	if (c.InfectionRisk.IsolationRequired || p.IsolationRequired) &&
		h.BedAvailability.Isolation.Available == 0 {
		reasons = append(reasons, "No isolation beds available")
	}

	if c.AcuityLevel >= criticalAcuity && p.ICUCritical &&
		h.BedAvailability.ICU.Available == 0 {
		reasons = append(reasons, "No ICU beds for critical case")
	}

	if h.BedAvailability.Available == 0 && h.BedAvailability.Emergency.Available == 0 {
		reasons = append(reasons, "No beds available")
	}

	return len(reasons) > 0, reasons
}
