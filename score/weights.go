package score

import (
	"math"
	"time"

	"github.com/lifeline-inc/dispatch-api/schema"
)

const (
	// GoldenHourWindow is the period after the incident during which
	// proximity matters most.
	GoldenHourWindow = 60 * time.Minute

	goldenHourBoost        = 0.10
	escalatedDistanceBoost = 0.20
	overrideDistanceBoost  = 0.30

	// goldenHourAcuityCeiling bounds the escalation amplification to the
	// low-acuity band.
	goldenHourAcuityCeiling = 2
)

// Base weight profiles keyed by acuity band. Each tuple sums to 1.0.
// Critical cases weigh capability heavily; minor cases mostly want the
// nearest open door.
var (
	criticalWeights = schema.FactorWeights{
		Capability: 0.60, Specialists: 0.10, Equipment: 0.05,
		Beds: 0.05, Load: 0.05, Distance: 0.15,
	}
	moderateWeights = schema.FactorWeights{
		Capability: 0.40, Specialists: 0.10, Equipment: 0.10,
		Beds: 0.10, Load: 0.05, Distance: 0.25,
	}
	minorWeights = schema.FactorWeights{
		Capability: 0.25, Specialists: 0.05, Equipment: 0.05,
		Beds: 0.05, Load: 0.10, Distance: 0.50,
	}
)

// BaseWeights returns the weight profile for an acuity level.
func BaseWeights(acuity int) schema.FactorWeights {
	switch {
	case acuity >= criticalAcuity:
		return criticalWeights
	case acuity == 3:
		return moderateWeights
	default:
		return minorWeights
	}
}

// WeightsForCase applies the time-pressure adjustments on top of the base
// profile. Within the golden hour the distance weight gains 0.10 funded
// equally by capability and beds. Once a low-acuity case has escalated the
// boost grows to 0.20 (escalation_required) or 0.30 (dispatcher_override),
// replacing the base boost: the more time lost to failed dispatch, the
// more proximity dominates.
func WeightsForCase(c *schema.EmergencyCase, now time.Time) (schema.FactorWeights, schema.GoldenHourInfo) {
	w := BaseWeights(c.AcuityLevel)

	minutes := now.Sub(c.IncidentTimestamp).Minutes()
	info := schema.GoldenHourInfo{MinutesSinceIncident: math.Max(0, minutes)}

	boost := 0.0
	if c.AcuityLevel <= goldenHourAcuityCeiling {
		switch c.Status {
		case schema.CaseEscalationRequired:
			boost = escalatedDistanceBoost
		case schema.CaseDispatcherOverride:
			boost = overrideDistanceBoost
		}
	}
	if boost == 0 && minutes >= 0 && now.Sub(c.IncidentTimestamp) <= GoldenHourWindow {
		boost = goldenHourBoost
	}

	if boost > 0 {
		w = shiftDistanceWeight(w, boost)
		info.Active = true
		info.DistanceBoost = boost
	}

	return w, info
}

// shiftDistanceWeight moves weight mass onto distance without driving any
// factor negative. Capability and beds fund the boost first, split evenly;
// any shortfall drains load, then specialists, then equipment. The tuple
// keeps summing to 1.0.
func shiftDistanceWeight(w schema.FactorWeights, boost float64) schema.FactorWeights {
	take := func(f *float64, amount float64) float64 {
		if amount <= 0 {
			return 0
		}
		taken := math.Min(amount, *f)
		*f -= taken
		return taken
	}

	moved := take(&w.Capability, boost/2)
	moved += take(&w.Beds, boost/2)
	if shortfall := boost - moved; shortfall > 0 {
		for _, f := range []*float64{&w.Load, &w.Specialists, &w.Equipment} {
			taken := take(f, shortfall)
			moved += taken
			shortfall -= taken
			if shortfall <= 0 {
				break
			}
		}
	}

	w.Distance += moved
	return w
}
