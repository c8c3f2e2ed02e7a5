package score

import (
	"fmt"
	"math"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// OverridePenalty discounts hospitals that already rejected the case when
// a dispatcher re-ranks after escalation. They stay eligible, just
// disfavored.
const OverridePenalty = 0.85

// RankHospitals scores and orders candidate hospitals for a case.
// Qualified hospitals come first under a strict total order (score desc,
// distance asc, ICU beds desc, specialist headcount desc); disqualified
// hospitals are appended in their original order with a zero score and
// their elimination reasons. Scoring never fails: malformed inputs
// degrade to explainable low scores.
func RankHospitals(hospitals []schema.Hospital, c *schema.EmergencyCase) []schema.ScoreResult {
	return rank(hospitals, c, nil, time.Now())
}

// RerankForOverride re-ranks every hospital for a dispatcher override,
// applying the rejection penalty to hospitals holding a rejected record
// for this case.
func RerankForOverride(hospitals []schema.Hospital, c *schema.EmergencyCase) []schema.ScoreResult {
	return rank(hospitals, c, c.RejectedHospitalIDs(), time.Now())
}

// TopRecommendations returns the n best qualified hospitals.
func TopRecommendations(hospitals []schema.Hospital, c *schema.EmergencyCase, n int) []schema.ScoreResult {
	results := RankHospitals(hospitals, c)
	top := make([]schema.ScoreResult, 0, n)
	for _, r := range results {
		if r.Disqualified || len(top) == n {
			break
		}
		top = append(top, r)
	}
	return top
}

func rank(hospitals []schema.Hospital, c *schema.EmergencyCase, penalized map[string]bool, now time.Time) []schema.ScoreResult {
	profile := schema.ProfileFor(c.EmergencyType)
	weights, goldenHour := WeightsForCase(c, now)

	qualified := []schema.ScoreResult{}
	disqualified := []schema.ScoreResult{}

	for i := range hospitals {
		h := &hospitals[i]
		r := scoreOne(h, c, profile, weights, goldenHour, now)

		if penalized[h.ID] && !r.Disqualified {
			r.Breakdown.OverridePenalty = OverridePenalty
			r.SuitabilityScore = round(float64(r.SuitabilityScore) * OverridePenalty)
			r.Reasons = append(r.Reasons, "Previously rejected this case")
		}

		if r.Disqualified {
			disqualified = append(disqualified, r)
		} else {
			qualified = append(qualified, r)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if a.SuitabilityScore != b.SuitabilityScore {
			return a.SuitabilityScore > b.SuitabilityScore
		}
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		if a.ICUBedsAvailable != b.ICUBedsAvailable {
			return a.ICUBedsAvailable > b.ICUBedsAvailable
		}
		return a.SpecialistCount > b.SpecialistCount
	})

	return append(qualified, disqualified...)
}

func scoreOne(h *schema.Hospital, c *schema.EmergencyCase, p schema.EmergencyProfile,
	weights schema.FactorWeights, goldenHour schema.GoldenHourInfo, now time.Time) schema.ScoreResult {

	km := DistanceKm(c.PickupLocation, h.Location)

	result := schema.ScoreResult{
		HospitalID:       h.ID,
		HospitalName:     h.Name,
		DistanceKm:       km,
		ETAMinutes:       ETAMinutes(km),
		Weights:          weights,
		GoldenHour:       goldenHour,
		ICUBedsAvailable: h.BedAvailability.ICU.Available,
		SpecialistCount:  h.SpecialistTotal(),
	}

	if dq, reasons := Disqualify(h, c, p); dq {
		result.Disqualified = true
		result.DisqualificationReasons = reasons
		return result
	}

	capScore, capReasons := CapabilityScore(h, p)
	specScore, specReasons := SpecialistScore(h, p)
	equipScore, equipReasons := EquipmentScore(h, c, p)
	bedScore, bedReasons, _ := BedScore(h, p)
	loadScore, loadReasons := LoadScore(h)
	distScore, distReasons := DistanceScore(km)
	freshness := FreshnessMultiplier(h.CapacityLastUpdated, now)

	result.Breakdown = schema.ScoreBreakdown{
		Factors: schema.FactorScores{
			Capability:  capScore,
			Specialists: specScore,
			Equipment:   equipScore,
			Beds:        bedScore,
			Load:        loadScore,
			Distance:    distScore,
		},
		FreshnessMultiplier: freshness,
	}

	weighted := capScore*weights.Capability +
		specScore*weights.Specialists +
		equipScore*weights.Equipment +
		bedScore*weights.Beds +
		loadScore*weights.Load +
		distScore*weights.Distance

	final := weighted * freshness
	if math.IsNaN(final) || math.IsInf(final, 0) {
		// Should be unreachable with clamped factors; recover with the
		// mean of whatever components are still finite.
		final = finiteMean([]float64{capScore, specScore, equipScore, bedScore, loadScore, distScore})
		result.Breakdown.FallbackUsed = true
		log.WithField("prefix", "score").
			WithField("hospital", h.ID).
			Warn("non-finite suitability score, using component mean")
	}

	result.SuitabilityScore = round(clamp(final))

	result.Reasons = assembleReasons(result, weights,
		factorReasons{capability: capReasons, specialists: specReasons,
			equipment: equipReasons, beds: bedReasons, load: loadReasons, distance: distReasons},
		goldenHour)

	return result
}

type factorReasons struct {
	capability, specialists, equipment, beds, load, distance []string
}

// assembleReasons explains a recommendation with the two factors that
// contributed most, a proximity note and a golden-hour note.
func assembleReasons(r schema.ScoreResult, w schema.FactorWeights, fr factorReasons, gh schema.GoldenHourInfo) []string {
	type contribution struct {
		weighted float64
		reasons  []string
	}
	contributions := []contribution{
		{r.Breakdown.Factors.Capability * w.Capability, fr.capability},
		{r.Breakdown.Factors.Specialists * w.Specialists, fr.specialists},
		{r.Breakdown.Factors.Equipment * w.Equipment, fr.equipment},
		{r.Breakdown.Factors.Beds * w.Beds, fr.beds},
		{r.Breakdown.Factors.Load * w.Load, fr.load},
	}
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].weighted > contributions[j].weighted
	})

	reasons := []string{}
	for i := 0; i < len(contributions) && i < 2; i++ {
		reasons = append(reasons, contributions[i].reasons...)
	}
	reasons = append(reasons, fr.distance...)

	if gh.Active {
		reasons = append(reasons, fmt.Sprintf(
			"Golden hour: proximity weighted +%.0f%%", gh.DistanceBoost*100))
	}

	return reasons
}

func finiteMean(scores []float64) float64 {
	sum, n := 0.0, 0
	for _, s := range scores {
		if !math.IsNaN(s) && !math.IsInf(s, 0) {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
