package schema

// FactorWeights is a weight 6-tuple over the scoring factors. A valid
// tuple sums to 1.0.
type FactorWeights struct {
	Capability  float64 `json:"capability" bson:"capability"`
	Specialists float64 `json:"specialists" bson:"specialists"`
	Equipment   float64 `json:"equipment" bson:"equipment"`
	Beds        float64 `json:"beds" bson:"beds"`
	Load        float64 `json:"load" bson:"load"`
	Distance    float64 `json:"distance" bson:"distance"`
}

// Sum returns the tuple total, which should always be 1.0.
func (w FactorWeights) Sum() float64 {
	return w.Capability + w.Specialists + w.Equipment + w.Beds + w.Load + w.Distance
}

// FactorScores holds the raw per-factor scores, each in [0, 100].
type FactorScores struct {
	Capability  float64 `json:"capability" bson:"capability"`
	Specialists float64 `json:"specialists" bson:"specialists"`
	Equipment   float64 `json:"equipment" bson:"equipment"`
	Beds        float64 `json:"beds" bson:"beds"`
	Load        float64 `json:"load" bson:"load"`
	Distance    float64 `json:"distance" bson:"distance"`
}

// ScoreBreakdown explains how the final suitability score was assembled.
type ScoreBreakdown struct {
	Factors             FactorScores `json:"factors" bson:"factors"`
	FreshnessMultiplier float64      `json:"freshness_multiplier" bson:"freshness_multiplier"`
	OverridePenalty     float64      `json:"override_penalty,omitempty" bson:"override_penalty,omitempty"`
	FallbackUsed        bool         `json:"fallback_used,omitempty" bson:"fallback_used,omitempty"`
}

// GoldenHourInfo reports the time-pressure adjustment applied to the
// distance weight.
type GoldenHourInfo struct {
	Active               bool    `json:"active" bson:"active"`
	MinutesSinceIncident float64 `json:"minutes_since_incident" bson:"minutes_since_incident"`
	DistanceBoost        float64 `json:"distance_boost" bson:"distance_boost"`
}

// ScoreResult is the per-hospital outcome of ranking a case. Disqualified
// hospitals carry a zero score and the reasons they were eliminated.
type ScoreResult struct {
	HospitalID              string         `json:"hospital_id" bson:"hospital_id"`
	HospitalName            string         `json:"hospital_name" bson:"hospital_name"`
	SuitabilityScore        int            `json:"suitability_score" bson:"suitability_score"`
	DistanceKm              float64        `json:"distance_km" bson:"distance_km"`
	ETAMinutes              int            `json:"eta_minutes" bson:"eta_minutes"`
	Disqualified            bool           `json:"disqualified" bson:"disqualified"`
	DisqualificationReasons []string       `json:"disqualification_reasons,omitempty" bson:"disqualification_reasons,omitempty"`
	Breakdown               ScoreBreakdown `json:"score_breakdown" bson:"score_breakdown"`
	Weights                 FactorWeights  `json:"weights" bson:"weights"`
	GoldenHour              GoldenHourInfo `json:"golden_hour" bson:"golden_hour"`
	Reasons                 []string       `json:"recommendation_reasons" bson:"recommendation_reasons"`

	// Tie-break inputs, surfaced for dispatcher visibility.
	ICUBedsAvailable int `json:"icu_beds_available" bson:"icu_beds_available"`
	SpecialistCount  int `json:"specialist_count" bson:"specialist_count"`
}
