package schema

import (
	"time"
)

const (
	CaseCollection = "cases"
)

// CaseStatus is the lifecycle state of an emergency case.
type CaseStatus string

const (
	CaseCreated              CaseStatus = "created"
	CaseTriaged              CaseStatus = "triaged"
	CaseDispatched           CaseStatus = "dispatched"
	CaseAwaitingResponse     CaseStatus = "awaiting_response"
	CaseAccepted             CaseStatus = "accepted"
	CaseEscalationRequired   CaseStatus = "escalation_required"
	CaseDispatcherOverride   CaseStatus = "dispatcher_override"
	CaseEnroute              CaseStatus = "enroute"
	CaseHandoverInitiated    CaseStatus = "handover_initiated"
	CaseHandoverAcknowledged CaseStatus = "handover_acknowledged"
	CaseCompleted            CaseStatus = "completed"
)

// caseTransitions lists the valid successor states for every case state.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseCreated:              {CaseTriaged},
	CaseTriaged:              {CaseDispatched},
	CaseDispatched:           {CaseAwaitingResponse},
	CaseAwaitingResponse:     {CaseAccepted, CaseEscalationRequired},
	CaseEscalationRequired:   {CaseDispatcherOverride, CaseAccepted},
	CaseAccepted:             {CaseEnroute},
	CaseDispatcherOverride:   {CaseEnroute},
	CaseEnroute:              {CaseHandoverInitiated},
	CaseHandoverInitiated:    {CaseHandoverAcknowledged},
	CaseHandoverAcknowledged: {CaseCompleted},
	CaseCompleted:            {},
}

// CanTransition reports whether a case may move from one state to another.
func CanTransition(from, to CaseStatus) bool {
	for _, s := range caseTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionSources returns every state from which a case may reach the
// given state. Used to build conditional update filters.
func TransitionSources(to CaseStatus) []CaseStatus {
	sources := []CaseStatus{}
	for from, targets := range caseTransitions {
		for _, s := range targets {
			if s == to {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

// escalationSettled contains the states an escalation check must treat as
// final. A case in any of these states is never escalated again.
var escalationSettled = map[CaseStatus]struct{}{
	CaseAccepted:             {},
	CaseEscalationRequired:   {},
	CaseDispatcherOverride:   {},
	CaseEnroute:              {},
	CaseHandoverInitiated:    {},
	CaseHandoverAcknowledged: {},
	CaseCompleted:            {},
}

// EscalationSettled reports whether the state is final for escalation
// purposes.
func EscalationSettled(s CaseStatus) bool {
	_, ok := escalationSettled[s]
	return ok
}

// EmergencyType classifies the clinical nature of a case.
type EmergencyType string

const (
	EmergencyCardiac    EmergencyType = "cardiac"
	EmergencyTrauma     EmergencyType = "trauma"
	EmergencyBurn       EmergencyType = "burn"
	EmergencyMedical    EmergencyType = "medical"
	EmergencyAccident   EmergencyType = "accident"
	EmergencyFire       EmergencyType = "fire"
	EmergencyInfectious EmergencyType = "infectious"
	EmergencyOther      EmergencyType = "other"
)

// emergencyTypeAliases collapses legacy type names used by older intake
// clients onto the canonical enum.
var emergencyTypeAliases = map[string]EmergencyType{
	"heart_attack":   EmergencyCardiac,
	"cardiac_arrest": EmergencyCardiac,
	"stroke":         EmergencyCardiac,
	"mva":            EmergencyAccident,
	"road_accident":  EmergencyAccident,
	"vehicle":        EmergencyAccident,
	"burns":          EmergencyBurn,
	"covid":          EmergencyInfectious,
	"epidemic":       EmergencyInfectious,
	"outbreak":       EmergencyInfectious,
	"general":        EmergencyMedical,
	"illness":        EmergencyMedical,
	"unknown":        EmergencyOther,
}

// NormalizeEmergencyType maps any raw type string onto the canonical enum.
// Unrecognized values fall back to "other".
func NormalizeEmergencyType(raw string) EmergencyType {
	switch t := EmergencyType(raw); t {
	case EmergencyCardiac, EmergencyTrauma, EmergencyBurn, EmergencyMedical,
		EmergencyAccident, EmergencyFire, EmergencyInfectious, EmergencyOther:
		return t
	}
	if t, ok := emergencyTypeAliases[raw]; ok {
		return t
	}
	return EmergencyOther
}

// RejectionReason is the mandatory code a hospital supplies when rejecting
// a case notification.
type RejectionReason string

const (
	RejectNoICU                RejectionReason = "no_icu"
	RejectNoSpecialist         RejectionReason = "no_specialist"
	RejectOverCapacity         RejectionReason = "over_capacity"
	RejectEquipmentUnavailable RejectionReason = "equipment_unavailable"
	RejectOther                RejectionReason = "other"
)

// ValidRejectionReason reports whether the code is part of the enum.
func ValidRejectionReason(r RejectionReason) bool {
	switch r {
	case RejectNoICU, RejectNoSpecialist, RejectOverCapacity,
		RejectEquipmentUnavailable, RejectOther:
		return true
	}
	return false
}

// SupportRequired flags patient-specific equipment needed during transport
// and on arrival.
type SupportRequired struct {
	Ventilator    bool `json:"ventilator" bson:"ventilator"`
	Defibrillator bool `json:"defibrillator" bson:"defibrillator"`
	Oxygen        bool `json:"oxygen" bson:"oxygen"`
}

// InfectionRisk carries the isolation requirements of a case.
type InfectionRisk struct {
	IsolationRequired bool `json:"isolation_required" bson:"isolation_required"`
}

// EmergencyCase is a single incident routed through the dispatch engine.
// The notification records are embedded so that every workflow mutation is
// an atomic single-document update.
type EmergencyCase struct {
	ID                    string               `json:"id" bson:"_id"`
	AcuityLevel           int                  `json:"acuity_level" bson:"acuity_level"`
	EmergencyType         EmergencyType        `json:"emergency_type" bson:"emergency_type"`
	PickupLocation        Location             `json:"pickup_location" bson:"pickup_location"`
	IncidentTimestamp     time.Time            `json:"incident_timestamp" bson:"incident_timestamp"`
	SupportRequired       SupportRequired      `json:"support_required" bson:"support_required"`
	InfectionRisk         InfectionRisk        `json:"infection_risk" bson:"infection_risk"`
	Status                CaseStatus           `json:"status" bson:"status"`
	HospitalNotifications []NotificationRecord `json:"hospital_notifications" bson:"hospital_notifications"`
	RejectionCount        int                  `json:"rejection_count" bson:"rejection_count"`
	AwaitingResponseSince *time.Time           `json:"awaiting_response_since,omitempty" bson:"awaiting_response_since,omitempty"`
	AcceptedHospitalID    string               `json:"accepted_hospital_id" bson:"accepted_hospital_id"`
	AcceptedAt            *time.Time           `json:"accepted_at,omitempty" bson:"accepted_at,omitempty"`
	OverrideUsed          bool                 `json:"override_used" bson:"override_used"`
	EscalationReason      string               `json:"escalation_reason" bson:"escalation_reason"`
	CreatedAt             time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at" bson:"updated_at"`
}

// NotificationFor returns the notification record for a hospital, or nil.
func (c *EmergencyCase) NotificationFor(hospitalID string) *NotificationRecord {
	for i := range c.HospitalNotifications {
		if c.HospitalNotifications[i].HospitalID == hospitalID {
			return &c.HospitalNotifications[i]
		}
	}
	return nil
}

// RejectedHospitalIDs returns the hospitals holding a rejected record for
// this case. Used by the constrained override re-rank.
func (c *EmergencyCase) RejectedHospitalIDs() map[string]bool {
	rejected := map[string]bool{}
	for _, n := range c.HospitalNotifications {
		if n.Response == ResponseRejected {
			rejected[n.HospitalID] = true
		}
	}
	return rejected
}
