package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeline-inc/dispatch-api/schema"
)

func qualifiedHospital() *schema.Hospital {
	return &schema.Hospital{
		ID:             "h-1",
		CaseAcceptance: map[string]bool{"cardiac": true, "trauma": true, "infectious": true},
		BedAvailability: schema.BedAvailability{
			Available: 10,
			ICU:       schema.BedCount{Available: 2},
			Emergency: schema.BedCount{Available: 5},
			Isolation: schema.BedCount{Available: 1},
		},
		EmergencyReadiness: schema.EmergencyReadiness{Status: schema.ReadinessAccepting},
	}
}

func TestDisqualifyAcceptingHospitalPasses(t *testing.T) {
	c := &schema.EmergencyCase{AcuityLevel: 5, EmergencyType: schema.EmergencyCardiac}
	dq, reasons := Disqualify(qualifiedHospital(), c, schema.ProfileFor(c.EmergencyType))
	assert.False(t, dq)
	assert.Empty(t, reasons)
}

func TestDisqualifyUnacceptedType(t *testing.T) {
	h := qualifiedHospital()
	delete(h.CaseAcceptance, "cardiac")

	c := &schema.EmergencyCase{AcuityLevel: 2, EmergencyType: schema.EmergencyCardiac}
	dq, reasons := Disqualify(h, c, schema.ProfileFor(c.EmergencyType))
	assert.True(t, dq)
	assert.Contains(t, reasons, "Does not accept cardiac cases")
}

func TestDisqualifyNoICUForCriticalCase(t *testing.T) {
	h := qualifiedHospital()
	h.BedAvailability.ICU.Available = 0

	critical := &schema.EmergencyCase{AcuityLevel: 4, EmergencyType: schema.EmergencyCardiac}
	dq, reasons := Disqualify(h, critical, schema.ProfileFor(critical.EmergencyType))
	assert.True(t, dq)
	assert.Contains(t, reasons, "No ICU beds for critical case")

	// the same hospital stays eligible below the critical band
	moderate := &schema.EmergencyCase{AcuityLevel: 3, EmergencyType: schema.EmergencyCardiac}
	dq, _ = Disqualify(h, moderate, schema.ProfileFor(moderate.EmergencyType))
	assert.False(t, dq)
}

func TestDisqualifyFullEmergencyDepartment(t *testing.T) {
	h := qualifiedHospital()
	h.EmergencyReadiness.Status = schema.ReadinessFull

	c := &schema.EmergencyCase{AcuityLevel: 2, EmergencyType: schema.EmergencyCardiac}
	dq, reasons := Disqualify(h, c, schema.ProfileFor(c.EmergencyType))
	assert.True(t, dq)
	assert.Contains(t, reasons, "Emergency department at full capacity")
}

func TestDisqualifyIsolationRequired(t *testing.T) {
	h := qualifiedHospital()
	h.BedAvailability.Isolation.Available = 0

	// case-level isolation flag
	c := &schema.EmergencyCase{
		AcuityLevel:   2,
		EmergencyType: schema.EmergencyCardiac,
		InfectionRisk: schema.InfectionRisk{IsolationRequired: true},
	}
	dq, reasons := Disqualify(h, c, schema.ProfileFor(c.EmergencyType))
	assert.True(t, dq)
	assert.Contains(t, reasons, "No isolation beds available")

	// profile-level isolation requirement
	infectious := &schema.EmergencyCase{AcuityLevel: 2, EmergencyType: schema.EmergencyInfectious}
	dq, _ = Disqualify(h, infectious, schema.ProfileFor(infectious.EmergencyType))
	assert.True(t, dq)
}

func TestDisqualifyNoBedsAtAll(t *testing.T) {
	h := qualifiedHospital()
	h.BedAvailability.Available = 0
	h.BedAvailability.Emergency.Available = 0

	c := &schema.EmergencyCase{AcuityLevel: 2, EmergencyType: schema.EmergencyCardiac}
	dq, reasons := Disqualify(h, c, schema.ProfileFor(c.EmergencyType))
	assert.True(t, dq)
	assert.Contains(t, reasons, "No beds available")
}

func TestDisqualifyCollectsEveryReason(t *testing.T) {
	h := &schema.Hospital{
		CaseAcceptance:     map[string]bool{},
		EmergencyReadiness: schema.EmergencyReadiness{Status: schema.ReadinessFull},
	}
	c := &schema.EmergencyCase{AcuityLevel: 5, EmergencyType: schema.EmergencyCardiac}

	dq, reasons := Disqualify(h, c, schema.ProfileFor(c.EmergencyType))
	assert.True(t, dq)
	assert.Len(t, reasons, 4)
}
