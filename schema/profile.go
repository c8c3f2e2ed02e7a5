package schema

// Keys used by emergency profiles to reference hospital capabilities and
// equipment without coupling the catalog to struct fields.
const (
	CapabilityStrokeCenter     = "stroke_center"
	CapabilityEmergencySurgery = "emergency_surgery"
	CapabilityCTScan           = "ct_scan"
	CapabilityMRI              = "mri"

	EquipmentPortableXRay = "portable_xray"
	EquipmentDialysis     = "dialysis"
	EquipmentCTScanner    = "ct_scanner"
)

// BedCategory names a bed pool tracked per hospital.
type BedCategory string

const (
	BedGeneral   BedCategory = "general"
	BedICU       BedCategory = "icu"
	BedEmergency BedCategory = "emergency"
	BedTrauma    BedCategory = "trauma"
	BedIsolation BedCategory = "isolation"
	BedPediatric BedCategory = "pediatric"
)

// EquipmentDelta is a profile-defined score adjustment for one equipment
// type: PresentDelta applies when the hospital has it, AbsentDelta when it
// does not.
type EquipmentDelta struct {
	Key          string
	PresentDelta float64
	AbsentDelta  float64
}

// EmergencyProfile describes what a given emergency type demands from a
// hospital: the acceptance flag it must carry, which specialists matter
// and their relative weight, which clinical capabilities and equipment
// score points, and which bed pools are relevant.
type EmergencyProfile struct {
	Type              EmergencyType
	AcceptanceKey     string
	Specialists       map[string]float64
	CapabilityPoints  map[string]float64
	EquipmentDeltas   []EquipmentDelta
	BedCategories     []BedCategory
	ICUCritical       bool
	IsolationRequired bool
	TraumaBonus       map[TraumaLevel]float64
}

// traumaCenterBonus is shared by trauma-like profiles.
var traumaCenterBonus = map[TraumaLevel]float64{
	TraumaLevel1: 30,
	TraumaLevel2: 20,
	TraumaLevel3: 10,
}

// EmergencyProfiles is the static catalog keyed by canonical emergency
// type. Built once, read-only afterwards; safe for concurrent use.
var EmergencyProfiles = map[EmergencyType]EmergencyProfile{
	EmergencyCardiac: {
		Type:          EmergencyCardiac,
		AcceptanceKey: "cardiac",
		Specialists:   map[string]float64{"cardiologist": 2, "intensivist": 1},
		CapabilityPoints: map[string]float64{
			CapabilityEmergencySurgery: 20,
			CapabilityCTScan:           10,
			CapabilityStrokeCenter:     10,
		},
		EquipmentDeltas: []EquipmentDelta{
			{Key: EquipmentPortableXRay, PresentDelta: 5},
		},
		BedCategories: []BedCategory{BedICU, BedEmergency},
		ICUCritical:   true,
	},
	EmergencyTrauma: {
		Type:          EmergencyTrauma,
		AcceptanceKey: "trauma",
		Specialists:   map[string]float64{"trauma_surgeon": 2, "orthopedic_surgeon": 1, "radiologist": 1},
		CapabilityPoints: map[string]float64{
			CapabilityEmergencySurgery: 25,
			CapabilityCTScan:           15,
		},
		EquipmentDeltas: []EquipmentDelta{
			{Key: EquipmentPortableXRay, PresentDelta: 10, AbsentDelta: -10},
		},
		BedCategories: []BedCategory{BedTrauma, BedICU, BedEmergency},
		ICUCritical:   true,
		TraumaBonus:   traumaCenterBonus,
	},
	EmergencyBurn: {
		Type:          EmergencyBurn,
		AcceptanceKey: "burn",
		Specialists:   map[string]float64{"burn_specialist": 2, "plastic_surgeon": 1},
		CapabilityPoints: map[string]float64{
			CapabilityEmergencySurgery: 20,
		},
		EquipmentDeltas: []EquipmentDelta{
			{Key: EquipmentDialysis, PresentDelta: 5},
		},
		BedCategories: []BedCategory{BedICU, BedEmergency},
		ICUCritical:   true,
	},
	EmergencyMedical: {
		Type:          EmergencyMedical,
		AcceptanceKey: "medical",
		Specialists:   map[string]float64{"internist": 1},
		CapabilityPoints: map[string]float64{
			CapabilityCTScan: 10,
			CapabilityMRI:    5,
		},
		EquipmentDeltas: []EquipmentDelta{
			{Key: EquipmentDialysis, PresentDelta: 10, AbsentDelta: -5},
		},
		BedCategories: []BedCategory{BedEmergency},
	},
	EmergencyAccident: {
		Type:          EmergencyAccident,
		AcceptanceKey: "accident",
		Specialists:   map[string]float64{"trauma_surgeon": 2, "radiologist": 1},
		CapabilityPoints: map[string]float64{
			CapabilityEmergencySurgery: 20,
			CapabilityCTScan:           15,
		},
		EquipmentDeltas: []EquipmentDelta{
			{Key: EquipmentPortableXRay, PresentDelta: 10, AbsentDelta: -10},
		},
		BedCategories: []BedCategory{BedTrauma, BedEmergency, BedICU},
		ICUCritical:   true,
		TraumaBonus:   traumaCenterBonus,
	},
	EmergencyFire: {
		Type:          EmergencyFire,
		AcceptanceKey: "fire",
		Specialists:   map[string]float64{"burn_specialist": 2, "pulmonologist": 1},
		CapabilityPoints: map[string]float64{
			CapabilityEmergencySurgery: 15,
		},
		EquipmentDeltas: []EquipmentDelta{
			{Key: EquipmentPortableXRay, PresentDelta: 5},
		},
		BedCategories: []BedCategory{BedICU, BedEmergency},
		ICUCritical:   true,
	},
	EmergencyInfectious: {
		Type:              EmergencyInfectious,
		AcceptanceKey:     "infectious",
		Specialists:       map[string]float64{"infectious_disease": 2},
		CapabilityPoints:  map[string]float64{CapabilityCTScan: 5},
		BedCategories:     []BedCategory{BedIsolation, BedEmergency},
		IsolationRequired: true,
	},
	EmergencyOther: {
		Type:             EmergencyOther,
		AcceptanceKey:    "other",
		Specialists:      map[string]float64{},
		CapabilityPoints: map[string]float64{CapabilityCTScan: 5},
		BedCategories:    []BedCategory{BedEmergency},
	},
}

// ProfileFor returns the profile for a type, falling back to "other" for
// anything unrecognized.
func ProfileFor(t EmergencyType) EmergencyProfile {
	if p, ok := EmergencyProfiles[t]; ok {
		return p
	}
	return EmergencyProfiles[EmergencyOther]
}
