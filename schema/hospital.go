package schema

import (
	"time"
)

const (
	HospitalCollection  = "hospitals"
	TelemetryCollection = "hospitalTelemetry"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// ReadinessStatus is the self-reported intake posture of an emergency
// department.
type ReadinessStatus string

const (
	ReadinessAccepting ReadinessStatus = "accepting"
	ReadinessDiverting ReadinessStatus = "diverting"
	ReadinessFull      ReadinessStatus = "full"
)

// TraumaLevel is the verified trauma-center designation of a hospital.
type TraumaLevel string

const (
	TraumaNone   TraumaLevel = "none"
	TraumaLevel1 TraumaLevel = "level_1"
	TraumaLevel2 TraumaLevel = "level_2"
	TraumaLevel3 TraumaLevel = "level_3"
)

// EmergencyReadiness is the live intake state of a hospital.
type EmergencyReadiness struct {
	Status         ReadinessStatus `json:"status" bson:"status"`
	Diverting      bool            `json:"diverting" bson:"diverting"`
	AmbulanceQueue int             `json:"ambulance_queue" bson:"ambulance_queue"`
}

// BedCount is a total/available pair for one bed category.
type BedCount struct {
	Total     int `json:"total" bson:"total"`
	Available int `json:"available" bson:"available"`
}

// BedAvailability holds overall and per-category bed capacity.
type BedAvailability struct {
	Total     int      `json:"total" bson:"total"`
	Available int      `json:"available" bson:"available"`
	ICU       BedCount `json:"icu" bson:"icu"`
	Emergency BedCount `json:"emergency" bson:"emergency"`
	Trauma    BedCount `json:"trauma" bson:"trauma"`
	Isolation BedCount `json:"isolation" bson:"isolation"`
	Pediatric BedCount `json:"pediatric" bson:"pediatric"`
}

// Equipment holds critical equipment counts.
type Equipment struct {
	Ventilators    BedCount `json:"ventilators" bson:"ventilators"`
	Defibrillators int      `json:"defibrillators" bson:"defibrillators"`
	PortableXRay   bool     `json:"portable_xray" bson:"portable_xray"`
	Dialysis       bool     `json:"dialysis" bson:"dialysis"`
	CTScanner      bool     `json:"ct_scanner" bson:"ct_scanner"`
}

// ClinicalCapabilities flags the clinical programs a hospital runs.
type ClinicalCapabilities struct {
	StrokeCenter     bool `json:"stroke_center" bson:"stroke_center"`
	EmergencySurgery bool `json:"emergency_surgery" bson:"emergency_surgery"`
	CTScanAvailable  bool `json:"ct_scan_available" bson:"ct_scan_available"`
	MRIAvailable     bool `json:"mri_available" bson:"mri_available"`
}

// ServiceAvailability flags around-the-clock services.
type ServiceAvailability struct {
	Emergency24x7 bool `json:"emergency_24x7" bson:"emergency_24x7"`
	Surgery24x7   bool `json:"surgery_24x7" bson:"surgery_24x7"`
}

// Hospital is the normalized, fully-populated hospital record the scorers
// operate on. Every field is safe to read; the normalizer guarantees it.
type Hospital struct {
	ID                   string               `json:"id" bson:"_id"`
	Name                 string               `json:"name" bson:"name"`
	Location             Location             `json:"location" bson:"location"`
	CaseAcceptance       map[string]bool      `json:"case_acceptance" bson:"case_acceptance"`
	EmergencyReadiness   EmergencyReadiness   `json:"emergency_readiness" bson:"emergency_readiness"`
	BedAvailability      BedAvailability      `json:"bed_availability" bson:"bed_availability"`
	Specialists          map[string]int       `json:"specialists" bson:"specialists"`
	Equipment            Equipment            `json:"equipment" bson:"equipment"`
	ClinicalCapabilities ClinicalCapabilities `json:"clinical_capabilities" bson:"clinical_capabilities"`
	ServiceAvailability  ServiceAvailability  `json:"service_availability" bson:"service_availability"`
	TraumaLevel          TraumaLevel          `json:"trauma_level" bson:"trauma_level"`
	CapacityLastUpdated  *time.Time           `json:"capacity_last_updated,omitempty" bson:"capacity_last_updated,omitempty"`
}

// AcceptsType reports whether the hospital accepts cases keyed by the
// profile's acceptance flag.
func (h *Hospital) AcceptsType(acceptanceKey string) bool {
	return h.CaseAcceptance[acceptanceKey]
}

// Capability resolves a profile capability key against the hospital's
// clinical capability flags.
func (h *Hospital) Capability(key string) bool {
	switch key {
	case CapabilityStrokeCenter:
		return h.ClinicalCapabilities.StrokeCenter
	case CapabilityEmergencySurgery:
		return h.ClinicalCapabilities.EmergencySurgery
	case CapabilityCTScan:
		return h.ClinicalCapabilities.CTScanAvailable
	case CapabilityMRI:
		return h.ClinicalCapabilities.MRIAvailable
	}
	return false
}

// EquipmentPresent resolves a profile equipment key against the hospital's
// equipment record.
func (h *Hospital) EquipmentPresent(key string) bool {
	switch key {
	case EquipmentPortableXRay:
		return h.Equipment.PortableXRay
	case EquipmentDialysis:
		return h.Equipment.Dialysis
	case EquipmentCTScanner:
		return h.Equipment.CTScanner
	}
	return false
}

// BedsForCategory returns available beds in one category.
func (h *Hospital) BedsForCategory(cat BedCategory) int {
	switch cat {
	case BedICU:
		return h.BedAvailability.ICU.Available
	case BedEmergency:
		return h.BedAvailability.Emergency.Available
	case BedTrauma:
		return h.BedAvailability.Trauma.Available
	case BedIsolation:
		return h.BedAvailability.Isolation.Available
	case BedPediatric:
		return h.BedAvailability.Pediatric.Available
	case BedGeneral:
		return h.BedAvailability.Available
	}
	return 0
}

// SpecialistTotal is the raw on-duty specialist headcount, used as the
// final tie-break.
func (h *Hospital) SpecialistTotal() int {
	total := 0
	for _, n := range h.Specialists {
		total += n
	}
	return total
}

// RawHospital is the loosely-typed ingest form of a hospital record.
// Upstream feeds are inconsistent: counts arrive as bare numbers, as
// objects exposing available/count/total, or as numeric strings. The
// normalizer in the score package converts this into a Hospital.
type RawHospital struct {
	ID                   string                 `json:"id" bson:"_id"`
	Name                 string                 `json:"name" bson:"name"`
	Location             *Location              `json:"location,omitempty" bson:"location,omitempty"`
	CaseAcceptance       map[string]interface{} `json:"case_acceptance,omitempty" bson:"case_acceptance,omitempty"`
	EmergencyReadiness   map[string]interface{} `json:"emergency_readiness,omitempty" bson:"emergency_readiness,omitempty"`
	BedAvailability      map[string]interface{} `json:"bed_availability,omitempty" bson:"bed_availability,omitempty"`
	Specialists          map[string]interface{} `json:"specialists,omitempty" bson:"specialists,omitempty"`
	Equipment            map[string]interface{} `json:"equipment,omitempty" bson:"equipment,omitempty"`
	ClinicalCapabilities map[string]interface{} `json:"clinical_capabilities,omitempty" bson:"clinical_capabilities,omitempty"`
	ServiceAvailability  map[string]interface{} `json:"service_availability,omitempty" bson:"service_availability,omitempty"`
	TraumaLevel          string                 `json:"trauma_level,omitempty" bson:"trauma_level,omitempty"`
	CapacityLastUpdated  *time.Time             `json:"capacity_last_updated,omitempty" bson:"capacity_last_updated,omitempty"`
}

// HospitalTelemetry is the live operational overlay published by hospital
// capacity feeds. Only set fields supersede the normalized record, so a
// partial telemetry update never clobbers profile data.
type HospitalTelemetry struct {
	HospitalID string              `json:"hospital_id" bson:"_id"`
	Readiness  *ReadinessTelemetry `json:"readiness,omitempty" bson:"readiness,omitempty"`
	Beds       *BedTelemetry       `json:"beds,omitempty" bson:"beds,omitempty"`
	Equipment  *EquipmentTelemetry `json:"equipment,omitempty" bson:"equipment,omitempty"`
	UpdatedAt  time.Time           `json:"updated_at" bson:"updated_at"`
}

// ReadinessTelemetry overrides the intake posture.
type ReadinessTelemetry struct {
	Status         *ReadinessStatus `json:"status,omitempty" bson:"status,omitempty"`
	Diverting      *bool            `json:"diverting,omitempty" bson:"diverting,omitempty"`
	AmbulanceQueue *int             `json:"ambulance_queue,omitempty" bson:"ambulance_queue,omitempty"`
}

// BedTelemetry overrides available bed counts.
type BedTelemetry struct {
	Available          *int `json:"available,omitempty" bson:"available,omitempty"`
	ICUAvailable       *int `json:"icu_available,omitempty" bson:"icu_available,omitempty"`
	EmergencyAvailable *int `json:"emergency_available,omitempty" bson:"emergency_available,omitempty"`
	TraumaAvailable    *int `json:"trauma_available,omitempty" bson:"trauma_available,omitempty"`
	IsolationAvailable *int `json:"isolation_available,omitempty" bson:"isolation_available,omitempty"`
	PediatricAvailable *int `json:"pediatric_available,omitempty" bson:"pediatric_available,omitempty"`
}

// EquipmentTelemetry overrides live equipment availability.
type EquipmentTelemetry struct {
	VentilatorsAvailable *int `json:"ventilators_available,omitempty" bson:"ventilators_available,omitempty"`
	Defibrillators       *int `json:"defibrillators,omitempty" bson:"defibrillators,omitempty"`
}
