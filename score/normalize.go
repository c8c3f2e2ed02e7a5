package score

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lifeline-inc/dispatch-api/schema"
	"github.com/lifeline-inc/dispatch-api/utils"
)

// NormalizeHospital converts a loosely-typed ingest record into a fully
// populated hospital. Every downstream read is safe afterwards: counts
// default to 0, acceptance flags to false, readiness to "accepting".
func NormalizeHospital(raw schema.RawHospital) schema.Hospital {
	h := schema.Hospital{
		ID:             raw.ID,
		Name:           raw.Name,
		CaseAcceptance: map[string]bool{},
		Specialists:    map[string]int{},
		EmergencyReadiness: schema.EmergencyReadiness{
			Status: schema.ReadinessAccepting,
		},
		TraumaLevel:         schema.TraumaNone,
		CapacityLastUpdated: raw.CapacityLastUpdated,
	}

	if raw.Location != nil {
		h.Location = *raw.Location
	}

	for k, v := range raw.CaseAcceptance {
		h.CaseAcceptance[k] = utils.CoerceBool(v, false)
	}

	if r := raw.EmergencyReadiness; r != nil {
		switch schema.ReadinessStatus(str(r["status"])) {
		case schema.ReadinessDiverting:
			h.EmergencyReadiness.Status = schema.ReadinessDiverting
		case schema.ReadinessFull:
			h.EmergencyReadiness.Status = schema.ReadinessFull
		}
		h.EmergencyReadiness.Diverting = utils.CoerceBool(r["diverting"], false) ||
			h.EmergencyReadiness.Status == schema.ReadinessDiverting
		h.EmergencyReadiness.AmbulanceQueue = count(r["ambulance_queue"])
	}

	if b := raw.BedAvailability; b != nil {
		h.BedAvailability.Total = count(b["total"])
		h.BedAvailability.Available = count(b["available"])
		h.BedAvailability.ICU = bedCount(b["icu"])
		h.BedAvailability.Emergency = bedCount(b["emergency"])
		h.BedAvailability.Trauma = bedCount(b["trauma_beds"])
		if _, ok := b["trauma_beds"]; !ok {
			h.BedAvailability.Trauma = bedCount(b["trauma"])
		}
		h.BedAvailability.Isolation = bedCount(b["isolation_beds"])
		if _, ok := b["isolation_beds"]; !ok {
			h.BedAvailability.Isolation = bedCount(b["isolation"])
		}
		h.BedAvailability.Pediatric = bedCount(b["pediatric_beds"])
		if _, ok := b["pediatric_beds"]; !ok {
			h.BedAvailability.Pediatric = bedCount(b["pediatric"])
		}
	}

	for k, v := range raw.Specialists {
		h.Specialists[k] = count(v)
	}

	if e := raw.Equipment; e != nil {
		h.Equipment.Ventilators = bedCount(e["ventilators"])
		h.Equipment.Defibrillators = count(e["defibrillators"])
		h.Equipment.PortableXRay = utils.CoerceBool(e["portable_xray"], false)
		h.Equipment.Dialysis = utils.CoerceBool(e["dialysis"], false)
		h.Equipment.CTScanner = utils.CoerceBool(e["ct_scanner"], false)
	}

	if c := raw.ClinicalCapabilities; c != nil {
		h.ClinicalCapabilities.StrokeCenter = utils.CoerceBool(c["stroke_center"], false)
		h.ClinicalCapabilities.EmergencySurgery = utils.CoerceBool(c["emergency_surgery"], false)
		h.ClinicalCapabilities.CTScanAvailable = utils.CoerceBool(c["ct_scan_available"], false)
		h.ClinicalCapabilities.MRIAvailable = utils.CoerceBool(c["mri_available"], false)
	}

	if s := raw.ServiceAvailability; s != nil {
		h.ServiceAvailability.Emergency24x7 = utils.CoerceBool(s["emergency_24x7"], false)
		h.ServiceAvailability.Surgery24x7 = utils.CoerceBool(s["surgery_24x7"], false)
	}

	switch schema.TraumaLevel(raw.TraumaLevel) {
	case schema.TraumaLevel1:
		h.TraumaLevel = schema.TraumaLevel1
	case schema.TraumaLevel2:
		h.TraumaLevel = schema.TraumaLevel2
	case schema.TraumaLevel3:
		h.TraumaLevel = schema.TraumaLevel3
	}

	return h
}

// ApplyTelemetry overlays live operational telemetry onto a normalized
// record field-by-field. Unset telemetry fields leave the profile values
// untouched; a telemetry update also refreshes the capacity timestamp.
func ApplyTelemetry(h schema.Hospital, t *schema.HospitalTelemetry) schema.Hospital {
	if t == nil {
		return h
	}

	if r := t.Readiness; r != nil {
		if r.Status != nil {
			h.EmergencyReadiness.Status = *r.Status
		}
		if r.Diverting != nil {
			h.EmergencyReadiness.Diverting = *r.Diverting
		}
		if r.AmbulanceQueue != nil {
			h.EmergencyReadiness.AmbulanceQueue = nonNegative(*r.AmbulanceQueue)
		}
	}

	if b := t.Beds; b != nil {
		if b.Available != nil {
			h.BedAvailability.Available = nonNegative(*b.Available)
		}
		if b.ICUAvailable != nil {
			h.BedAvailability.ICU.Available = nonNegative(*b.ICUAvailable)
		}
		if b.EmergencyAvailable != nil {
			h.BedAvailability.Emergency.Available = nonNegative(*b.EmergencyAvailable)
		}
		if b.TraumaAvailable != nil {
			h.BedAvailability.Trauma.Available = nonNegative(*b.TraumaAvailable)
		}
		if b.IsolationAvailable != nil {
			h.BedAvailability.Isolation.Available = nonNegative(*b.IsolationAvailable)
		}
		if b.PediatricAvailable != nil {
			h.BedAvailability.Pediatric.Available = nonNegative(*b.PediatricAvailable)
		}
	}

	if e := t.Equipment; e != nil {
		if e.VentilatorsAvailable != nil {
			h.Equipment.Ventilators.Available = nonNegative(*e.VentilatorsAvailable)
		}
		if e.Defibrillators != nil {
			h.Equipment.Defibrillators = nonNegative(*e.Defibrillators)
		}
	}

	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		h.CapacityLastUpdated = &updated
	}

	return h
}

// NormalizeHospitals normalizes a batch and overlays telemetry keyed by
// hospital id.
func NormalizeHospitals(raws []schema.RawHospital, telemetry map[string]schema.HospitalTelemetry) []schema.Hospital {
	hospitals := make([]schema.Hospital, 0, len(raws))
	for _, raw := range raws {
		h := NormalizeHospital(raw)
		if t, ok := telemetry[h.ID]; ok {
			h = ApplyTelemetry(h, &t)
		}
		hospitals = append(hospitals, h)
	}
	return hospitals
}

func count(v interface{}) int {
	return int(utils.CoerceCount(v, 0))
}

func bedCount(v interface{}) schema.BedCount {
	c := schema.BedCount{}
	if m, ok := asMap(v); ok {
		c.Total = count(m["total"])
		c.Available = int(utils.CoerceCount(m, 0))
		return c
	}
	c.Available = count(v)
	c.Total = c.Available
	return c
}

// asMap unifies the map shapes the mongo driver and JSON decoding produce.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case bson.M:
		return m, true
	case bson.D:
		out := map[string]interface{}{}
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
