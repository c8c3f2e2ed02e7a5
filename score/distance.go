package score

import (
	"fmt"
	"math"

	"github.com/lifeline-inc/dispatch-api/schema"
)

const (
	earthRadiusKm = 6371.0

	// maxScoredDistanceKm is where the distance score reaches zero.
	maxScoredDistanceKm = 50.0

	// unknownDistanceKm marks missing or invalid coordinates. A bogus
	// (0, 0) pair must not score as "right here".
	unknownDistanceKm = 999.0

	// etaKmPerMinute assumes a 40 km/h effective ground speed.
	etaMinutesPerKm = 1.5
)

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// DistanceKm computes the pickup-to-hospital distance, returning the
// unknown-distance sentinel for absent or invalid coordinates.
func DistanceKm(pickup, hospital schema.Location) float64 {
	if !validLocation(pickup) || !validLocation(hospital) {
		return unknownDistanceKm
	}
	return HaversineKm(pickup, hospital)
}

// DistanceScore maps distance onto [0, 100]: 100 at the pickup point,
// linearly down to 0 at 50 km and beyond.
func DistanceScore(km float64) (float64, []string) {
	score := clamp(100 - 2*km)

	reasons := []string{}
	if km >= unknownDistanceKm {
		reasons = append(reasons, "Location data unavailable")
	} else if km <= 10 {
		reasons = append(reasons, fmt.Sprintf("Close to incident (%.1f km)", km))
	}

	return score, reasons
}

// ETAMinutes estimates ground transport time. Unknown distances yield no
// estimate.
func ETAMinutes(km float64) int {
	if km >= unknownDistanceKm {
		return 0
	}
	return round(km * etaMinutesPerKm)
}

func validLocation(l schema.Location) bool {
	if l.Latitude == 0 && l.Longitude == 0 {
		return false
	}
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
