package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeline-inc/dispatch-api/schema"
)

func TestHaversineKm(t *testing.T) {
	// one degree of latitude is about 111.2 km
	a := schema.Location{Latitude: 13.0, Longitude: 77.6}
	b := schema.Location{Latitude: 14.0, Longitude: 77.6}
	assert.InDelta(t, 111.2, HaversineKm(a, b), 0.5)

	assert.Equal(t, 0.0, HaversineKm(a, a))
}

func TestDistanceKmUnknownLocations(t *testing.T) {
	valid := schema.Location{Latitude: 13.0, Longitude: 77.6}

	assert.Equal(t, 999.0, DistanceKm(schema.Location{}, valid))
	assert.Equal(t, 999.0, DistanceKm(valid, schema.Location{}))
	assert.Equal(t, 999.0, DistanceKm(valid, schema.Location{Latitude: 91, Longitude: 0.1}))
}

func TestDistanceScore(t *testing.T) {
	score, reasons := DistanceScore(10)
	assert.Equal(t, 80.0, score)
	assert.Contains(t, reasons, "Close to incident (10.0 km)")

	score, _ = DistanceScore(25)
	assert.Equal(t, 50.0, score)

	score, _ = DistanceScore(60)
	assert.Equal(t, 0.0, score)

	score, reasons = DistanceScore(999)
	assert.Equal(t, 0.0, score)
	assert.Contains(t, reasons, "Location data unavailable")
}

func TestETAMinutes(t *testing.T) {
	assert.Equal(t, 15, ETAMinutes(10))
	assert.Equal(t, 8, ETAMinutes(5.2))
	assert.Equal(t, 0, ETAMinutes(999))
}
