package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Seville city center.
const (
	sevLat = 37.3886
	sevLng = -5.9823
)

func TestDistanceKmIdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(sevLat, sevLng, sevLat, sevLng))
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(sevLat, sevLng, 37.39140, -5.99650)
	b := DistanceKm(37.39140, -5.99650, sevLat, sevLng)
	assert.Equal(t, a, b)
}

func TestDistanceKmOneKilometerOffset(t *testing.T) {
	// One degree of latitude spans pi*R/180 km, so this offset is 1 km due north.
	offset := 1.0 / (EarthRadiusKm * 3.141592653589793 / 180)
	d := DistanceKm(sevLat, sevLng, sevLat+offset, sevLng)
	assert.InDelta(t, 1.0, d, 1e-6)
}

func TestDistanceKmKnownPair(t *testing.T) {
	// Eslava to La Brunilda, a few hundred meters apart in Seville.
	d := DistanceKm(37.38756, -5.99982, 37.38690, -5.99300)
	assert.Greater(t, d, 0.5)
	assert.Less(t, d, 0.7)
}
