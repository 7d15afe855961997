package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeCoordinate_RoundTrip(t *testing.T) {
	lat, lng := 29.3759, 47.9774

	hash := EncodeCoordinate(lat, lng)
	assert.Len(t, hash, int(GeohashPrecision))

	gotLat, gotLng := DecodeGeohash(hash)

	// Precision 7 cells are about 150m across, well under 0.01 degrees.
	assert.InDelta(t, lat, gotLat, 0.01)
	assert.InDelta(t, lng, gotLng, 0.01)
}

func TestEncodeCoordinate_NearbyPointsShareCell(t *testing.T) {
	hash1 := EncodeCoordinate(29.37590, 47.97740)
	hash2 := EncodeCoordinate(29.37591, 47.97741)

	assert.Equal(t, hash1, hash2)
}

func TestCalculateDistanceKm(t *testing.T) {
	// Same point
	assert.InDelta(t, 0.0, CalculateDistanceKm(29.3759, 47.9774, 29.3759, 47.9774), 0.001)

	// Roughly one degree of latitude is 111km
	d := CalculateDistanceKm(29.0, 47.0, 30.0, 47.0)
	assert.InDelta(t, 111.2, d, 1.0)
}
