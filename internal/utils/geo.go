package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the cell size used for driver location indexing;
// precision 7 is roughly a 150m x 150m cell.
const GeohashPrecision uint = 7

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a coordinate
func DecodeGeohash(hash string) (lat, lng float64) {
	return geohash.Decode(hash)
}

// CalculateDistanceKm returns the Haversine distance between two coordinates
// in kilometers
func CalculateDistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371.0

	rLat1 := lat1 * math.Pi / 180.0
	rLng1 := lng1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLng2 := lng2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLng := rLng2 - rLng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
