package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationSource tags where a resolved coordinate came from
type LocationSource string

const (
	LocationSourceLive     LocationSource = "live"
	LocationSourceFallback LocationSource = "fallback"
)

// LocationPing represents a position report from a driver device
type LocationPing struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	SpeedKPH  *float64  `json:"speed_kph,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
}

// ResolvedLocation represents the current believed location of a driver
type ResolvedLocation struct {
	DriverID  uuid.UUID      `json:"driver_id"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Source    LocationSource `json:"source"`
	Geohash   string         `json:"geohash,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
