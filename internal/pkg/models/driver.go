package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a delivery driver
type Driver struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"fullname" db:"fullname"`
	MSISDN       string    `json:"msisdn" db:"msisdn"`
	VehiclePlate string    `json:"vehicle_plate" db:"vehicle_plate"`
	IsAvailable  bool      `json:"is_available" db:"is_available"`
	WarehouseID  uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Warehouse represents a pharmacy warehouse, the driver's home base and the
// location fallback when no live ping exists
type Warehouse struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
}
