package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusChangedEvent is published on every committed status transition
type OrderStatusChangedEvent struct {
	OrderID   uuid.UUID   `json:"order_id"`
	Status    OrderStatus `json:"status"`
	DriverID  *uuid.UUID  `json:"driver_id,omitempty"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
}

// DriverLocationChangedEvent is published when a driver's believed location changes
type DriverLocationChangedEvent struct {
	DriverID  uuid.UUID      `json:"driver_id"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Source    LocationSource `json:"source"`
	Geohash   string         `json:"geohash,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Push notification kinds; content formatting and the delivery channel are
// external collaborators, the engine only emits the trigger.
const (
	PushKindOrderAssigned = "order_assigned"
	PushKindStatusChanged = "status_changed"
)

// PushNotificationEvent triggers an external push to a driver device
type PushNotificationEvent struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	OrderID     uuid.UUID `json:"order_id"`
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
}
