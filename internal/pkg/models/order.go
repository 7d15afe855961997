package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a pharmacy order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

// PaymentMethod represents how the customer pays for an order
type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "cod"
	PaymentMethodCard PaymentMethod = "card"
)

// Order represents a pharmacy delivery order
type Order struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Status        OrderStatus   `json:"status" db:"status"`
	DriverID      *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	WarehouseID   uuid.UUID     `json:"warehouse_id" db:"warehouse_id"`
	TotalAmount   int64         `json:"total_amount" db:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	IsArchived    bool          `json:"is_archived" db:"is_archived"`
	Version       int64         `json:"version" db:"version"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	// StatusHistory is append-only and loaded on demand; it is never
	// rewritten once an entry has been committed.
	StatusHistory []StatusHistoryEntry `json:"status_history,omitempty"`
}

// StatusHistoryEntry represents one committed transition in an order's history
type StatusHistoryEntry struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	OrderID    uuid.UUID   `json:"order_id" db:"order_id"`
	FromStatus OrderStatus `json:"from_status" db:"from_status"`
	ToStatus   OrderStatus `json:"to_status" db:"to_status"`
	Actor      string      `json:"actor" db:"actor"`
	Note       string      `json:"note,omitempty" db:"note"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// ProofOfDelivery represents signature/photo evidence captured on completion
type ProofOfDelivery struct {
	OrderID      uuid.UUID `json:"order_id" db:"order_id"`
	SignatureRef string    `json:"signature_ref,omitempty" db:"signature_ref"`
	PhotoRef     string    `json:"photo_ref,omitempty" db:"photo_ref"`
	Note         string    `json:"note,omitempty" db:"note"`
	CapturedAt   time.Time `json:"captured_at" db:"captured_at"`
}

// TransitionRequest represents a status transition request from a dispatcher
// or a courier device. DriverID is required only when the target status is
// assigned.
type TransitionRequest struct {
	Target   OrderStatus `json:"target"`
	Actor    string      `json:"actor"`
	Note     string      `json:"note,omitempty"`
	DriverID *uuid.UUID  `json:"driver_id,omitempty"`
}

// TransitionResult is returned to the caller after a successful transition
type TransitionResult struct {
	OrderID      uuid.UUID          `json:"order_id"`
	NewStatus    OrderStatus        `json:"new_status"`
	HistoryEntry StatusHistoryEntry `json:"history_entry"`
}
