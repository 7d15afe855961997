package models

import "github.com/google/uuid"

// AssignmentPair represents one (order, driver) pair in an assignment request
type AssignmentPair struct {
	OrderID  uuid.UUID `json:"order_id"`
	DriverID uuid.UUID `json:"driver_id"`
}

// AssignmentBatchRequest represents a batch of independent assignment attempts
type AssignmentBatchRequest struct {
	Pairs []AssignmentPair `json:"pairs"`
}

// Assignment outcome codes surfaced per pair
const (
	AssignErrAlreadyAssigned   = "already_assigned"
	AssignErrInvalidTransition = "invalid_transition"
	AssignErrDriverUnavailable = "driver_unavailable"
	AssignErrOrderNotFound     = "order_not_found"
	AssignErrDriverNotFound    = "driver_not_found"
	AssignErrInternal          = "internal_error"
)

// AssignmentResult represents the outcome of a single assignment attempt.
// A batch yields one result per pair; pairs never roll each other back.
type AssignmentResult struct {
	OrderID  uuid.UUID   `json:"order_id"`
	DriverID uuid.UUID   `json:"driver_id"`
	Success  bool        `json:"success"`
	Status   OrderStatus `json:"status,omitempty"`
	Error    string      `json:"error,omitempty"`
}
