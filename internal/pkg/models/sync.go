package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActionType represents the kind of state-changing action a courier device
// can record while offline
type ActionType string

const (
	ActionTypeStatusTransition ActionType = "status_transition"
	ActionTypePODSubmission    ActionType = "pod_submission"
	ActionTypePaymentUpdate    ActionType = "payment_method_update"
)

// ActionOutcome represents the server's verdict on a replayed action
type ActionOutcome string

const (
	ActionOutcomeApplied        ActionOutcome = "applied"
	ActionOutcomeAlreadyApplied ActionOutcome = "already-applied"
	ActionOutcomeRejected       ActionOutcome = "rejected"
)

// Rejection reasons recorded with a rejected outcome
const (
	RejectReasonStaleAction    = "stale_action"
	RejectReasonInvalidPayload = "invalid_payload"
	RejectReasonOrderNotFound  = "order_not_found"
	RejectReasonDriverNotFound = "driver_not_found"
)

// QueuedAction represents one offline action recorded on a courier device.
// ClientActionID is the idempotency key: retries reuse it, the server applies
// it at most once. A queued action is never mutated in place.
type QueuedAction struct {
	ClientActionID uuid.UUID       `json:"client_action_id" db:"client_action_id"`
	Type           ActionType      `json:"type" db:"action_type"`
	OrderID        uuid.UUID       `json:"order_id" db:"order_id"`
	Actor          string          `json:"actor" db:"actor"`
	Payload        json.RawMessage `json:"payload" db:"payload"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// ActionResult represents the server response for a replayed action
type ActionResult struct {
	ClientActionID uuid.UUID     `json:"client_action_id" db:"client_action_id"`
	Outcome        ActionOutcome `json:"outcome" db:"outcome"`
	Reason         string        `json:"reason,omitempty" db:"reason"`
}

// TransitionPayload is the payload for a status_transition action
type TransitionPayload struct {
	Target OrderStatus `json:"target"`
	Note   string      `json:"note,omitempty"`
}

// PODPayload is the payload for a pod_submission action
type PODPayload struct {
	SignatureRef string `json:"signature_ref,omitempty"`
	PhotoRef     string `json:"photo_ref,omitempty"`
	Note         string `json:"note,omitempty"`
}

// PaymentUpdatePayload is the payload for a payment_method_update action
type PaymentUpdatePayload struct {
	Method PaymentMethod `json:"method"`
}
