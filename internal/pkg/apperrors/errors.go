// Package apperrors defines the typed errors surfaced by the dispatch
// coordination engine. Validation errors are always returned to the caller
// with the violated rule; contention errors may be retried internally a
// bounded number of times before surfacing.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/kurirmed/dispatch/internal/pkg/models"
)

var (
	// ErrAlreadyAssigned is returned to the loser of an assignment race.
	ErrAlreadyAssigned = errors.New("order already assigned")

	// ErrDriverUnavailable is returned when assignment targets a driver
	// with is_available = false.
	ErrDriverUnavailable = errors.New("driver is not available")

	// ErrStaleAction is returned when a replayed offline action targets an
	// order whose state no longer permits it.
	ErrStaleAction = errors.New("action is stale against current order state")

	// ErrAlreadyInState is returned when a transition targets the order's
	// current status; idempotent replays treat it as applied.
	ErrAlreadyInState = errors.New("order already in target status")

	// ErrVersionConflict signals a lost compare-and-set; internal only,
	// callers see it after retry exhaustion as one of the errors above.
	ErrVersionConflict = errors.New("order version conflict")

	// ErrReasonRequired is returned when cancelling or returning without a note.
	ErrReasonRequired = errors.New("a reason note is required for this transition")

	ErrOrderNotFound  = errors.New("order not found")
	ErrDriverNotFound = errors.New("driver not found")

	// ErrInvalidCoordinate is returned for pings outside valid ranges or at (0,0).
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrNoLocation is returned when neither a live ping nor a warehouse
	// fallback exists for a driver.
	ErrNoLocation = errors.New("no known location for driver")
)

// InvalidTransitionError names the attempted edge that the lifecycle graph
// does not permit.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// NewInvalidTransition creates an InvalidTransitionError for the given edge
func NewInvalidTransition(from, to models.OrderStatus) error {
	return &InvalidTransitionError{From: from, To: to}
}

// IsInvalidTransition reports whether err is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// IsValidation reports whether err is a validation error that must surface
// to the caller rather than be retried.
func IsValidation(err error) bool {
	return IsInvalidTransition(err) ||
		errors.Is(err, ErrDriverUnavailable) ||
		errors.Is(err, ErrStaleAction) ||
		errors.Is(err, ErrReasonRequired) ||
		errors.Is(err, ErrInvalidCoordinate)
}
