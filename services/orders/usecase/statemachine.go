package usecase

import "github.com/kurirmed/dispatch/internal/pkg/models"

// transitions is the order lifecycle graph. The main path runs
// pending -> assigned -> picked_up -> in_transit -> delivered; cancellation
// branches off every pre-delivery state, returns branch off delivered only.
// The assigned -> pending edge is unassignment.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending: {
		models.OrderStatusAssigned,
		models.OrderStatusCancelled,
	},
	models.OrderStatusAssigned: {
		models.OrderStatusPickedUp,
		models.OrderStatusPending,
		models.OrderStatusCancelled,
	},
	models.OrderStatusPickedUp: {
		models.OrderStatusInTransit,
		models.OrderStatusCancelled,
	},
	models.OrderStatusInTransit: {
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	},
	models.OrderStatusDelivered: {
		models.OrderStatusReturned,
	},
	// cancelled and returned are terminal
	models.OrderStatusCancelled: {},
	models.OrderStatusReturned:  {},
}

// CanTransition reports whether target is a direct successor of from
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the direct successors of a status
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	next := transitions[from]
	out := make([]models.OrderStatus, len(next))
	copy(out, next)
	return out
}

// requiresReason reports whether the target status needs a reason note
func requiresReason(to models.OrderStatus) bool {
	return to == models.OrderStatusCancelled || to == models.OrderStatusReturned
}

// IsTerminal reports whether no further transitions exist from the status
func IsTerminal(status models.OrderStatus) bool {
	return len(transitions[status]) == 0
}
