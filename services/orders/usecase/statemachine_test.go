package usecase

import (
	"testing"

	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition_MainPath(t *testing.T) {
	path := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusAssigned,
		models.OrderStatusPickedUp,
		models.OrderStatusInTransit,
		models.OrderStatusDelivered,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]),
			"expected %s -> %s to be valid", path[i], path[i+1])
	}
}

func TestCanTransition_NoSkippingStages(t *testing.T) {
	assert.False(t, CanTransition(models.OrderStatusPending, models.OrderStatusPickedUp))
	assert.False(t, CanTransition(models.OrderStatusPending, models.OrderStatusDelivered))
	assert.False(t, CanTransition(models.OrderStatusAssigned, models.OrderStatusInTransit))
	assert.False(t, CanTransition(models.OrderStatusPickedUp, models.OrderStatusDelivered))
}

func TestCanTransition_NoMovingBackwards(t *testing.T) {
	assert.False(t, CanTransition(models.OrderStatusDelivered, models.OrderStatusInTransit))
	assert.False(t, CanTransition(models.OrderStatusInTransit, models.OrderStatusPickedUp))
	assert.False(t, CanTransition(models.OrderStatusPickedUp, models.OrderStatusAssigned))
}

func TestCanTransition_Unassignment(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusAssigned, models.OrderStatusPending))
}

func TestCanTransition_Cancellation(t *testing.T) {
	cancellable := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusAssigned,
		models.OrderStatusPickedUp,
		models.OrderStatusInTransit,
	}
	for _, from := range cancellable {
		assert.True(t, CanTransition(from, models.OrderStatusCancelled),
			"expected %s to be cancellable", from)
	}

	assert.False(t, CanTransition(models.OrderStatusDelivered, models.OrderStatusCancelled))
}

func TestCanTransition_ReturnsOnlyFromDelivered(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusDelivered, models.OrderStatusReturned))

	assert.False(t, CanTransition(models.OrderStatusInTransit, models.OrderStatusReturned))
	assert.False(t, CanTransition(models.OrderStatusCancelled, models.OrderStatusReturned))
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []models.OrderStatus{
		models.OrderStatusCancelled,
		models.OrderStatusReturned,
	} {
		assert.True(t, IsTerminal(terminal))
		assert.Empty(t, NextStatuses(terminal))
	}

	assert.False(t, IsTerminal(models.OrderStatusDelivered))
}

func TestRequiresReason(t *testing.T) {
	assert.True(t, requiresReason(models.OrderStatusCancelled))
	assert.True(t, requiresReason(models.OrderStatusReturned))
	assert.False(t, requiresReason(models.OrderStatusAssigned))
	assert.False(t, requiresReason(models.OrderStatusDelivered))
}
