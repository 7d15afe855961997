// Package dispatch owns assignment coordination: pairing pending orders with
// available drivers, batch assignment where each pair succeeds or fails on
// its own, and driver availability management.
package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kurirmed/dispatch/services/dispatch DispatchUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kurirmed/dispatch/services/dispatch DriverRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kurirmed/dispatch/services/dispatch DispatchGW

// DispatchUC represents the assignment coordination use case interface
type DispatchUC interface {
	// Assign attempts to pair one order with one driver. The outcome is
	// always encoded in the result; contention surfaces as the
	// already_assigned code on the losing attempt.
	Assign(ctx context.Context, pair models.AssignmentPair, actor string) *models.AssignmentResult

	// AssignBatch runs each pair independently: one failed pair never rolls
	// back or blocks the others. Results keep the request order.
	AssignBatch(ctx context.Context, req models.AssignmentBatchRequest, actor string) []models.AssignmentResult

	Unassign(ctx context.Context, orderID uuid.UUID, actor, note string) error
	SetDriverAvailability(ctx context.Context, driverID uuid.UUID, available bool) error
}

// DriverRepo represents the driver persistence interface
type DriverRepo interface {
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) error
}

// DispatchGW represents the dispatch event gateway interface
type DispatchGW interface {
	PublishOrderAssigned(ctx context.Context, result models.AssignmentResult) error
}
