package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/dispatch"
	"github.com/kurirmed/dispatch/services/orders"
)

type dispatchUC struct {
	cfg        *models.Config
	orderUC    orders.OrderUC
	driverRepo dispatch.DriverRepo
	dispatchGW dispatch.DispatchGW
}

// NewDispatchUC creates a new assignment coordination use case. Assignment is
// expressed as an order transition so the same per-order version guard that
// serializes status changes also serializes competing dispatchers.
func NewDispatchUC(cfg *models.Config, orderUC orders.OrderUC, driverRepo dispatch.DriverRepo, dispatchGW dispatch.DispatchGW) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:        cfg,
		orderUC:    orderUC,
		driverRepo: driverRepo,
		dispatchGW: dispatchGW,
	}
}

// Assign pairs one order with one driver
func (uc *dispatchUC) Assign(ctx context.Context, pair models.AssignmentPair, actor string) *models.AssignmentResult {
	result := &models.AssignmentResult{
		OrderID:  pair.OrderID,
		DriverID: pair.DriverID,
	}

	_, err := uc.orderUC.Transition(ctx, pair.OrderID, models.TransitionRequest{
		Target:   models.OrderStatusAssigned,
		Actor:    actor,
		DriverID: &pair.DriverID,
	})
	if err != nil {
		result.Error = classifyAssignError(err)
		logger.Info("Assignment attempt failed",
			logger.String("order_id", pair.OrderID.String()),
			logger.String("driver_id", pair.DriverID.String()),
			logger.String("code", result.Error),
			logger.Err(err))
		return result
	}

	result.Success = true
	result.Status = models.OrderStatusAssigned

	if err := uc.dispatchGW.PublishOrderAssigned(ctx, *result); err != nil {
		logger.Warn("Failed to publish order assigned event",
			logger.String("order_id", pair.OrderID.String()),
			logger.Err(err))
	}
	return result
}

// AssignBatch runs every pair through Assign, in request order
func (uc *dispatchUC) AssignBatch(ctx context.Context, req models.AssignmentBatchRequest, actor string) []models.AssignmentResult {
	results := make([]models.AssignmentResult, 0, len(req.Pairs))
	for _, pair := range req.Pairs {
		results = append(results, *uc.Assign(ctx, pair, actor))
	}
	return results
}

// Unassign releases an assigned order back to the pending pool
func (uc *dispatchUC) Unassign(ctx context.Context, orderID uuid.UUID, actor, note string) error {
	_, err := uc.orderUC.Transition(ctx, orderID, models.TransitionRequest{
		Target: models.OrderStatusPending,
		Actor:  actor,
		Note:   note,
	})
	return err
}

// SetDriverAvailability toggles whether a driver can receive new assignments.
// Orders the driver already holds are untouched.
func (uc *dispatchUC) SetDriverAvailability(ctx context.Context, driverID uuid.UUID, available bool) error {
	if _, err := uc.driverRepo.GetDriver(ctx, driverID); err != nil {
		return err
	}
	if err := uc.driverRepo.SetAvailability(ctx, driverID, available); err != nil {
		return err
	}

	logger.Info("Driver availability changed",
		logger.String("driver_id", driverID.String()),
		logger.Bool("available", available))
	return nil
}

// classifyAssignError maps transition errors onto per-pair outcome codes
func classifyAssignError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyAssigned):
		return models.AssignErrAlreadyAssigned
	case apperrors.IsInvalidTransition(err), errors.Is(err, apperrors.ErrAlreadyInState):
		return models.AssignErrInvalidTransition
	case errors.Is(err, apperrors.ErrDriverUnavailable):
		return models.AssignErrDriverUnavailable
	case errors.Is(err, apperrors.ErrOrderNotFound):
		return models.AssignErrOrderNotFound
	case errors.Is(err, apperrors.ErrDriverNotFound):
		return models.AssignErrDriverNotFound
	default:
		return models.AssignErrInternal
	}
}
