package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/orders"
)

type orderUC struct {
	cfg       *models.Config
	orderRepo orders.OrderRepo
	orderGW   orders.OrderGW
}

// NewOrderUC creates a new order lifecycle use case
func NewOrderUC(cfg *models.Config, orderRepo orders.OrderRepo, orderGW orders.OrderGW) orders.OrderUC {
	return &orderUC{
		cfg:       cfg,
		orderRepo: orderRepo,
		orderGW:   orderGW,
	}
}

// Transition validates the requested edge against the lifecycle graph and
// commits it with a bounded compare-and-set retry loop. Each retry re-reads
// and re-validates, so a transition only ever commits against a state it was
// validated for. Unrelated orders never contend: the CAS is scoped per order.
func (uc *orderUC) Transition(ctx context.Context, orderID uuid.UUID, req models.TransitionRequest) (*models.TransitionResult, error) {
	maxRetries := uc.cfg.Dispatch.MaxCASRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		order, err := uc.orderRepo.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		uc.checkIntegrity(order)

		result, err := uc.tryTransition(ctx, order, req)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, apperrors.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}

	// Retries exhausted without the order ever leaving a valid state for
	// this edge; surface the contention instead of guessing.
	return nil, fmt.Errorf("transition contention on order %s: %w", orderID, lastErr)
}

func (uc *orderUC) tryTransition(ctx context.Context, order *models.Order, req models.TransitionRequest) (*models.TransitionResult, error) {
	if req.Target == models.OrderStatusAssigned && order.Status == models.OrderStatusAssigned {
		return nil, apperrors.ErrAlreadyAssigned
	}

	if order.Status == req.Target {
		return nil, apperrors.ErrAlreadyInState
	}

	if !CanTransition(order.Status, req.Target) {
		return nil, apperrors.NewInvalidTransition(order.Status, req.Target)
	}

	if requiresReason(req.Target) && req.Note == "" {
		return nil, apperrors.ErrReasonRequired
	}

	driverID, err := uc.resolveDriverRef(ctx, order, req)
	if err != nil {
		return nil, err
	}

	entry := &models.StatusHistoryEntry{
		ID:         uuid.New(),
		OrderID:    order.ID,
		FromStatus: order.Status,
		ToStatus:   req.Target,
		Actor:      req.Actor,
		Note:       req.Note,
		CreatedAt:  time.Now(),
	}

	if err := uc.orderRepo.UpdateStatusCAS(ctx, order.ID, order.Version, req.Target, driverID, entry); err != nil {
		return nil, err
	}

	uc.publishTransition(ctx, order.ID, req.Target, driverID, req.Actor, entry.CreatedAt)

	return &models.TransitionResult{
		OrderID:      order.ID,
		NewStatus:    req.Target,
		HistoryEntry: *entry,
	}, nil
}

// resolveDriverRef determines the driver reference after the transition:
// assignment sets it (and requires an available driver), unassignment back
// to pending clears it, every other edge carries it over.
func (uc *orderUC) resolveDriverRef(ctx context.Context, order *models.Order, req models.TransitionRequest) (*uuid.UUID, error) {
	switch req.Target {
	case models.OrderStatusAssigned:
		if req.DriverID == nil {
			return nil, fmt.Errorf("driver id is required for assignment: %w", apperrors.ErrDriverNotFound)
		}
		driver, err := uc.orderRepo.GetDriver(ctx, *req.DriverID)
		if err != nil {
			return nil, err
		}
		if !driver.IsAvailable {
			return nil, apperrors.ErrDriverUnavailable
		}
		return req.DriverID, nil
	case models.OrderStatusPending:
		return nil, nil
	default:
		return order.DriverID, nil
	}
}

func (uc *orderUC) publishTransition(ctx context.Context, orderID uuid.UUID, status models.OrderStatus, driverID *uuid.UUID, actor string, at time.Time) {
	event := models.OrderStatusChangedEvent{
		OrderID:   orderID,
		Status:    status,
		DriverID:  driverID,
		Actor:     actor,
		Timestamp: at,
	}
	if err := uc.orderGW.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish status changed event",
			logger.String("order_id", orderID.String()),
			logger.Err(err))
	}

	if driverID == nil {
		return
	}
	push := models.PushNotificationEvent{
		RecipientID: *driverID,
		OrderID:     orderID,
		Kind:        models.PushKindStatusChanged,
		Timestamp:   at,
	}
	if status == models.OrderStatusAssigned {
		push.Kind = models.PushKindOrderAssigned
	}
	if err := uc.orderGW.PublishPushNotification(ctx, push); err != nil {
		logger.Warn("Failed to publish push notification event",
			logger.String("order_id", orderID.String()),
			logger.Err(err))
	}
}

// checkIntegrity logs data-integrity faults; they are never auto-repaired
func (uc *orderUC) checkIntegrity(order *models.Order) {
	if order.DriverID != nil && order.Status == models.OrderStatusPending {
		logger.Error("Data integrity fault: pending order holds a driver reference",
			logger.String("order_id", order.ID.String()),
			logger.String("driver_id", order.DriverID.String()))
	}
}

// GetOrder returns the order with its full status history
func (uc *orderUC) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	uc.checkIntegrity(order)

	history, err := uc.orderRepo.GetHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.StatusHistory = history
	return order, nil
}

// ListActiveByDriver returns the orders a driver is currently responsible for
func (uc *orderUC) ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Order, error) {
	return uc.orderRepo.ListActiveByDriver(ctx, driverID)
}

// SubmitProofOfDelivery stores POD evidence for a delivered order
func (uc *orderUC) SubmitProofOfDelivery(ctx context.Context, orderID uuid.UUID, payload models.PODPayload, actor string) error {
	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != models.OrderStatusDelivered && order.Status != models.OrderStatusInTransit {
		return apperrors.ErrStaleAction
	}

	pod := &models.ProofOfDelivery{
		OrderID:      orderID,
		SignatureRef: payload.SignatureRef,
		PhotoRef:     payload.PhotoRef,
		Note:         payload.Note,
		CapturedAt:   time.Now(),
	}
	if err := uc.orderRepo.SaveProofOfDelivery(ctx, pod); err != nil {
		return err
	}

	logger.Info("Proof of delivery stored",
		logger.String("order_id", orderID.String()),
		logger.String("actor", actor))
	return nil
}

// UpdatePaymentMethod changes how the order is paid; terminal orders other
// than delivered no longer accept payment changes
func (uc *orderUC) UpdatePaymentMethod(ctx context.Context, orderID uuid.UUID, method models.PaymentMethod, actor string) error {
	if method != models.PaymentMethodCOD && method != models.PaymentMethodCard {
		return fmt.Errorf("unknown payment method %q", method)
	}

	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status == models.OrderStatusCancelled || order.Status == models.OrderStatusReturned {
		return apperrors.ErrStaleAction
	}

	if err := uc.orderRepo.UpdatePaymentMethod(ctx, orderID, method); err != nil {
		return err
	}

	logger.Info("Payment method updated",
		logger.String("order_id", orderID.String()),
		logger.String("method", string(method)),
		logger.String("actor", actor))
	return nil
}
