// Package orders owns the order lifecycle: the transition graph, the
// versioned compare-and-set that commits a status change together with its
// history entry, and the events emitted on every committed transition.
package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kurirmed/dispatch/services/orders OrderUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kurirmed/dispatch/services/orders OrderRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kurirmed/dispatch/services/orders OrderGW

// OrderUC represents the order lifecycle use case interface
type OrderUC interface {
	// Transition moves an order along the lifecycle graph. It fails with an
	// InvalidTransitionError when the target is not a direct successor of
	// the order's current status.
	Transition(ctx context.Context, orderID uuid.UUID, req models.TransitionRequest) (*models.TransitionResult, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Order, error)

	SubmitProofOfDelivery(ctx context.Context, orderID uuid.UUID, payload models.PODPayload, actor string) error
	UpdatePaymentMethod(ctx context.Context, orderID uuid.UUID, method models.PaymentMethod, actor string) error
}

// OrderRepo represents the order persistence interface
type OrderRepo interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	GetHistory(ctx context.Context, orderID uuid.UUID) ([]models.StatusHistoryEntry, error)
	ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Order, error)

	// UpdateStatusCAS commits a transition with optimistic concurrency: the
	// status write, driver reference change and history append happen in one
	// transaction guarded by the expected version. A lost race returns
	// apperrors.ErrVersionConflict.
	UpdateStatusCAS(ctx context.Context, orderID uuid.UUID, expectedVersion int64, target models.OrderStatus, driverID *uuid.UUID, entry *models.StatusHistoryEntry) error

	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)

	SaveProofOfDelivery(ctx context.Context, pod *models.ProofOfDelivery) error
	UpdatePaymentMethod(ctx context.Context, orderID uuid.UUID, method models.PaymentMethod) error
}

// OrderGW represents the order event gateway interface
type OrderGW interface {
	PublishStatusChanged(ctx context.Context, event models.OrderStatusChangedEvent) error
	PublishPushNotification(ctx context.Context, event models.PushNotificationEvent) error
}
