package gateway

import (
	"context"

	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	natspkg "github.com/kurirmed/dispatch/internal/pkg/nats"
	"github.com/kurirmed/dispatch/services/orders"
)

// OrderGW publishes order lifecycle events to NATS
type OrderGW struct {
	natsClient *natspkg.Client
}

// NewOrderGW creates a new order event gateway
func NewOrderGW(natsClient *natspkg.Client) orders.OrderGW {
	return &OrderGW{natsClient: natsClient}
}

// PublishStatusChanged publishes a committed status transition
func (g *OrderGW) PublishStatusChanged(ctx context.Context, event models.OrderStatusChangedEvent) error {
	return g.natsClient.Publish(constants.SubjectOrderStatusChanged, event)
}

// PublishPushNotification publishes a push trigger for the driver's device
func (g *OrderGW) PublishPushNotification(ctx context.Context, event models.PushNotificationEvent) error {
	return g.natsClient.Publish(constants.SubjectPushNotification, event)
}
