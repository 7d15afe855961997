// Package nats bridges the coordination engine's NATS subjects onto the
// dashboard fan-out hub. One subscription per subject keeps per-entity event
// order intact: NATS delivers a subscription's messages sequentially, so
// events enter the hub in the order they were published.
package nats

import (
	"encoding/json"
	"fmt"

	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	natspkg "github.com/kurirmed/dispatch/internal/pkg/nats"
	ws "github.com/kurirmed/dispatch/internal/pkg/websocket"
	"github.com/nats-io/nats.go"
)

// Handler consumes engine events and republishes them to dashboard observers
type Handler struct {
	hub        *ws.Hub
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewHandler creates a dashboard event consumer
func NewHandler(hub *ws.Hub, natsClient *natspkg.Client) *Handler {
	return &Handler{
		hub:        hub,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the engine subjects the dashboard renders
func (h *Handler) InitConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectOrderStatusChanged, h.handleOrderStatusChanged)
	if err != nil {
		return fmt.Errorf("failed to subscribe to order status events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectDriverLocation, h.handleDriverLocationChanged)
	if err != nil {
		return fmt.Errorf("failed to subscribe to driver location events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// Close drains the subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}

func (h *Handler) handleOrderStatusChanged(msg []byte) error {
	var event models.OrderStatusChangedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.Error("Failed to unmarshal order status event", logger.Err(err))
		return err
	}

	h.hub.Publish(constants.EventOrderStatusChanged, event)
	return nil
}

func (h *Handler) handleDriverLocationChanged(msg []byte) error {
	var event models.DriverLocationChangedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.Error("Failed to unmarshal driver location event", logger.Err(err))
		return err
	}

	h.hub.Publish(constants.EventDriverLocationChanged, event)
	return nil
}
