package gateway

import (
	"context"

	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	natspkg "github.com/kurirmed/dispatch/internal/pkg/nats"
	"github.com/kurirmed/dispatch/services/dispatch"
)

// DispatchGW publishes assignment events to NATS
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch event gateway
func NewDispatchGW(natsClient *natspkg.Client) dispatch.DispatchGW {
	return &DispatchGW{natsClient: natsClient}
}

// PublishOrderAssigned publishes a successful assignment
func (g *DispatchGW) PublishOrderAssigned(ctx context.Context, result models.AssignmentResult) error {
	return g.natsClient.Publish(constants.SubjectOrderAssigned, result)
}
