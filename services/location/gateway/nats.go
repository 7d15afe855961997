package gateway

import (
	"context"

	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	natspkg "github.com/kurirmed/dispatch/internal/pkg/nats"
	"github.com/kurirmed/dispatch/services/location"
)

// LocationGW publishes location events to NATS
type LocationGW struct {
	natsClient *natspkg.Client
}

// NewLocationGW creates a new location event gateway
func NewLocationGW(natsClient *natspkg.Client) location.LocationGW {
	return &LocationGW{natsClient: natsClient}
}

// PublishLocationChanged publishes a driver position change
func (g *LocationGW) PublishLocationChanged(ctx context.Context, event models.DriverLocationChangedEvent) error {
	return g.natsClient.Publish(constants.SubjectDriverLocation, event)
}
