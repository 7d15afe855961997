// Package location owns driver position tracking: ingesting pings with
// last-write-wins semantics, rejecting garbage coordinates, and resolving a
// driver's believed location with the warehouse as fallback.
package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kurirmed/dispatch/services/location LocationUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kurirmed/dispatch/services/location LocationRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kurirmed/dispatch/services/location LocationGW

// LocationUC represents the location tracking use case interface
type LocationUC interface {
	// RecordPing validates and stores a position report. A ping older than
	// the stored one is discarded without error; pings arrive out of order
	// on flaky mobile networks and the newest timestamp wins.
	RecordPing(ctx context.Context, ping models.LocationPing) error

	// ResolveLocation returns the driver's believed position: the last valid
	// ping, or the driver's warehouse when no ping exists.
	ResolveLocation(ctx context.Context, driverID uuid.UUID) (*models.ResolvedLocation, error)
}

// LocationRepo represents the location persistence interface
type LocationRepo interface {
	StoreLocation(ctx context.Context, ping models.LocationPing, geohash string) error
	GetLastLocation(ctx context.Context, driverID uuid.UUID) (*models.ResolvedLocation, error)
	GetDriverWarehouse(ctx context.Context, driverID uuid.UUID) (*models.Warehouse, error)
}

// LocationGW represents the location event gateway interface
type LocationGW interface {
	PublishLocationChanged(ctx context.Context, event models.DriverLocationChangedEvent) error
}
