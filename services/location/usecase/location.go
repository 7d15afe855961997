package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/internal/utils"
	"github.com/kurirmed/dispatch/services/location"
)

type locationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
}

// NewLocationUC creates a new location tracking use case
func NewLocationUC(cfg *models.Config, locationRepo location.LocationRepo, locationGW location.LocationGW) location.LocationUC {
	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		locationGW:   locationGW,
	}
}

// RecordPing validates and stores a position report
func (uc *locationUC) RecordPing(ctx context.Context, ping models.LocationPing) error {
	if err := validateCoordinate(ping.Latitude, ping.Longitude); err != nil {
		logger.Warn("Rejected location ping",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Float64("lat", ping.Latitude),
			logger.Float64("lng", ping.Longitude))
		return err
	}

	if ping.Timestamp.IsZero() {
		ping.Timestamp = time.Now()
	}

	last, err := uc.locationRepo.GetLastLocation(ctx, ping.DriverID)
	if err != nil && !errors.Is(err, apperrors.ErrNoLocation) {
		return err
	}
	if last != nil && !last.Timestamp.Before(ping.Timestamp) {
		// Out-of-order delivery; the stored ping is newer, keep it.
		logger.Debug("Discarded stale location ping",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Time("stored_at", last.Timestamp),
			logger.Time("ping_at", ping.Timestamp))
		return nil
	}

	hash := utils.EncodeCoordinate(ping.Latitude, ping.Longitude)
	if err := uc.locationRepo.StoreLocation(ctx, ping, hash); err != nil {
		return err
	}

	if last != nil {
		logger.Debug("Driver moved",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Float64("distance_km", utils.CalculateDistanceKm(
				last.Latitude, last.Longitude, ping.Latitude, ping.Longitude)))
	}

	event := models.DriverLocationChangedEvent{
		DriverID:  ping.DriverID,
		Latitude:  ping.Latitude,
		Longitude: ping.Longitude,
		Source:    models.LocationSourceLive,
		Geohash:   hash,
		Timestamp: ping.Timestamp,
	}
	if err := uc.locationGW.PublishLocationChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish location changed event",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Err(err))
	}
	return nil
}

// ResolveLocation returns the last valid ping or the warehouse fallback
func (uc *locationUC) ResolveLocation(ctx context.Context, driverID uuid.UUID) (*models.ResolvedLocation, error) {
	last, err := uc.locationRepo.GetLastLocation(ctx, driverID)
	if err == nil {
		return last, nil
	}
	if !errors.Is(err, apperrors.ErrNoLocation) {
		return nil, err
	}

	warehouse, err := uc.locationRepo.GetDriverWarehouse(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return &models.ResolvedLocation{
		DriverID:  driverID,
		Latitude:  warehouse.Latitude,
		Longitude: warehouse.Longitude,
		Source:    models.LocationSourceFallback,
		Geohash:   utils.EncodeCoordinate(warehouse.Latitude, warehouse.Longitude),
	}, nil
}

// validateCoordinate rejects out-of-range values and the (0,0) null island
// fix that broken GPS units emit
func validateCoordinate(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return apperrors.ErrInvalidCoordinate
	}
	if lat == 0 && lng == 0 {
		return apperrors.ErrInvalidCoordinate
	}
	return nil
}
