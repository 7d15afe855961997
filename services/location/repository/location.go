package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/database"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/location"
)

// LocationRepository stores live locations in Redis and reads warehouse
// fallbacks from PostgreSQL
type LocationRepository struct {
	cfg   *models.Config
	redis *database.RedisClient
	db    *sqlx.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, redis *database.RedisClient, db *sqlx.DB) location.LocationRepo {
	return &LocationRepository{
		cfg:   cfg,
		redis: redis,
		db:    db,
	}
}

// StoreLocation writes the ping into the driver's location hash. The entry
// never expires: a ping stays authoritative until a newer one supersedes it,
// however old it gets.
func (r *LocationRepository) StoreLocation(ctx context.Context, ping models.LocationPing, geohash string) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, ping.DriverID.String())

	err := r.redis.HSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(ping.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(ping.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(ping.Timestamp.UnixMilli(), 10),
		constants.FieldGeohash:   geohash,
	})
	if err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}
	return nil
}

// GetLastLocation reads the driver's location hash; a driver who has never
// pinged yields ErrNoLocation
func (r *LocationRepository) GetLastLocation(ctx context.Context, driverID uuid.UUID) (*models.ResolvedLocation, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID.String())

	fields, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read location: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrNoLocation
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude for driver %s: %w", driverID, err)
	}
	tsMilli, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt timestamp for driver %s: %w", driverID, err)
	}

	return &models.ResolvedLocation{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		Source:    models.LocationSourceLive,
		Geohash:   fields[constants.FieldGeohash],
		Timestamp: time.UnixMilli(tsMilli),
	}, nil
}

// GetDriverWarehouse returns the warehouse the driver is based at
func (r *LocationRepository) GetDriverWarehouse(ctx context.Context, driverID uuid.UUID) (*models.Warehouse, error) {
	query := `
		SELECT w.id, w.name, w.latitude, w.longitude
		FROM warehouses w
		JOIN drivers d ON d.warehouse_id = w.id
		WHERE d.id = $1`

	var warehouse models.Warehouse
	err := r.db.GetContext(ctx, &warehouse, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNoLocation
		}
		return nil, fmt.Errorf("failed to get driver warehouse: %w", err)
	}
	return &warehouse, nil
}
