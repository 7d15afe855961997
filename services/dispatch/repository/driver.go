package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/dispatch"
)

// DriverRepository handles driver persistence on PostgreSQL
type DriverRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) dispatch.DriverRepo {
	return &DriverRepository{
		cfg: cfg,
		db:  db,
	}
}

// GetDriver retrieves a driver by ID
func (r *DriverRepository) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `
		SELECT id, fullname, msisdn, vehicle_plate, is_available, warehouse_id,
		       created_at, updated_at
		FROM drivers
		WHERE id = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// SetAvailability toggles whether the driver accepts new assignments
func (r *DriverRepository) SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) error {
	query := `
		UPDATE drivers
		SET is_available = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, available, driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrDriverNotFound
	}
	return nil
}
