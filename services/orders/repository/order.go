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
	"github.com/kurirmed/dispatch/services/orders"
)

// OrderRepository handles order persistence on PostgreSQL
type OrderRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(cfg *models.Config, db *sqlx.DB) orders.OrderRepo {
	return &OrderRepository{
		cfg: cfg,
		db:  db,
	}
}

// GetOrder retrieves an order by ID
func (r *OrderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	query := `
		SELECT id, status, driver_id, warehouse_id, total_amount, payment_method,
		       is_archived, version, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetHistory retrieves the status history of an order, oldest first
func (r *OrderRepository) GetHistory(ctx context.Context, orderID uuid.UUID) ([]models.StatusHistoryEntry, error) {
	query := `
		SELECT id, order_id, from_status, to_status, actor, note, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at ASC`

	var history []models.StatusHistoryEntry
	if err := r.db.SelectContext(ctx, &history, query, orderID); err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}
	return history, nil
}

// ListActiveByDriver returns the non-archived, non-terminal orders held by a driver
func (r *OrderRepository) ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Order, error) {
	query := `
		SELECT id, status, driver_id, warehouse_id, total_amount, payment_method,
		       is_archived, version, created_at, updated_at
		FROM orders
		WHERE driver_id = $1
		  AND is_archived = false
		  AND status NOT IN ('delivered', 'cancelled', 'returned')
		ORDER BY created_at ASC`

	var list []*models.Order
	if err := r.db.SelectContext(ctx, &list, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}
	return list, nil
}

// UpdateStatusCAS commits a status transition guarded by the order's version.
// The status write and the history append share one transaction so a crash
// can never record a transition without its history entry. A zero-row update
// means another writer won the race; the caller re-reads and re-validates.
func (r *OrderRepository) UpdateStatusCAS(ctx context.Context, orderID uuid.UUID, expectedVersion int64, target models.OrderStatus, driverID *uuid.UUID, entry *models.StatusHistoryEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	updateQuery := `
		UPDATE orders
		SET status = $1, driver_id = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4`

	result, err := tx.ExecContext(ctx, updateQuery, target, driverID, orderID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrVersionConflict
	}

	historyQuery := `
		INSERT INTO order_status_history (id, order_id, from_status, to_status, actor, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.ExecContext(ctx, historyQuery,
		entry.ID, entry.OrderID, entry.FromStatus, entry.ToStatus,
		entry.Actor, entry.Note, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}
	return nil
}

// GetDriver retrieves a driver by ID
func (r *OrderRepository) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
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

// SaveProofOfDelivery upserts POD evidence for an order
func (r *OrderRepository) SaveProofOfDelivery(ctx context.Context, pod *models.ProofOfDelivery) error {
	query := `
		INSERT INTO proof_of_delivery (order_id, signature_ref, photo_ref, note, captured_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO UPDATE
		SET signature_ref = EXCLUDED.signature_ref,
		    photo_ref = EXCLUDED.photo_ref,
		    note = EXCLUDED.note,
		    captured_at = EXCLUDED.captured_at`

	_, err := r.db.ExecContext(ctx, query,
		pod.OrderID, pod.SignatureRef, pod.PhotoRef, pod.Note, pod.CapturedAt)
	if err != nil {
		return fmt.Errorf("failed to save proof of delivery: %w", err)
	}
	return nil
}

// UpdatePaymentMethod changes the payment method of an order
func (r *OrderRepository) UpdatePaymentMethod(ctx context.Context, orderID uuid.UUID, method models.PaymentMethod) error {
	query := `
		UPDATE orders
		SET payment_method = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, method, orderID)
	if err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}
