package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	syncsvc "github.com/kurirmed/dispatch/services/sync"
)

// SyncRepository records replay outcomes on PostgreSQL
type SyncRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSyncRepository creates a new sync repository
func NewSyncRepository(cfg *models.Config, db *sqlx.DB) syncsvc.SyncRepo {
	return &SyncRepository{
		cfg: cfg,
		db:  db,
	}
}

// GetResult returns the recorded outcome for a client action ID; nil when
// the action has never completed
func (r *SyncRepository) GetResult(ctx context.Context, clientActionID uuid.UUID) (*models.ActionResult, error) {
	query := `
		SELECT client_action_id, outcome, reason
		FROM sync_actions
		WHERE client_action_id = $1`

	var result models.ActionResult
	err := r.db.GetContext(ctx, &result, query, clientActionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get action result: %w", err)
	}
	return &result, nil
}

// RecordResult stores the terminal outcome of a replayed action. The insert
// is idempotent on the client action ID so a concurrent duplicate submission
// cannot record two outcomes.
func (r *SyncRepository) RecordResult(ctx context.Context, action models.QueuedAction, result models.ActionResult) error {
	query := `
		INSERT INTO sync_actions (client_action_id, action_type, order_id, actor, payload, outcome, reason, created_at, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (client_action_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		action.ClientActionID, action.Type, action.OrderID, action.Actor,
		action.Payload, result.Outcome, result.Reason, action.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record action result: %w", err)
	}
	return nil
}
