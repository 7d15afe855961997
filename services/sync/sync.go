// Package sync owns offline action replay: courier devices queue actions
// while disconnected and submit them later, each keyed by a client action ID
// the server applies at most once.
package sync

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kurirmed/dispatch/services/sync SyncUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kurirmed/dispatch/services/sync SyncRepo

// SyncUC represents the offline action replay use case interface
type SyncUC interface {
	// Apply replays one queued action. The result is always terminal:
	// applied, already-applied, or rejected with a reason. An error return
	// means infrastructure failed and the device should retry the same
	// action with the same client action ID.
	Apply(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error)
}

// SyncRepo represents the replay bookkeeping interface
type SyncRepo interface {
	// GetResult returns the recorded outcome for a client action ID, or nil
	// when the action has never completed.
	GetResult(ctx context.Context, clientActionID uuid.UUID) (*models.ActionResult, error)

	RecordResult(ctx context.Context, action models.QueuedAction, result models.ActionResult) error
}
