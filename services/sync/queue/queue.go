// Package queue implements the courier-device side of offline sync: actions
// recorded while disconnected are held in FIFO order and drained to the
// server once connectivity returns. Submission failures back off
// exponentially; a rejection removes the action and surfaces it to the
// courier instead of retrying forever.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/internal/pkg/retry"
)

// Store persists the device's pending actions in FIFO order
type Store interface {
	Append(ctx context.Context, deviceID string, action models.QueuedAction) error
	List(ctx context.Context, deviceID string) ([]models.QueuedAction, error)
	Remove(ctx context.Context, deviceID string, clientActionID uuid.UUID) error
	Len(ctx context.Context, deviceID string) (int, error)
}

// Submitter delivers one action to the coordination server
type Submitter interface {
	Submit(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error)
}

// Notifier surfaces rejected and stalled actions to the courier UI
type Notifier interface {
	NotifyRejected(action models.QueuedAction, result models.ActionResult)
	NotifyStalled(action models.QueuedAction, err error)
}

// Queue drains a device's pending actions to the server
type Queue struct {
	deviceID  string
	store     Store
	submitter Submitter
	notifier  Notifier
	retrier   *retry.Retrier

	mu sync.Mutex
}

// New creates a queue for one device
func New(cfg models.SyncConfig, deviceID string, store Store, submitter Submitter, notifier Notifier) *Queue {
	retryCfg := retry.DefaultConfig()
	if cfg.MaxAttempts > 0 {
		retryCfg.MaxRetries = cfg.MaxAttempts - 1
	}
	if cfg.BaseDelayMs > 0 {
		retryCfg.BaseDelay = time.Duration(cfg.BaseDelayMs) * time.Millisecond
	}
	if cfg.MaxDelayMs > 0 {
		retryCfg.MaxDelay = time.Duration(cfg.MaxDelayMs) * time.Millisecond
	}
	retryCfg.RetryableFunc = IsTransient

	return &Queue{
		deviceID:  deviceID,
		store:     store,
		submitter: submitter,
		notifier:  notifier,
		retrier:   retry.New(retryCfg),
	}
}

// Enqueue records an action for later submission. The client action ID is
// assigned here, once: every later submission of this action reuses it.
func (q *Queue) Enqueue(ctx context.Context, action models.QueuedAction) (uuid.UUID, error) {
	if action.ClientActionID == uuid.Nil {
		action.ClientActionID = uuid.New()
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}

	if err := q.store.Append(ctx, q.deviceID, action); err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue action: %w", err)
	}

	logger.Debug("Action queued",
		logger.String("device_id", q.deviceID),
		logger.String("client_action_id", action.ClientActionID.String()),
		logger.String("type", string(action.Type)))
	return action.ClientActionID, nil
}

// Pending returns the number of actions waiting for submission
func (q *Queue) Pending(ctx context.Context) (int, error) {
	return q.store.Len(ctx, q.deviceID)
}

// Flush drains the queue head-first. Each action is submitted with bounded
// backoff; a terminal outcome removes it, a persistent failure stops the
// flush and leaves the remainder queued for the next attempt. Actions
// enqueued while a flush runs are drained by the same flush.
func (q *Queue) Flush(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	flushed := 0
	for {
		if err := ctx.Err(); err != nil {
			return flushed, err
		}

		pending, err := q.store.List(ctx, q.deviceID)
		if err != nil {
			return flushed, fmt.Errorf("failed to list pending actions: %w", err)
		}
		if len(pending) == 0 {
			return flushed, nil
		}
		head := pending[0]

		var result *models.ActionResult
		err = q.retrier.Execute(ctx, func(ctx context.Context) error {
			var submitErr error
			result, submitErr = q.submitter.Submit(ctx, head)
			return submitErr
		})
		if err != nil {
			logger.Warn("Flush stopped, head submission failed",
				logger.String("device_id", q.deviceID),
				logger.String("client_action_id", head.ClientActionID.String()),
				logger.Err(err))
			if q.notifier != nil && ctx.Err() == nil {
				q.notifier.NotifyStalled(head, err)
			}
			return flushed, err
		}

		if err := q.store.Remove(ctx, q.deviceID, head.ClientActionID); err != nil {
			return flushed, fmt.Errorf("failed to remove flushed action: %w", err)
		}
		flushed++

		if result.Outcome == models.ActionOutcomeRejected {
			logger.Warn("Queued action rejected by server",
				logger.String("device_id", q.deviceID),
				logger.String("client_action_id", head.ClientActionID.String()),
				logger.String("reason", result.Reason))
			if q.notifier != nil {
				q.notifier.NotifyRejected(head, *result)
			}
		}
	}
}

// SubmitError carries the HTTP status of a failed submission
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submission failed with status %d: %s", e.StatusCode, e.Message)
}

// IsTransient reports whether a submission error is worth retrying: network
// failures and server errors are, client errors are not
func IsTransient(err error) bool {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return true
}
