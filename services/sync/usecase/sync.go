package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/logger"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/orders"
	syncsvc "github.com/kurirmed/dispatch/services/sync"
)

type syncUC struct {
	cfg      *models.Config
	orderUC  orders.OrderUC
	syncRepo syncsvc.SyncRepo
}

// NewSyncUC creates a new offline action replay use case
func NewSyncUC(cfg *models.Config, orderUC orders.OrderUC, syncRepo syncsvc.SyncRepo) syncsvc.SyncUC {
	return &syncUC{
		cfg:      cfg,
		orderUC:  orderUC,
		syncRepo: syncRepo,
	}
}

// Apply replays one queued action at most once. A replay of a completed
// action returns already-applied for a past success and the recorded
// rejection for a past failure; the action itself never runs twice.
func (uc *syncUC) Apply(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	recorded, err := uc.syncRepo.GetResult(ctx, action.ClientActionID)
	if err != nil {
		return nil, err
	}
	if recorded != nil {
		result := *recorded
		if result.Outcome == models.ActionOutcomeApplied {
			result.Outcome = models.ActionOutcomeAlreadyApplied
		}
		return &result, nil
	}

	result, err := uc.execute(ctx, action)
	if err != nil {
		// Infrastructure failure: nothing recorded, the device retries.
		return nil, err
	}

	if err := uc.syncRepo.RecordResult(ctx, action, *result); err != nil {
		// The action ran but the outcome was not recorded. A crash here is
		// covered on replay: re-running the transition hits the
		// already-in-state guard and resolves to applied again.
		return nil, err
	}

	logger.Info("Offline action replayed",
		logger.String("client_action_id", action.ClientActionID.String()),
		logger.String("type", string(action.Type)),
		logger.String("outcome", string(result.Outcome)),
		logger.String("reason", result.Reason))
	return result, nil
}

func (uc *syncUC) execute(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	switch action.Type {
	case models.ActionTypeStatusTransition:
		return uc.executeTransition(ctx, action)
	case models.ActionTypePODSubmission:
		return uc.executePOD(ctx, action)
	case models.ActionTypePaymentUpdate:
		return uc.executePaymentUpdate(ctx, action)
	default:
		return rejected(action, models.RejectReasonInvalidPayload), nil
	}
}

func (uc *syncUC) executeTransition(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	var payload models.TransitionPayload
	if err := json.Unmarshal(action.Payload, &payload); err != nil || payload.Target == "" {
		return rejected(action, models.RejectReasonInvalidPayload), nil
	}

	_, err := uc.orderUC.Transition(ctx, action.OrderID, models.TransitionRequest{
		Target: payload.Target,
		Actor:  action.Actor,
		Note:   payload.Note,
	})
	return uc.classify(action, err)
}

func (uc *syncUC) executePOD(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	var payload models.PODPayload
	if err := json.Unmarshal(action.Payload, &payload); err != nil {
		return rejected(action, models.RejectReasonInvalidPayload), nil
	}
	if payload.SignatureRef == "" && payload.PhotoRef == "" {
		return rejected(action, models.RejectReasonInvalidPayload), nil
	}

	err := uc.orderUC.SubmitProofOfDelivery(ctx, action.OrderID, payload, action.Actor)
	return uc.classify(action, err)
}

func (uc *syncUC) executePaymentUpdate(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	var payload models.PaymentUpdatePayload
	if err := json.Unmarshal(action.Payload, &payload); err != nil || payload.Method == "" {
		return rejected(action, models.RejectReasonInvalidPayload), nil
	}

	err := uc.orderUC.UpdatePaymentMethod(ctx, action.OrderID, payload.Method, action.Actor)
	return uc.classify(action, err)
}

// classify maps an execution error onto a terminal outcome. Only
// infrastructure failures escape as errors.
func (uc *syncUC) classify(action models.QueuedAction, err error) (*models.ActionResult, error) {
	switch {
	case err == nil:
		return &models.ActionResult{
			ClientActionID: action.ClientActionID,
			Outcome:        models.ActionOutcomeApplied,
		}, nil
	case errors.Is(err, apperrors.ErrAlreadyInState):
		// The device's intent already holds, most likely from an earlier
		// replay whose outcome was lost before being recorded.
		return &models.ActionResult{
			ClientActionID: action.ClientActionID,
			Outcome:        models.ActionOutcomeApplied,
		}, nil
	case apperrors.IsInvalidTransition(err),
		errors.Is(err, apperrors.ErrAlreadyAssigned),
		errors.Is(err, apperrors.ErrDriverUnavailable):
		// The order moved on while the device was offline; the recorded
		// intent no longer applies to the state the world is in now.
		return rejected(action, models.RejectReasonStaleAction), nil
	case errors.Is(err, apperrors.ErrStaleAction):
		return rejected(action, models.RejectReasonStaleAction), nil
	case errors.Is(err, apperrors.ErrReasonRequired):
		return rejected(action, models.RejectReasonInvalidPayload), nil
	case errors.Is(err, apperrors.ErrOrderNotFound):
		return rejected(action, models.RejectReasonOrderNotFound), nil
	case errors.Is(err, apperrors.ErrDriverNotFound):
		return rejected(action, models.RejectReasonDriverNotFound), nil
	default:
		return nil, fmt.Errorf("action %s failed: %w", action.ClientActionID, err)
	}
}

func rejected(action models.QueuedAction, reason string) *models.ActionResult {
	return &models.ActionResult{
		ClientActionID: action.ClientActionID,
		Outcome:        models.ActionOutcomeRejected,
		Reason:         reason,
	}
}
