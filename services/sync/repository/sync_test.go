package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestGetResult_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSyncRepository(&models.Config{}, db)
	actionID := uuid.New()

	rows := sqlmock.NewRows([]string{"client_action_id", "outcome", "reason"}).
		AddRow(actionID, "rejected", "stale_action")
	mock.ExpectQuery("SELECT client_action_id, outcome, reason").
		WithArgs(actionID).
		WillReturnRows(rows)

	result, err := repo.GetResult(context.Background(), actionID)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, actionID, result.ClientActionID)
	assert.Equal(t, models.ActionOutcomeRejected, result.Outcome)
	assert.Equal(t, models.RejectReasonStaleAction, result.Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetResult_NeverRecorded(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSyncRepository(&models.Config{}, db)
	actionID := uuid.New()

	mock.ExpectQuery("SELECT client_action_id, outcome, reason").
		WithArgs(actionID).
		WillReturnRows(sqlmock.NewRows([]string{"client_action_id", "outcome", "reason"}))

	result, err := repo.GetResult(context.Background(), actionID)

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordResult_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSyncRepository(&models.Config{}, db)
	action := models.QueuedAction{
		ClientActionID: uuid.New(),
		Type:           models.ActionTypeStatusTransition,
		OrderID:        uuid.New(),
		Actor:          "driver:7b1",
		Payload:        []byte(`{"target":"picked_up"}`),
		CreatedAt:      time.Now(),
	}
	result := models.ActionResult{
		ClientActionID: action.ClientActionID,
		Outcome:        models.ActionOutcomeApplied,
	}

	mock.ExpectExec("INSERT INTO sync_actions").
		WithArgs(action.ClientActionID, action.Type, action.OrderID, action.Actor,
			[]byte(`{"target":"picked_up"}`), result.Outcome, "", action.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordResult(context.Background(), action, result)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordResult_DuplicateIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSyncRepository(&models.Config{}, db)
	action := models.QueuedAction{
		ClientActionID: uuid.New(),
		Type:           models.ActionTypePODSubmission,
		OrderID:        uuid.New(),
		Actor:          "driver:7b1",
		Payload:        []byte(`{"signature_ref":"sig-1"}`),
		CreatedAt:      time.Now(),
	}
	result := models.ActionResult{
		ClientActionID: action.ClientActionID,
		Outcome:        models.ActionOutcomeApplied,
	}

	// ON CONFLICT DO NOTHING reports zero affected rows for the duplicate.
	mock.ExpectExec("INSERT INTO sync_actions").
		WithArgs(action.ClientActionID, action.Type, action.OrderID, action.Actor,
			[]byte(`{"signature_ref":"sig-1"}`), result.Outcome, "", action.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordResult(context.Background(), action, result)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
