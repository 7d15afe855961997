package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/sync/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplyContext(t *testing.T, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	reqBody, err := json.Marshal(body)
	require.NoError(t, err)
	request := httptest.NewRequest(http.MethodPost, "/sync/actions", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestSyncHandler_Apply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncUC := mocks.NewMockSyncUC(ctrl)
	handler := NewSyncHandler(mockSyncUC)

	action := models.QueuedAction{
		ClientActionID: uuid.New(),
		Type:           models.ActionTypeStatusTransition,
		OrderID:        uuid.New(),
		Actor:          "driver:7b1",
		Payload:        []byte(`{"target":"picked_up"}`),
	}

	mockSyncUC.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(&models.ActionResult{
			ClientActionID: action.ClientActionID,
			Outcome:        models.ActionOutcomeApplied,
		}, nil).
		Times(1)

	c, recorder := newApplyContext(t, action)

	err := handler.Apply(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    models.ActionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.ActionOutcomeApplied, resp.Data.Outcome)
}

func TestSyncHandler_Apply_RejectionIsStillOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncUC := mocks.NewMockSyncUC(ctrl)
	handler := NewSyncHandler(mockSyncUC)

	action := models.QueuedAction{
		ClientActionID: uuid.New(),
		Type:           models.ActionTypeStatusTransition,
		OrderID:        uuid.New(),
		Payload:        []byte(`{"target":"delivered"}`),
	}

	mockSyncUC.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(&models.ActionResult{
			ClientActionID: action.ClientActionID,
			Outcome:        models.ActionOutcomeRejected,
			Reason:         models.RejectReasonStaleAction,
		}, nil).
		Times(1)

	c, recorder := newApplyContext(t, action)

	err := handler.Apply(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data models.ActionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, models.ActionOutcomeRejected, resp.Data.Outcome)
	assert.Equal(t, models.RejectReasonStaleAction, resp.Data.Reason)
}

func TestSyncHandler_Apply_MissingClientActionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncUC := mocks.NewMockSyncUC(ctrl)
	handler := NewSyncHandler(mockSyncUC)

	c, recorder := newApplyContext(t, models.QueuedAction{
		Type:    models.ActionTypeStatusTransition,
		OrderID: uuid.New(),
		Payload: []byte(`{"target":"picked_up"}`),
	})

	err := handler.Apply(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSyncHandler_Apply_MissingOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncUC := mocks.NewMockSyncUC(ctrl)
	handler := NewSyncHandler(mockSyncUC)

	c, recorder := newApplyContext(t, models.QueuedAction{
		ClientActionID: uuid.New(),
		Type:           models.ActionTypeStatusTransition,
		Payload:        []byte(`{"target":"picked_up"}`),
	})

	err := handler.Apply(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSyncHandler_Apply_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncUC := mocks.NewMockSyncUC(ctrl)
	handler := NewSyncHandler(mockSyncUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/sync/actions", bytes.NewBufferString("not json"))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.Apply(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSyncHandler_Apply_InfrastructureError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncUC := mocks.NewMockSyncUC(ctrl)
	handler := NewSyncHandler(mockSyncUC)

	mockSyncUC.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("version conflict retries exhausted")).
		Times(1)

	c, recorder := newApplyContext(t, models.QueuedAction{
		ClientActionID: uuid.New(),
		Type:           models.ActionTypeStatusTransition,
		OrderID:        uuid.New(),
		Payload:        []byte(`{"target":"picked_up"}`),
	})

	err := handler.Apply(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
