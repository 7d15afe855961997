package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/kurirmed/dispatch/services/orders/mocks"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			MaxCASRetries: 3,
		},
	}
}

func pendingOrder() *models.Order {
	return &models.Order{
		ID:            uuid.New(),
		Status:        models.OrderStatusPending,
		WarehouseID:   uuid.New(),
		PaymentMethod: models.PaymentMethodCOD,
		Version:       1,
	}
}

func TestTransition_AssignSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	driverID := uuid.New()

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsAvailable: true}, nil)
	mockRepo.EXPECT().
		UpdateStatusCAS(gomock.Any(), order.ID, int64(1), models.OrderStatusAssigned, &driverID, gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target:   models.OrderStatusAssigned,
		Actor:    "dispatcher:ops-1",
		DriverID: &driverID,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusAssigned, result.NewStatus)
	assert.Equal(t, models.OrderStatusPending, result.HistoryEntry.FromStatus)
	assert.Equal(t, models.OrderStatusAssigned, result.HistoryEntry.ToStatus)
	assert.Equal(t, "dispatcher:ops-1", result.HistoryEntry.Actor)
}

func TestTransition_InvalidEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)

	_, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusDelivered,
		Actor:  "driver:x",
	})

	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestTransition_AlreadyInState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	order.Status = models.OrderStatusInTransit
	driverID := uuid.New()
	order.DriverID = &driverID

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)

	_, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusInTransit,
		Actor:  "driver:x",
	})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyInState)
}

func TestTransition_AssignRaceLoser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	winner := uuid.New()
	loser := uuid.New()

	// First read sees pending, the CAS loses; the re-read sees the winner's
	// assignment and the attempt surfaces as already assigned.
	assignedOrder := *order
	assignedOrder.Status = models.OrderStatusAssigned
	assignedOrder.DriverID = &winner
	assignedOrder.Version = 2

	gomock.InOrder(
		mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil),
		mockRepo.EXPECT().GetDriver(gomock.Any(), loser).
			Return(&models.Driver{ID: loser, IsAvailable: true}, nil),
		mockRepo.EXPECT().
			UpdateStatusCAS(gomock.Any(), order.ID, int64(1), models.OrderStatusAssigned, &loser, gomock.Any()).
			Return(apperrors.ErrVersionConflict),
		mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(&assignedOrder, nil),
	)

	_, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target:   models.OrderStatusAssigned,
		Actor:    "dispatcher:ops-2",
		DriverID: &loser,
	})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)
}

func TestTransition_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	driverID := uuid.New()
	order.Status = models.OrderStatusAssigned
	order.DriverID = &driverID

	// A concurrent payment update bumped the version between read and write;
	// the transition still validates on the re-read and commits.
	bumped := *order
	bumped.Version = 2

	gomock.InOrder(
		mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil),
		mockRepo.EXPECT().
			UpdateStatusCAS(gomock.Any(), order.ID, int64(1), models.OrderStatusPickedUp, &driverID, gomock.Any()).
			Return(apperrors.ErrVersionConflict),
		mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(&bumped, nil),
		mockRepo.EXPECT().
			UpdateStatusCAS(gomock.Any(), order.ID, int64(2), models.OrderStatusPickedUp, &driverID, gomock.Any()).
			Return(nil),
	)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusPickedUp,
		Actor:  "driver:" + driverID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPickedUp, result.NewStatus)
}

func TestTransition_RetryExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	driverID := uuid.New()
	order.Status = models.OrderStatusAssigned
	order.DriverID = &driverID

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil).Times(4)
	mockRepo.EXPECT().
		UpdateStatusCAS(gomock.Any(), order.ID, int64(1), models.OrderStatusPickedUp, &driverID, gomock.Any()).
		Return(apperrors.ErrVersionConflict).Times(4)

	_, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusPickedUp,
		Actor:  "driver:" + driverID.String(),
	})

	assert.ErrorIs(t, err, apperrors.ErrVersionConflict)
}

func TestTransition_DriverUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	driverID := uuid.New()

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsAvailable: false}, nil)

	_, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target:   models.OrderStatusAssigned,
		Actor:    "dispatcher:ops-1",
		DriverID: &driverID,
	})

	assert.ErrorIs(t, err, apperrors.ErrDriverUnavailable)
}

func TestTransition_CancelRequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)

	_, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusCancelled,
		Actor:  "dispatcher:ops-1",
	})

	assert.ErrorIs(t, err, apperrors.ErrReasonRequired)
}

func TestTransition_UnassignClearsDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	driverID := uuid.New()
	order.Status = models.OrderStatusAssigned
	order.DriverID = &driverID

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().
		UpdateStatusCAS(gomock.Any(), order.ID, int64(1), models.OrderStatusPending, (*uuid.UUID)(nil), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusPending,
		Actor:  "dispatcher:ops-1",
		Note:   "driver reassigned to urgent batch",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, result.NewStatus)
}

func TestTransition_PublishFailureDoesNotFailTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	driverID := uuid.New()
	order.Status = models.OrderStatusAssigned
	order.DriverID = &driverID

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().
		UpdateStatusCAS(gomock.Any(), order.ID, int64(1), models.OrderStatusPickedUp, &driverID, gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	result, err := uc.Transition(context.Background(), order.ID, models.TransitionRequest{
		Target: models.OrderStatusPickedUp,
		Actor:  "driver:" + driverID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPickedUp, result.NewStatus)
}

func TestGetOrder_AttachesHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	history := []models.StatusHistoryEntry{
		{OrderID: order.ID, FromStatus: models.OrderStatusPending, ToStatus: models.OrderStatusAssigned},
		{OrderID: order.ID, FromStatus: models.OrderStatusAssigned, ToStatus: models.OrderStatusPending},
	}

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().GetHistory(gomock.Any(), order.ID).Return(history, nil)

	got, err := uc.GetOrder(context.Background(), order.ID)

	assert.NoError(t, err)
	assert.Len(t, got.StatusHistory, 2)
}

func TestSubmitProofOfDelivery_RejectedBeforePickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)

	err := uc.SubmitProofOfDelivery(context.Background(), order.ID,
		models.PODPayload{PhotoRef: "s3://pod/abc.jpg"}, "driver:x")

	assert.ErrorIs(t, err, apperrors.ErrStaleAction)
}

func TestSubmitProofOfDelivery_Delivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	order.Status = models.OrderStatusDelivered

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().SaveProofOfDelivery(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.SubmitProofOfDelivery(context.Background(), order.ID,
		models.PODPayload{SignatureRef: "s3://pod/sig.png"}, "driver:x")

	assert.NoError(t, err)
}

func TestUpdatePaymentMethod_TerminalRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	order.Status = models.OrderStatusCancelled

	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)

	err := uc.UpdatePaymentMethod(context.Background(), order.ID, models.PaymentMethodCard, "dispatcher:ops-1")

	assert.ErrorIs(t, err, apperrors.ErrStaleAction)
}

func TestUpdatePaymentMethod_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepo(ctrl)
	mockGW := mocks.NewMockOrderGW(ctrl)
	uc := NewOrderUC(testConfig(), mockRepo, mockGW)

	order := pendingOrder()
	mockRepo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
	mockRepo.EXPECT().UpdatePaymentMethod(gomock.Any(), order.ID, models.PaymentMethodCard).Return(nil)

	err := uc.UpdatePaymentMethod(context.Background(), order.ID, models.PaymentMethodCard, "dispatcher:ops-1")

	assert.NoError(t, err)
}
