package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/apperrors"
	"github.com/kurirmed/dispatch/internal/pkg/models"
	dispatchmocks "github.com/kurirmed/dispatch/services/dispatch/mocks"
	ordersmocks "github.com/kurirmed/dispatch/services/orders/mocks"
	ordersuc "github.com/kurirmed/dispatch/services/orders/usecase"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			MaxCASRetries: 3,
		},
	}
}

func TestAssign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := ordersmocks.NewMockOrderUC(ctrl)
	mockDriverRepo := dispatchmocks.NewMockDriverRepo(ctrl)
	mockGW := dispatchmocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockOrderUC, mockDriverRepo, mockGW)

	pair := models.AssignmentPair{OrderID: uuid.New(), DriverID: uuid.New()}

	mockOrderUC.EXPECT().
		Transition(gomock.Any(), pair.OrderID, gomock.Any()).
		Return(&models.TransitionResult{
			OrderID:   pair.OrderID,
			NewStatus: models.OrderStatusAssigned,
		}, nil)
	mockGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	result := uc.Assign(context.Background(), pair, "dispatcher:ops-1")

	assert.True(t, result.Success)
	assert.Equal(t, models.OrderStatusAssigned, result.Status)
	assert.Empty(t, result.Error)
}

func TestAssign_ErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"already assigned", apperrors.ErrAlreadyAssigned, models.AssignErrAlreadyAssigned},
		{"invalid transition", apperrors.NewInvalidTransition(models.OrderStatusDelivered, models.OrderStatusAssigned), models.AssignErrInvalidTransition},
		{"driver unavailable", apperrors.ErrDriverUnavailable, models.AssignErrDriverUnavailable},
		{"order not found", apperrors.ErrOrderNotFound, models.AssignErrOrderNotFound},
		{"driver not found", apperrors.ErrDriverNotFound, models.AssignErrDriverNotFound},
		{"infrastructure failure", assert.AnError, models.AssignErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOrderUC := ordersmocks.NewMockOrderUC(ctrl)
			mockDriverRepo := dispatchmocks.NewMockDriverRepo(ctrl)
			mockGW := dispatchmocks.NewMockDispatchGW(ctrl)
			uc := NewDispatchUC(testConfig(), mockOrderUC, mockDriverRepo, mockGW)

			pair := models.AssignmentPair{OrderID: uuid.New(), DriverID: uuid.New()}
			mockOrderUC.EXPECT().
				Transition(gomock.Any(), pair.OrderID, gomock.Any()).
				Return(nil, tt.err)

			result := uc.Assign(context.Background(), pair, "dispatcher:ops-1")

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantCode, result.Error)
		})
	}
}

func TestAssignBatch_PairsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := ordersmocks.NewMockOrderUC(ctrl)
	mockDriverRepo := dispatchmocks.NewMockDriverRepo(ctrl)
	mockGW := dispatchmocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockOrderUC, mockDriverRepo, mockGW)

	okPair := models.AssignmentPair{OrderID: uuid.New(), DriverID: uuid.New()}
	failPair := models.AssignmentPair{OrderID: uuid.New(), DriverID: uuid.New()}
	okPair2 := models.AssignmentPair{OrderID: uuid.New(), DriverID: uuid.New()}

	mockOrderUC.EXPECT().
		Transition(gomock.Any(), okPair.OrderID, gomock.Any()).
		Return(&models.TransitionResult{OrderID: okPair.OrderID, NewStatus: models.OrderStatusAssigned}, nil)
	mockOrderUC.EXPECT().
		Transition(gomock.Any(), failPair.OrderID, gomock.Any()).
		Return(nil, apperrors.ErrAlreadyAssigned)
	mockOrderUC.EXPECT().
		Transition(gomock.Any(), okPair2.OrderID, gomock.Any()).
		Return(&models.TransitionResult{OrderID: okPair2.OrderID, NewStatus: models.OrderStatusAssigned}, nil)
	mockGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	results := uc.AssignBatch(context.Background(), models.AssignmentBatchRequest{
		Pairs: []models.AssignmentPair{okPair, failPair, okPair2},
	}, "dispatcher:ops-1")

	assert.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, models.AssignErrAlreadyAssigned, results[1].Error)
	assert.True(t, results[2].Success)
}

func TestSetDriverAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := ordersmocks.NewMockOrderUC(ctrl)
	mockDriverRepo := dispatchmocks.NewMockDriverRepo(ctrl)
	mockGW := dispatchmocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(testConfig(), mockOrderUC, mockDriverRepo, mockGW)

	driverID := uuid.New()
	mockDriverRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsAvailable: true}, nil)
	mockDriverRepo.EXPECT().SetAvailability(gomock.Any(), driverID, false).Return(nil)

	err := uc.SetDriverAvailability(context.Background(), driverID, false)

	assert.NoError(t, err)
}

// fakeOrderRepo is an in-memory repo with real compare-and-set semantics,
// used to exercise assignment exclusivity under concurrency.
type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]*models.Order
	drivers map[uuid.UUID]*models.Driver
	history []models.StatusHistoryEntry
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[uuid.UUID]*models.Order),
		drivers: make(map[uuid.UUID]*models.Driver),
	}
}

func (f *fakeOrderRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return nil, apperrors.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetHistory(ctx context.Context, orderID uuid.UUID) ([]models.StatusHistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.StatusHistoryEntry
	for _, e := range f.history {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListActiveByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatusCAS(ctx context.Context, orderID uuid.UUID, expectedVersion int64, target models.OrderStatus, driverID *uuid.UUID, entry *models.StatusHistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return apperrors.ErrOrderNotFound
	}
	if order.Version != expectedVersion {
		return apperrors.ErrVersionConflict
	}
	order.Status = target
	order.DriverID = driverID
	order.Version++
	f.history = append(f.history, *entry)
	return nil
}

func (f *fakeOrderRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	driver, ok := f.drivers[driverID]
	if !ok {
		return nil, apperrors.ErrDriverNotFound
	}
	copied := *driver
	return &copied, nil
}

func (f *fakeOrderRepo) SaveProofOfDelivery(ctx context.Context, pod *models.ProofOfDelivery) error {
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentMethod(ctx context.Context, orderID uuid.UUID, method models.PaymentMethod) error {
	return nil
}

type noopOrderGW struct{}

func (noopOrderGW) PublishStatusChanged(ctx context.Context, event models.OrderStatusChangedEvent) error {
	return nil
}

func (noopOrderGW) PublishPushNotification(ctx context.Context, event models.PushNotificationEvent) error {
	return nil
}

type noopDispatchGW struct{}

func (noopDispatchGW) PublishOrderAssigned(ctx context.Context, result models.AssignmentResult) error {
	return nil
}

func TestAssign_ConcurrentExclusivity(t *testing.T) {
	repo := newFakeOrderRepo()
	cfg := testConfig()

	orderID := uuid.New()
	repo.orders[orderID] = &models.Order{
		ID:      orderID,
		Status:  models.OrderStatusPending,
		Version: 1,
	}

	const contenders = 20
	driverIDs := make([]uuid.UUID, contenders)
	for i := range driverIDs {
		driverIDs[i] = uuid.New()
		repo.drivers[driverIDs[i]] = &models.Driver{
			ID:          driverIDs[i],
			IsAvailable: true,
		}
	}

	orderUC := ordersuc.NewOrderUC(cfg, repo, noopOrderGW{})
	uc := NewDispatchUC(cfg, orderUC, nil, noopDispatchGW{})

	results := make([]*models.AssignmentResult, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = uc.Assign(context.Background(), models.AssignmentPair{
				OrderID:  orderID,
				DriverID: driverIDs[i],
			}, "dispatcher:race")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, r := range results {
		if r.Success {
			winners++
		} else {
			assert.Equal(t, models.AssignErrAlreadyAssigned, r.Error)
		}
	}
	assert.Equal(t, 1, winners, "exactly one contender must win the assignment")

	final, err := repo.GetOrder(context.Background(), orderID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusAssigned, final.Status)
	assert.NotNil(t, final.DriverID)
	assert.Len(t, repo.history, 1)
}
