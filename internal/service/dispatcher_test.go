// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/mock"
	"github.com/morshues/msync/models"
)

func newTestDispatcher(
	ctrl *gomock.Controller,
	maxConcurrent int,
) (
	*dispatcherService,
	*mock.MockTaskRepository,
	*mock.MockEnqueuer,
	*mock.MockSettingsService,
	*mock.MockNetworkChecker,
) {
	mockTasks := mock.NewMockTaskRepository(ctrl)
	mockEnq := mock.NewMockEnqueuer(ctrl)
	mockSettings := mock.NewMockSettingsService(ctrl)
	mockNetwork := mock.NewMockNetworkChecker(ctrl)

	d := NewDispatcherService(
		mockTasks, mockEnq, mockSettings, mockNetwork,
		maxConcurrent, time.Millisecond, logger.Nop(),
	).(*dispatcherService)

	return d, mockTasks, mockEnq, mockSettings, mockNetwork
}

func TestDispatcherService_Dispatch_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, _, mockSettings, _ := newTestDispatcher(ctrl, 3)

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeDisabled)

	require.NoError(t, d.Dispatch(context.Background()))
}

func TestDispatcherService_Dispatch_NetworkBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, _, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull)
	mockSettings.EXPECT().NetworkType().Return(models.NetworkUnmetered)
	mockNetwork.EXPECT().Allowed(models.NetworkUnmetered).Return(false)

	require.NoError(t, d.Dispatch(context.Background()))
}

func TestDispatcherService_Dispatch_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, _, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull)
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny)
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true)
	mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(0), nil)

	require.NoError(t, d.Dispatch(ctx))
}

func TestDispatcherService_Dispatch_EmptyQueueWithBusySlotsReturns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, _, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull)
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny)
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true)

	// все три слота заняты, но очередь пуста: прогон завершается сразу,
	// не опрашивая занятость слотов
	mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(0), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- d.Dispatch(ctx) }()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not return on an empty queue")
	}
}

func TestDispatcherService_Dispatch_StartsBatchWithinSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, mockEnq, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull).AnyTimes()
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny).AnyTimes()
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true).AnyTimes()

	batch := []models.SyncTask{
		{ID: 1, Direction: models.DirectionUpload},
		{ID: 2, Direction: models.DirectionDownload},
	}

	// занят один слот из трёх: запрашиваем ровно два
	gomock.InOrder(
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(2), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusInProgress).Return(int64(1), nil),
		mockTasks.EXPECT().GetPendingTasks(ctx, 2).Return(batch, nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(0), nil),
	)

	mockEnq.EXPECT().Enqueue(ctx, batch[0]).Return("handle-1", nil)
	mockEnq.EXPECT().Enqueue(ctx, batch[1]).Return("handle-2", nil)

	require.NoError(t, d.Dispatch(ctx))
}

func TestDispatcherService_Dispatch_PollsWhileSaturated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, _, mockSettings, mockNetwork := newTestDispatcher(ctrl, 2)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull).AnyTimes()
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny).AnyTimes()
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true).AnyTimes()

	gomock.InOrder(
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(1), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusInProgress).Return(int64(2), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(1), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusInProgress).Return(int64(2), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(1), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusInProgress).Return(int64(1), nil),
		mockTasks.EXPECT().GetPendingTasks(ctx, 1).Return(nil, nil),
	)

	require.NoError(t, d.Dispatch(ctx))
}

func TestDispatcherService_Dispatch_StartFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, mockEnq, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull).AnyTimes()
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny).AnyTimes()
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true).AnyTimes()

	batch := []models.SyncTask{
		{ID: 1, Direction: models.DirectionUpload},
		{ID: 2, Direction: models.DirectionUpload},
	}

	gomock.InOrder(
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(2), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusInProgress).Return(int64(0), nil),
		mockTasks.EXPECT().GetPendingTasks(ctx, 3).Return(batch, nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(0), nil),
	)

	startErr := errors.New("executor not ready")
	mockEnq.EXPECT().Enqueue(ctx, batch[0]).Return("", startErr)
	mockTasks.EXPECT().MarkFailed(ctx, int64(1), startErr.Error()).Return(nil)

	// соседняя задача всё равно стартует
	mockEnq.EXPECT().Enqueue(ctx, batch[1]).Return("handle-2", nil)

	require.NoError(t, d.Dispatch(ctx))
}

func TestDispatcherService_Dispatch_SkipsDisallowedDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, mockEnq, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeUploadOnly).AnyTimes()
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny).AnyTimes()
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true).AnyTimes()

	batch := []models.SyncTask{
		{ID: 1, Direction: models.DirectionDownload},
		{ID: 2, Direction: models.DirectionUpload},
	}

	gomock.InOrder(
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(2), nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusInProgress).Return(int64(0), nil),
		mockTasks.EXPECT().GetPendingTasks(ctx, 3).Return(batch, nil),
		mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).Return(int64(0), nil),
	)

	// download при upload-only не стартует
	mockEnq.EXPECT().Enqueue(ctx, batch[1]).Return("handle-2", nil)

	require.NoError(t, d.Dispatch(ctx))
}

func TestDispatcherService_Dispatch_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, _, _, _ := newTestDispatcher(ctrl, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, d.Dispatch(ctx), context.Canceled)
}

func TestDispatcherService_Dispatch_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockTasks, _, mockSettings, mockNetwork := newTestDispatcher(ctrl, 3)
	ctx := context.Background()

	mockSettings.EXPECT().SyncMode().Return(models.SyncModeFull)
	mockSettings.EXPECT().NetworkType().Return(models.NetworkAny)
	mockNetwork.EXPECT().Allowed(models.NetworkAny).Return(true)
	mockTasks.EXPECT().CountByStatus(ctx, models.StatusPending).
		Return(int64(0), errors.New("db closed"))

	require.Error(t, d.Dispatch(ctx))
}
