// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/mock"
	"github.com/morshues/msync/models"
)

// stubExecutor — простой исполнитель без mockgen: сообщает о старте через
// канал и, если block, висит до отмены контекста.
type stubExecutor struct {
	started chan models.SyncTask
	block   bool
}

func (s *stubExecutor) Execute(ctx context.Context, task models.SyncTask) {
	if s.started != nil {
		s.started <- task
	}
	if s.block {
		<-ctx.Done()
	}
}

func newTestEnqueuer(ctrl *gomock.Controller, exec *stubExecutor) (*enqueuer, *mock.MockTaskRepository) {
	mockTasks := mock.NewMockTaskRepository(ctrl)
	e := NewEnqueuer(mockTasks, func() TransferExecutor { return exec }, logger.Nop()).(*enqueuer)
	return e, mockTasks
}

func TestEnqueuer_Enqueue_MarksStartedWithHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := &stubExecutor{started: make(chan models.SyncTask, 1)}
	e, mockTasks := newTestEnqueuer(ctrl, exec)
	ctx := context.Background()
	task := models.SyncTask{ID: 5, FolderPath: "/photos", Direction: models.DirectionUpload}

	var marked string
	mockTasks.EXPECT().
		MarkStarted(ctx, task.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, handle string) error {
			marked = handle
			return nil
		})

	handle, err := e.Enqueue(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, marked, handle)

	_, parseErr := uuid.Parse(handle)
	assert.NoError(t, parseErr)

	got := <-exec.started
	assert.Equal(t, task.ID, got.ID)

	e.Wait()
	assert.Zero(t, e.ActiveCount())
}

func TestEnqueuer_Enqueue_MarkStartedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := &stubExecutor{started: make(chan models.SyncTask, 1)}
	e, mockTasks := newTestEnqueuer(ctrl, exec)
	ctx := context.Background()

	mockTasks.EXPECT().
		MarkStarted(ctx, int64(5), gomock.Any()).
		Return(errors.New("db closed"))

	_, err := e.Enqueue(ctx, models.SyncTask{ID: 5})
	require.Error(t, err)

	// горутина не стартовала
	assert.Zero(t, e.ActiveCount())
	assert.Empty(t, exec.started)
}

func TestEnqueuer_Enqueue_NoExecutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := mock.NewMockTaskRepository(ctrl)
	e := NewEnqueuer(mockTasks, func() TransferExecutor { return nil }, logger.Nop())

	_, err := e.Enqueue(context.Background(), models.SyncTask{ID: 5})
	require.Error(t, err)
}

func TestEnqueuer_CancelByDirectionAndFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := &stubExecutor{started: make(chan models.SyncTask, 3), block: true}
	e, mockTasks := newTestEnqueuer(ctrl, exec)
	ctx := context.Background()

	upload := models.SyncTask{ID: 1, FolderPath: "/photos", Direction: models.DirectionUpload}
	download := models.SyncTask{ID: 2, FolderPath: "/videos", Direction: models.DirectionDownload}

	mockTasks.EXPECT().MarkStarted(ctx, upload.ID, gomock.Any()).Return(nil)
	mockTasks.EXPECT().MarkStarted(ctx, download.ID, gomock.Any()).Return(nil)

	_, err := e.Enqueue(ctx, upload)
	require.NoError(t, err)
	_, err = e.Enqueue(ctx, download)
	require.NoError(t, err)

	<-exec.started
	<-exec.started
	assert.Equal(t, 2, e.ActiveCount())

	// отмена по направлению задевает только upload
	e.CancelUploads()
	require.Eventually(t, func() bool { return e.ActiveCount() == 1 }, time.Second, time.Millisecond)

	// отмена по папке снимает оставшийся download
	e.CancelFolder("/videos")
	require.Eventually(t, func() bool { return e.ActiveCount() == 0 }, time.Second, time.Millisecond)

	e.Wait()
}

func TestEnqueuer_CancelTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := &stubExecutor{started: make(chan models.SyncTask, 1), block: true}
	e, mockTasks := newTestEnqueuer(ctrl, exec)
	ctx := context.Background()
	task := models.SyncTask{ID: 9, FolderPath: "/photos", Direction: models.DirectionDownload}

	mockTasks.EXPECT().MarkStarted(ctx, task.ID, gomock.Any()).Return(nil)

	_, err := e.Enqueue(ctx, task)
	require.NoError(t, err)
	<-exec.started

	e.CancelTask(9)
	require.Eventually(t, func() bool { return e.ActiveCount() == 0 }, time.Second, time.Millisecond)
	e.Wait()
}

func TestEnqueuer_CancelAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := &stubExecutor{started: make(chan models.SyncTask, 2), block: true}
	e, mockTasks := newTestEnqueuer(ctrl, exec)
	ctx := context.Background()

	mockTasks.EXPECT().MarkStarted(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := e.Enqueue(ctx, models.SyncTask{ID: 1, Direction: models.DirectionUpload})
	require.NoError(t, err)
	_, err = e.Enqueue(ctx, models.SyncTask{ID: 2, Direction: models.DirectionDownload})
	require.NoError(t, err)

	<-exec.started
	<-exec.started

	e.CancelAll()
	e.Wait()
	assert.Zero(t, e.ActiveCount())
}
