package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "movematch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCompletionUseCase_ProcessBatch(t *testing.T) {
	t.Run("threshold is the run's UTC midnight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil)

		currentDate := time.Date(2025, 7, 29, 15, 30, 45, 0, time.UTC)
		midnight := time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC)
		requests.EXPECT().CompletableIDs(gomock.Any(), midnight, CompletionBatchSize).Return([]string{"req-1"}, nil)
		requests.EXPECT().Complete(gomock.Any(), []string{"req-1"}).Return(1, nil)

		res, err := uc.ProcessBatch(context.Background(), currentDate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RequestCount != 1 {
			t.Fatalf("expected 1 completed, got %d", res.RequestCount)
		}
	})

	t.Run("empty selection completes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil)

		requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(nil, nil)

		res, err := uc.ProcessBatch(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RequestCount != 0 {
			t.Fatalf("expected 0 completed, got %d", res.RequestCount)
		}
	})

	t.Run("stolen rows are skipped, not failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil)

		requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return([]string{"req-1", "req-2", "req-3"}, nil)
		requests.EXPECT().Complete(gomock.Any(), []string{"req-1", "req-2", "req-3"}).Return(2, nil)

		res, err := uc.ProcessBatch(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RequestCount != 2 {
			t.Fatalf("expected 2 completed, got %d", res.RequestCount)
		}
	})

	t.Run("selection error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil)

		requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(nil, errors.New("db"))

		_, err := uc.ProcessBatch(context.Background(), time.Now())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCompletionUseCase_ProcessAllBatches(t *testing.T) {
	t.Run("drains in chunks and sums the totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil).WithBatchPause(0)

		full := make([]string, CompletionBatchSize)
		for i := range full {
			full[i] = "req"
		}
		partial := make([]string, 37)
		for i := range partial {
			partial[i] = "req"
		}

		gomock.InOrder(
			requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(full, nil),
			requests.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(CompletionBatchSize, nil),
			requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(partial, nil),
			requests.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(37, nil),
			requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(nil, nil),
		)

		total, err := uc.ProcessAllBatches(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != CompletionBatchSize+37 {
			t.Fatalf("expected %d completed, got %d", CompletionBatchSize+37, total)
		}
	})

	t.Run("second run over a drained backlog is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil).WithBatchPause(0)

		requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(nil, nil)

		total, err := uc.ProcessAllBatches(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 0 {
			t.Fatalf("expected 0 completed, got %d", total)
		}
	})

	t.Run("stops after the chunk ceiling and leaves the remainder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil).WithBatchPause(0)

		full := make([]string, CompletionBatchSize)
		for i := range full {
			full[i] = "req"
		}
		requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(full, nil).Times(CompletionMaxBatches)
		requests.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(CompletionBatchSize, nil).Times(CompletionMaxBatches)

		total, err := uc.ProcessAllBatches(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != CompletionBatchSize*CompletionMaxBatches {
			t.Fatalf("expected %d completed, got %d", CompletionBatchSize*CompletionMaxBatches, total)
		}
	})

	t.Run("failed chunk aborts but keeps earlier totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil).WithBatchPause(0)

		full := make([]string, CompletionBatchSize)
		for i := range full {
			full[i] = "req"
		}
		gomock.InOrder(
			requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(full, nil),
			requests.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(CompletionBatchSize, nil),
			requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(nil, errors.New("db")),
		)

		total, err := uc.ProcessAllBatches(context.Background(), time.Now())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if total != CompletionBatchSize {
			t.Fatalf("expected %d completed before the failure, got %d", CompletionBatchSize, total)
		}
	})

	t.Run("context cancellation interrupts the pause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil).WithBatchPause(time.Minute)

		full := make([]string, CompletionBatchSize)
		for i := range full {
			full[i] = "req"
		}
		ctx, cancel := context.WithCancel(context.Background())
		requests.EXPECT().CompletableIDs(gomock.Any(), gomock.Any(), CompletionBatchSize).Return(full, nil)
		requests.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, []string) (int, error) {
				cancel()
				return CompletionBatchSize, nil
			},
		)

		total, err := uc.ProcessAllBatches(ctx, time.Now())
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if total != CompletionBatchSize {
			t.Fatalf("expected %d completed, got %d", CompletionBatchSize, total)
		}
	})
}

func TestCompletionUseCase_PendingCompletionCount(t *testing.T) {
	t.Run("cache hit skips the count query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		cache := mock_interfaces.NewMockIBacklogCache(ctrl)
		uc := NewCompletionUseCase(requests, cache)

		cache.EXPECT().GetCount(gomock.Any(), backlogCacheKey).Return(42, true, nil)

		count, err := uc.PendingCompletionCount(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 42 {
			t.Fatalf("expected 42, got %d", count)
		}
	})

	t.Run("cache miss counts and rewarms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		cache := mock_interfaces.NewMockIBacklogCache(ctrl)
		uc := NewCompletionUseCase(requests, cache)

		cache.EXPECT().GetCount(gomock.Any(), backlogCacheKey).Return(0, false, nil)
		requests.EXPECT().CountCompletable(gomock.Any(), gomock.Any()).Return(7, nil)
		cache.EXPECT().SetCount(gomock.Any(), backlogCacheKey, 7, backlogCacheTTL).Return(nil)

		count, err := uc.PendingCompletionCount(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 7 {
			t.Fatalf("expected 7, got %d", count)
		}
	})

	t.Run("cache failures are best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		cache := mock_interfaces.NewMockIBacklogCache(ctrl)
		uc := NewCompletionUseCase(requests, cache)

		cache.EXPECT().GetCount(gomock.Any(), backlogCacheKey).Return(0, false, errors.New("redis down"))
		requests.EXPECT().CountCompletable(gomock.Any(), gomock.Any()).Return(3, nil)
		cache.EXPECT().SetCount(gomock.Any(), backlogCacheKey, 3, backlogCacheTTL).Return(errors.New("redis down"))

		count, err := uc.PendingCompletionCount(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 3 {
			t.Fatalf("expected 3, got %d", count)
		}
	})

	t.Run("no cache configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil)

		requests.EXPECT().CountCompletable(gomock.Any(), gomock.Any()).Return(5, nil)

		count, err := uc.PendingCompletionCount(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 5 {
			t.Fatalf("expected 5, got %d", count)
		}
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIMoveRequestRepository(ctrl)
		uc := NewCompletionUseCase(requests, nil)

		requests.EXPECT().CountCompletable(gomock.Any(), gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.PendingCompletionCount(context.Background(), time.Now())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
