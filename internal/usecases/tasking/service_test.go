package tasking

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/infrastructure/repository/mocks"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

func testContext() context.Context {
	return advisor.NewContext(context.Background(), "ADV-001", "TEN-001")
}

func TestList(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("no store serves the mock list filtered by client", func(t *testing.T) {
		service := NewService(nil)

		tasks, err := service.List(testContext(), "CLT-001")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Rebalance mutual fund allocation", tasks[0].Title)

		tasks, err = service.List(testContext(), "CLT-002")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("query failure degrades to the mock list", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(ctrl)
		taskRepo.EXPECT().
			ListByClient(gomock.Any(), "ADV-001", "CLT-001").
			Return(nil, errors.New("connection refused"))

		service := NewService(taskRepo)

		tasks, err := service.List(testContext(), "CLT-001")
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("store rows pass through", func(t *testing.T) {
		stored := []domain.ClientTask{{ID: "t-1", ClientID: "CLT-001", Title: "Call back", Status: domain.TaskStatusOpen}}
		taskRepo := mocks.NewMockTaskRepository(ctrl)
		taskRepo.EXPECT().
			ListByClient(gomock.Any(), "ADV-001", "CLT-001").
			Return(stored, nil)

		service := NewService(taskRepo)

		tasks, err := service.List(testContext(), "CLT-001")
		require.NoError(t, err)
		assert.Equal(t, stored, tasks)
	})
}

func TestCreate(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new task is stored under the advisor", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(ctrl)
		taskRepo.EXPECT().
			Create(gomock.Any(), "ADV-001", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, task domain.ClientTask) (*domain.ClientTask, error) {
				assert.Equal(t, "CLT-001", task.ClientID)
				assert.Equal(t, "Review insurance cover", task.Title)
				task.ID = "t-9"
				task.Status = domain.TaskStatusOpen
				return &task, nil
			})

		service := NewService(taskRepo)

		task, err := service.Create(testContext(), "CLT-001", CreateRequest{Title: "Review insurance cover"})
		require.NoError(t, err)
		assert.Equal(t, "t-9", task.ID)
		assert.Equal(t, domain.TaskStatusOpen, task.Status)
	})

	t.Run("short title is rejected", func(t *testing.T) {
		service := NewService(mocks.NewMockTaskRepository(ctrl))

		_, err := service.Create(testContext(), "CLT-001", CreateRequest{Title: "ab"})
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("no store is a configuration error", func(t *testing.T) {
		service := NewService(nil)

		_, err := service.Create(testContext(), "CLT-001", CreateRequest{Title: "Review insurance cover"})
		assert.ErrorIs(t, err, ErrDatabaseNotConfigured)
	})
}

func TestUpdate(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	status := domain.TaskStatusDone

	t.Run("status transition is applied", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(ctrl)
		taskRepo.EXPECT().
			Update(gomock.Any(), "ADV-001", "CLT-001", "t-1", repository.TaskUpdate{Status: &status}).
			Return(&domain.ClientTask{ID: "t-1", ClientID: "CLT-001", Status: status}, nil)

		service := NewService(taskRepo)

		task, err := service.Update(testContext(), "CLT-001", "t-1", UpdateRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, status, task.Status)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(ctrl)
		taskRepo.EXPECT().
			Update(gomock.Any(), "ADV-001", "CLT-001", "t-404", gomock.Any()).
			Return(nil, nil)

		service := NewService(taskRepo)

		_, err := service.Update(testContext(), "CLT-001", "t-404", UpdateRequest{Status: &status})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		bad := "ARCHIVED"
		service := NewService(mocks.NewMockTaskRepository(ctrl))

		_, err := service.Update(testContext(), "CLT-001", "t-1", UpdateRequest{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}
