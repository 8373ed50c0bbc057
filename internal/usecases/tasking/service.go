// Package tasking manages per-client follow-up tasks. Listing degrades to
// a static mock list without a backing store; creating and updating
// require one.
package tasking

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/log"
)

var (
	// ErrDatabaseNotConfigured means task writes have nowhere to go.
	ErrDatabaseNotConfigured = errors.New("backing store not configured")

	// ErrInvalidPayload wraps schema validation failures.
	ErrInvalidPayload = errors.New("invalid task payload")

	// ErrTaskNotFound means no task matched the client, advisor and task id.
	ErrTaskNotFound = errors.New("task not found")
)

// CreateRequest is the schema for a new task. Status always starts OPEN.
type CreateRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
}

// UpdateRequest carries the optional fields of a task update. Any status
// transition is accepted.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	DueDate     *string `json:"dueDate"`
}

// Manager is the task contract consumed by the handlers.
type Manager interface {
	List(ctx context.Context, clientID string) ([]domain.ClientTask, error)
	Create(ctx context.Context, clientID string, request CreateRequest) (*domain.ClientTask, error)
	Update(ctx context.Context, clientID, taskID string, request UpdateRequest) (*domain.ClientTask, error)
}

type Service struct {
	taskRepository repository.TaskRepository
	validate       *validator.Validate
}

func NewService(taskRepo repository.TaskRepository) Manager {
	return &Service{
		taskRepository: taskRepo,
		validate:       validator.New(),
	}
}

// List returns the client's tasks, newest first. Without a store, or when
// the query fails, the static mock list filtered to the client is served.
func (s *Service) List(ctx context.Context, clientID string) ([]domain.ClientTask, error) {
	if s.taskRepository == nil {
		return mockTasksFor(clientID), nil
	}

	tasks, err := s.taskRepository.ListByClient(ctx, advisor.FromContext(ctx), clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("clientID", clientID).
			Warn("client_tasks query failed, returning mock data")
		return mockTasksFor(clientID), nil
	}

	return tasks, nil
}

func (s *Service) Create(ctx context.Context, clientID string, request CreateRequest) (*domain.ClientTask, error) {
	if s.taskRepository == nil {
		return nil, ErrDatabaseNotConfigured
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	return s.taskRepository.Create(ctx, advisor.FromContext(ctx), domain.ClientTask{
		ClientID:    clientID,
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
	})
}

func (s *Service) Update(ctx context.Context, clientID, taskID string, request UpdateRequest) (*domain.ClientTask, error) {
	if s.taskRepository == nil {
		return nil, ErrDatabaseNotConfigured
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	task, err := s.taskRepository.Update(ctx, advisor.FromContext(ctx), clientID, taskID, repository.TaskUpdate{
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		DueDate:     request.DueDate,
	})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func strPtr(s string) *string { return &s }

func mockTasksFor(clientID string) []domain.ClientTask {
	today := time.Now().UTC().Format("2006-01-02")

	mockTasks := []domain.ClientTask{
		{
			ID:          "task-1",
			ClientID:    "CLT-001",
			Title:       "Rebalance mutual fund allocation",
			Description: strPtr("Shift profits from outperforming schemes into conservative debt to lock gains."),
			Status:      domain.TaskStatusOpen,
			DueDate:     &today,
		},
		{
			ID:          "task-2",
			ClientID:    "CLT-001",
			Title:       "Loan EMI strategy review",
			Description: strPtr("Evaluate rate switch for LAP to reduce monthly outflow by 80 bps."),
			Status:      domain.TaskStatusInProgress,
		},
	}

	filtered := []domain.ClientTask{}
	for _, task := range mockTasks {
		if task.ClientID == clientID {
			filtered = append(filtered, task)
		}
	}

	return filtered
}
