package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/utils"
)

const tasksTable = "client_tasks"

// TaskUpdate carries the optional fields of a task update. Nil fields are
// left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
}

// TaskRepository manages per-client follow-up tasks.
type TaskRepository interface {
	ListByClient(ctx context.Context, advisorID, clientID string) ([]domain.ClientTask, error)
	Create(ctx context.Context, advisorID string, task domain.ClientTask) (*domain.ClientTask, error)
	Update(ctx context.Context, advisorID, clientID, taskID string, update TaskUpdate) (*domain.ClientTask, error)
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) ListByClient(ctx context.Context, advisorID, clientID string) ([]domain.ClientTask, error) {
	tasksSQL, args, err := squirrel.
		Select("id, client_id, title, description, status, due_date").
		From(tasksTable).
		Where(squirrel.Eq{"client_id": clientID, "advisor_id": advisorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, tasksSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.ClientTask, 0)

	for rows.Next() {
		task := domain.ClientTask{}
		if err := rows.Scan(
			&task.ID,
			&task.ClientID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.DueDate,
		); err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, advisorID string, task domain.ClientTask) (*domain.ClientTask, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate task id")
	}

	insertSQL, args, err := squirrel.
		Insert(tasksTable).
		Columns("id", "client_id", "advisor_id", "title", "description", "status", "due_date").
		Values(id, task.ClientID, advisorID, task.Title, task.Description, domain.TaskStatusOpen, task.DueDate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, args...); err != nil {
		return nil, errors.Wrap(err, "failed to insert task")
	}

	created := task
	created.ID = id
	created.Status = domain.TaskStatusOpen

	return &created, nil
}

func (r *taskRepository) Update(ctx context.Context, advisorID, clientID, taskID string, update TaskUpdate) (*domain.ClientTask, error) {
	queryBuilder := squirrel.
		Update(tasksTable).
		Where(squirrel.Eq{"id": taskID, "client_id": clientID, "advisor_id": advisorID}).
		Suffix("RETURNING id, client_id, title, description, status, due_date").
		PlaceholderFormat(squirrel.Dollar)

	if update.Title != nil {
		queryBuilder = queryBuilder.Set("title", *update.Title)
	}

	if update.Description != nil {
		queryBuilder = queryBuilder.Set("description", *update.Description)
	}

	if update.Status != nil {
		queryBuilder = queryBuilder.Set("status", *update.Status)
	}

	if update.DueDate != nil {
		queryBuilder = queryBuilder.Set("due_date", *update.DueDate)
	}

	updateSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	task := &domain.ClientTask{}
	if err := r.conn.QueryRowContext(ctx, updateSQL, args...).Scan(
		&task.ID,
		&task.ClientID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.DueDate,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}
