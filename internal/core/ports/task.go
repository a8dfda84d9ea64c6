package ports

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

type TaskRepository interface {
	// List returns the matching tasks with their tags loaded.
	List(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error)
	// Get returns the task with its tags loaded, or domain.ErrTaskNotFound.
	Get(ctx context.Context, id uuid.UUID) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, task domain.Task) error
	// Delete removes the task and its tag associations.
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskTagRepository interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TaskTag, error)
	Create(ctx context.Context, link domain.TaskTag) error
	DeleteByTask(ctx context.Context, taskID uuid.UUID) error
}

type TaskService interface {
	ListTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error)
	ListPendingTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error)
	ListCompletedTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
	CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, in domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	CompleteTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
}
