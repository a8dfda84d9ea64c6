package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
)

type TaskService struct {
	tx             ports.Transactor
	taskRepository ports.TaskRepository
	associations   *AssociationManager
	now            func() time.Time
}

func NewTaskService(
	tx ports.Transactor,
	taskRepository ports.TaskRepository,
	tagRepository ports.TagRepository,
	links ports.TaskTagRepository,
	opts ...Option,
) *TaskService {
	o := buildOptions(opts)
	return &TaskService{
		tx:             tx,
		taskRepository: taskRepository,
		associations:   NewAssociationManager(tx, tagRepository, links, opts...),
		now:            o.now,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	if q.Status != nil && !q.Status.Valid() {
		return nil, domain.NewValidationError("status", "invalid")
	}
	if len(q.Ordering) == 0 {
		q.Ordering = domain.DefaultTaskOrdering
	}
	return s.taskRepository.List(ctx, q)
}

func (s *TaskService) ListPendingTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	return s.ListTasks(ctx, q.WithStatus(domain.TaskStatusPending))
}

func (s *TaskService) ListCompletedTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	return s.ListTasks(ctx, q.WithStatus(domain.TaskStatusCompleted))
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	if err := in.Validate(); err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(in, s.now())

	var created domain.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.taskRepository.Create(ctx, task); err != nil {
			return err
		}
		if err := s.associations.Attach(ctx, task.ID, in.TagIDs); err != nil {
			return err
		}

		var err error
		created, err = s.taskRepository.Get(ctx, task.ID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

// UpdateTask applies a partial update. Tags are replaced only when
// in.TagIDs is set; an empty set clears them.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, in domain.UpdateTaskInput) (domain.Task, error) {
	if err := in.Validate(); err != nil {
		return domain.Task{}, err
	}

	var updated domain.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.Get(ctx, id)
		if err != nil {
			return err
		}

		task.Apply(in, s.now())
		if err := s.taskRepository.Update(ctx, task); err != nil {
			return err
		}

		if tagIDs, ok := in.TagIDs.Get(); ok {
			if err := s.associations.ReplaceAll(ctx, task.ID, tagIDs); err != nil {
				return err
			}
		}

		updated, err = s.taskRepository.Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	var completed domain.Task
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.Get(ctx, id)
		if err != nil {
			return err
		}

		task.Complete(s.now())
		if err := s.taskRepository.Update(ctx, task); err != nil {
			return err
		}

		completed = task
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return completed, nil
}

var _ ports.TaskService = (*TaskService)(nil)
