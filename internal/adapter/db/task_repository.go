package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
)

const taskColumns = `
  t.id,
  t.title,
  t.description,
  t.status,
  t.priority,
  t.due_date,
  t.completed_at,
  t.is_active,
  t.created_at,
  t.updated_at`

const getTaskQuery = `SELECT` + taskColumns + `
FROM tasks t
WHERE t.id = ?`

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, priority, due_date, completed_at, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const updateTaskQuery = `
UPDATE tasks
SET title = ?,
    description = ?,
    status = ?,
    priority = ?,
    due_date = ?,
    completed_at = ?,
    is_active = ?,
    updated_at = ?
WHERE id = ?`

const deleteTaskTagsByTaskQuery = `DELETE FROM task_tags WHERE task_id = ?`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`

// Tags reachable through active associations, for a batch of tasks.
const listTagsForTasksQuery = `
SELECT
  tt.task_id AS task_id,
  g.id,
  g.name,
  g.description,
  g.is_active,
  g.created_at,
  g.updated_at
FROM task_tags tt
JOIN tags g ON g.id = tt.tag_id
WHERE tt.task_id IN (?) AND tt.is_active = ?
ORDER BY g.name, g.id`

var taskOrderColumns = map[string]string{
	"created_at": "t.created_at",
	"updated_at": "t.updated_at",
	"priority":   "t.priority",
	"due_date":   "t.due_date",
}

type TaskRepository struct {
	store *Store
}

type taskRow struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    int            `db:"priority"`
	DueDate     sql.NullTime   `db:"due_date"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type taskTagRow struct {
	TaskID uuid.UUID `db:"task_id"`
	tagRow
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) List(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	var w whereClause
	if q.Status != nil {
		w.add("t.status = ?", string(*q.Status))
	}
	if q.Priority != nil {
		w.add("t.priority = ?", *q.Priority)
	}
	if q.PriorityMin != nil {
		w.add("t.priority >= ?", *q.PriorityMin)
	}
	if q.PriorityMax != nil {
		w.add("t.priority <= ?", *q.PriorityMax)
	}
	if q.IsActive != nil {
		w.add("t.is_active = ?", *q.IsActive)
	}
	if q.TagID != nil {
		w.add(
			"EXISTS (SELECT 1 FROM task_tags ft WHERE ft.task_id = t.id AND ft.tag_id = ? AND ft.is_active = ?)",
			*q.TagID, true,
		)
	}
	if q.DueAfter != nil {
		w.add("t.due_date >= ?", q.DueAfter.UTC())
	}
	if q.DueBefore != nil {
		w.add("t.due_date <= ?", q.DueBefore.UTC())
	}
	if q.CreatedAfter != nil {
		w.add("t.created_at >= ?", q.CreatedAfter.UTC())
	}
	if q.CreatedBefore != nil {
		w.add("t.created_at <= ?", q.CreatedBefore.UTC())
	}
	w.search(q.Search, "t.title", "t.description")

	ordering := q.Ordering
	if len(ordering) == 0 {
		ordering = domain.DefaultTaskOrdering
	}
	query := `SELECT` + taskColumns + ` FROM tasks t` + w.sql() + orderBy(ordering, taskOrderColumns, "t.id")

	ext := r.store.ext(ctx)
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(query), w.args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	if err := r.loadTags(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	ext := r.store.ext(ctx)

	var row taskRow
	if err := sqlx.GetContext(ctx, ext, &row, ext.Rebind(getTaskQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}

	tasks := []domain.Task{mapTaskRowToDomainTask(row)}
	if err := r.loadTags(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	ext := r.store.ext(ctx)
	_, err := ext.ExecContext(ctx, ext.Rebind(insertTaskQuery),
		task.ID,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		task.Priority,
		nullTime(task.DueDate),
		nullTime(task.CompletedAt),
		task.IsActive,
		task.CreatedAt.UTC(),
		task.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	ext := r.store.ext(ctx)
	res, err := ext.ExecContext(ctx, ext.Rebind(updateTaskQuery),
		task.Title,
		nullString(task.Description),
		string(task.Status),
		task.Priority,
		nullTime(task.DueDate),
		nullTime(task.CompletedAt),
		task.IsActive,
		task.UpdatedAt.UTC(),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		ext := r.store.ext(ctx)
		if _, err := ext.ExecContext(ctx, ext.Rebind(deleteTaskTagsByTaskQuery), id); err != nil {
			return fmt.Errorf("delete task tags: %w", err)
		}

		res, err := ext.ExecContext(ctx, ext.Rebind(deleteTaskQuery), id)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	})
}

// loadTags fills Tags on every task, one query per batch of task ids.
func (r *TaskRepository) loadTags(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]string, 0, len(tasks))
	index := make(map[uuid.UUID]int, len(tasks))
	for i, task := range tasks {
		ids = append(ids, task.ID.String())
		index[task.ID] = i
		tasks[i].Tags = []domain.Tag{}
	}

	ext := r.store.ext(ctx)
	for _, batch := range batches(ids, inBatchSize) {
		query, args, err := sqlx.In(listTagsForTasksQuery, batch, true)
		if err != nil {
			return fmt.Errorf("build task tags query: %w", err)
		}

		var rows []taskTagRow
		if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(query), args...); err != nil {
			return fmt.Errorf("load task tags: %w", err)
		}

		for _, row := range rows {
			i, ok := index[row.TaskID]
			if !ok {
				continue
			}
			tasks[i].Tags = append(tasks[i].Tags, mapTagRowToDomainTag(row.tagRow))
		}
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		Base: domain.Base{
			ID:        row.ID,
			CreatedAt: row.CreatedAt.UTC(),
			UpdatedAt: row.UpdatedAt.UTC(),
			IsActive:  row.IsActive,
		},
		Title:       row.Title,
		Description: stringPtr(row.Description),
		Status:      domain.TaskStatus(row.Status),
		Priority:    row.Priority,
		DueDate:     timePtr(row.DueDate),
		CompletedAt: timePtr(row.CompletedAt),
	}
}
