package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
)

const listTaskTagsByTaskQuery = `
SELECT id, task_id, tag_id, is_active, created_at, updated_at
FROM task_tags
WHERE task_id = ?
ORDER BY created_at, id`

const insertTaskTagQuery = `
INSERT INTO task_tags (id, task_id, tag_id, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

type TaskTagRepository struct {
	store *Store
}

type linkRow struct {
	ID        uuid.UUID `db:"id"`
	TaskID    uuid.UUID `db:"task_id"`
	TagID     uuid.UUID `db:"tag_id"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.TaskTagRepository = (*TaskTagRepository)(nil)

func NewTaskTagRepository(store *Store) *TaskTagRepository {
	return &TaskTagRepository{store: store}
}

func (r *TaskTagRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TaskTag, error) {
	ext := r.store.ext(ctx)

	var rows []linkRow
	if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(listTaskTagsByTaskQuery), taskID); err != nil {
		return nil, fmt.Errorf("list task tags: %w", err)
	}

	links := make([]domain.TaskTag, 0, len(rows))
	for _, row := range rows {
		links = append(links, domain.TaskTag{
			Base: domain.Base{
				ID:        row.ID,
				CreatedAt: row.CreatedAt.UTC(),
				UpdatedAt: row.UpdatedAt.UTC(),
				IsActive:  row.IsActive,
			},
			TaskID: row.TaskID,
			TagID:  row.TagID,
		})
	}
	return links, nil
}

func (r *TaskTagRepository) Create(ctx context.Context, link domain.TaskTag) error {
	ext := r.store.ext(ctx)
	_, err := ext.ExecContext(ctx, ext.Rebind(insertTaskTagQuery),
		link.ID,
		link.TaskID,
		link.TagID,
		link.IsActive,
		link.CreatedAt.UTC(),
		link.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("task %s already linked to tag %s: %w", link.TaskID, link.TagID, domain.ErrConflict)
		}
		return fmt.Errorf("insert task tag: %w", err)
	}
	return nil
}

func (r *TaskTagRepository) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	ext := r.store.ext(ctx)
	if _, err := ext.ExecContext(ctx, ext.Rebind(deleteTaskTagsByTaskQuery), taskID); err != nil {
		return fmt.Errorf("delete task tags: %w", err)
	}
	return nil
}
