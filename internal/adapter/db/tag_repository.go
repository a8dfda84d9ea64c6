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

const tagColumns = `
  g.id,
  g.name,
  g.description,
  g.is_active,
  g.created_at,
  g.updated_at`

const getTagQuery = `SELECT` + tagColumns + `
FROM tags g
WHERE g.id = ?`

const existingTagIDsQuery = `SELECT g.id FROM tags g WHERE g.id IN (?)`

const insertTagQuery = `
INSERT INTO tags (id, name, description, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

const updateTagQuery = `
UPDATE tags
SET name = ?,
    description = ?,
    is_active = ?,
    updated_at = ?
WHERE id = ?`

const deleteTaskTagsByTagQuery = `DELETE FROM task_tags WHERE tag_id = ?`

const deleteTagQuery = `DELETE FROM tags WHERE id = ?`

var tagOrderColumns = map[string]string{
	"name":       "g.name",
	"created_at": "g.created_at",
}

type TagRepository struct {
	store *Store
}

type tagRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TagRepository = (*TagRepository)(nil)

func NewTagRepository(store *Store) *TagRepository {
	return &TagRepository{store: store}
}

func (r *TagRepository) List(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error) {
	var w whereClause
	if q.Name != "" {
		w.contains(q.Name, "g.name")
	}
	if q.IsActive != nil {
		w.add("g.is_active = ?", *q.IsActive)
	}
	if q.CreatedAfter != nil {
		w.add("g.created_at >= ?", q.CreatedAfter.UTC())
	}
	if q.CreatedBefore != nil {
		w.add("g.created_at <= ?", q.CreatedBefore.UTC())
	}
	w.search(q.Search, "g.name", "g.description")

	ordering := q.Ordering
	if len(ordering) == 0 {
		ordering = domain.DefaultTagOrdering
	}
	query := `SELECT` + tagColumns + ` FROM tags g` + w.sql() + orderBy(ordering, tagOrderColumns, "g.id")

	ext := r.store.ext(ctx)
	var rows []tagRow
	if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(query), w.args...); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, mapTagRowToDomainTag(row))
	}
	return tags, nil
}

func (r *TagRepository) Get(ctx context.Context, id uuid.UUID) (domain.Tag, error) {
	ext := r.store.ext(ctx)

	var row tagRow
	if err := sqlx.GetContext(ctx, ext, &row, ext.Rebind(getTagQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Tag{}, domain.ErrTagNotFound
		}
		return domain.Tag{}, fmt.Errorf("get tag: %w", err)
	}
	return mapTagRowToDomainTag(row), nil
}

func (r *TagRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	ext := r.store.ext(ctx)
	found := make([]uuid.UUID, 0, len(ids))
	for _, batch := range batches(values, inBatchSize) {
		query, args, err := sqlx.In(existingTagIDsQuery, batch)
		if err != nil {
			return nil, fmt.Errorf("build existing tags query: %w", err)
		}

		var rows []uuid.UUID
		if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("select existing tags: %w", err)
		}
		found = append(found, rows...)
	}
	return found, nil
}

func (r *TagRepository) Create(ctx context.Context, tag domain.Tag) error {
	ext := r.store.ext(ctx)
	_, err := ext.ExecContext(ctx, ext.Rebind(insertTagQuery),
		tag.ID,
		tag.Name,
		nullString(tag.Description),
		tag.IsActive,
		tag.CreatedAt.UTC(),
		tag.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagNameTaken
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *TagRepository) Update(ctx context.Context, tag domain.Tag) error {
	ext := r.store.ext(ctx)
	res, err := ext.ExecContext(ctx, ext.Rebind(updateTagQuery),
		tag.Name,
		nullString(tag.Description),
		tag.IsActive,
		tag.UpdatedAt.UTC(),
		tag.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagNameTaken
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		ext := r.store.ext(ctx)
		if _, err := ext.ExecContext(ctx, ext.Rebind(deleteTaskTagsByTagQuery), id); err != nil {
			return fmt.Errorf("delete tag links: %w", err)
		}

		res, err := ext.ExecContext(ctx, ext.Rebind(deleteTagQuery), id)
		if err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return domain.ErrTagNotFound
		}
		return nil
	})
}

func mapTagRowToDomainTag(row tagRow) domain.Tag {
	return domain.Tag{
		Base: domain.Base{
			ID:        row.ID,
			CreatedAt: row.CreatedAt.UTC(),
			UpdatedAt: row.UpdatedAt.UTC(),
			IsActive:  row.IsActive,
		},
		Name:        row.Name,
		Description: stringPtr(row.Description),
	}
}
