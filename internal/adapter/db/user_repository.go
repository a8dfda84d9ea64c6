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

const userColumns = `
  u.id,
  u.name,
  u.email,
  u.is_active,
  u.created_at,
  u.updated_at`

const getUserQuery = `SELECT` + userColumns + `
FROM users u
WHERE u.id = ?`

const insertUserQuery = `
INSERT INTO users (id, name, email, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

const updateUserQuery = `
UPDATE users
SET name = ?,
    email = ?,
    updated_at = ?
WHERE id = ?`

const deleteUserQuery = `DELETE FROM users WHERE id = ?`

var userOrderColumns = map[string]string{
	"name":       "u.name",
	"created_at": "u.created_at",
}

type UserRepository struct {
	store *Store
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context, q domain.UserQuery) ([]domain.User, error) {
	var w whereClause
	if q.IsActive != nil {
		w.add("u.is_active = ?", *q.IsActive)
	}
	w.search(q.Search, "u.name", "u.email")

	ordering := q.Ordering
	if len(ordering) == 0 {
		ordering = domain.DefaultUserOrdering
	}
	query := `SELECT` + userColumns + ` FROM users u` + w.sql() + orderBy(ordering, userOrderColumns, "u.id")

	ext := r.store.ext(ctx)
	var rows []userRow
	if err := sqlx.SelectContext(ctx, ext, &rows, ext.Rebind(query), w.args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	ext := r.store.ext(ctx)

	var row userRow
	if err := sqlx.GetContext(ctx, ext, &row, ext.Rebind(getUserQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	ext := r.store.ext(ctx)
	_, err := ext.ExecContext(ctx, ext.Rebind(insertUserQuery),
		user.ID,
		user.Name,
		user.Email,
		user.IsActive,
		user.CreatedAt.UTC(),
		user.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	ext := r.store.ext(ctx)
	res, err := ext.ExecContext(ctx, ext.Rebind(updateUserQuery),
		user.Name,
		user.Email,
		user.UpdatedAt.UTC(),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ext := r.store.ext(ctx)
	res, err := ext.ExecContext(ctx, ext.Rebind(deleteUserQuery), id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		Base: domain.Base{
			ID:        row.ID,
			CreatedAt: row.CreatedAt.UTC(),
			UpdatedAt: row.UpdatedAt.UTC(),
			IsActive:  row.IsActive,
		},
		Name:  row.Name,
		Email: row.Email,
	}
}
