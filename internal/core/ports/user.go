package ports

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context, q domain.UserQuery) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserService interface {
	ListUsers(ctx context.Context, q domain.UserQuery) ([]domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	CreateUser(ctx context.Context, in domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
