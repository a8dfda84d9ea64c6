package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
)

type UserService struct {
	tx             ports.Transactor
	userRepository ports.UserRepository
	now            func() time.Time
}

func NewUserService(tx ports.Transactor, userRepository ports.UserRepository, opts ...Option) *UserService {
	o := buildOptions(opts)
	return &UserService{tx: tx, userRepository: userRepository, now: o.now}
}

func (s *UserService) ListUsers(ctx context.Context, q domain.UserQuery) ([]domain.User, error) {
	if len(q.Ordering) == 0 {
		q.Ordering = domain.DefaultUserOrdering
	}
	return s.userRepository.List(ctx, q)
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.userRepository.Get(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	user := domain.NewUser(in, s.now())
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, in domain.UpdateUserInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepository.Get(ctx, id)
		if err != nil {
			return err
		}

		user.Apply(in, s.now())
		if err := s.userRepository.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepository.Delete(ctx, id)
}

var _ ports.UserService = (*UserService)(nil)
