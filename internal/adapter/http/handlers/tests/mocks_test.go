package tests

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskapi/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) tasks(args mock.Arguments) ([]domain.Task, error) {
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx, q))
}

func (m *taskServiceMock) ListPendingTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx, q))
}

func (m *taskServiceMock) ListCompletedTasks(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx, q))
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uuid.UUID, in domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

type tagServiceMock struct {
	mock.Mock
}

func (m *tagServiceMock) ListTags(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error) {
	args := m.Called(ctx, q)

	var tags []domain.Tag
	if value := args.Get(0); value != nil {
		tags = value.([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *tagServiceMock) GetTag(ctx context.Context, id uuid.UUID) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) CreateTag(ctx context.Context, in domain.CreateTagInput) (domain.Tag, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) UpdateTag(ctx context.Context, id uuid.UUID, in domain.UpdateTagInput) (domain.Tag, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context, q domain.UserQuery) ([]domain.User, error) {
	args := m.Called(ctx, q)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) CreateUser(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, id uuid.UUID, in domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
