package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskapi/internal/core/domain"
)

// inlineTx runs fn directly and counts how often a transaction was asked for.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context, q domain.TaskQuery) ([]domain.Task, error) {
	args := m.Called(ctx, q)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Get(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type tagRepositoryMock struct {
	mock.Mock
}

func (m *tagRepositoryMock) List(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error) {
	args := m.Called(ctx, q)

	var tags []domain.Tag
	if value := args.Get(0); value != nil {
		tags = value.([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *tagRepositoryMock) Get(ctx context.Context, id uuid.UUID) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagRepositoryMock) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ids)

	var found []uuid.UUID
	if value := args.Get(0); value != nil {
		found = value.([]uuid.UUID)
	}
	return found, args.Error(1)
}

func (m *tagRepositoryMock) Create(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *tagRepositoryMock) Update(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *tagRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type taskTagRepositoryMock struct {
	mock.Mock
}

func (m *taskTagRepositoryMock) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.TaskTag, error) {
	args := m.Called(ctx, taskID)

	var links []domain.TaskTag
	if value := args.Get(0); value != nil {
		links = value.([]domain.TaskTag)
	}
	return links, args.Error(1)
}

func (m *taskTagRepositoryMock) Create(ctx context.Context, link domain.TaskTag) error {
	return m.Called(ctx, link).Error(0)
}

func (m *taskTagRepositoryMock) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	return m.Called(ctx, taskID).Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) List(ctx context.Context, q domain.UserQuery) ([]domain.User, error) {
	args := m.Called(ctx, q)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) Update(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// linkFor matches a TaskTag created for taskID and tagID.
func linkFor(taskID, tagID uuid.UUID) interface{} {
	return mock.MatchedBy(func(link domain.TaskTag) bool {
		return link.TaskID == taskID && link.TagID == tagID
	})
}
