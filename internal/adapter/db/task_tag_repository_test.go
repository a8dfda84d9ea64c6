package db_test

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

func (s *storeSuite) TestTaskTagCreate_DuplicatePairConflicts() {
	tag := s.createTag("once")
	task := s.createTask(domain.CreateTaskInput{Title: "Task"}, tag)

	err := s.links.Create(s.ctx, domain.NewTaskTag(task.ID, tag.ID, s.tick()))
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *storeSuite) TestTaskTagDeleteByTask() {
	a := s.createTag("a")
	b := s.createTag("b")
	task := s.createTask(domain.CreateTaskInput{Title: "Task"}, a, b)
	other := s.createTask(domain.CreateTaskInput{Title: "Other"}, a)

	links, err := s.links.ListByTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Len(links, 2)

	s.Require().NoError(s.links.DeleteByTask(s.ctx, task.ID))

	links, err = s.links.ListByTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Empty(links)

	links, err = s.links.ListByTask(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Len(links, 1)
}

func (s *storeSuite) TestWithinTx_RollsBackEverything() {
	a := s.createTag("a")
	task := s.createTask(domain.CreateTaskInput{Title: "Task"}, a)
	boom := errors.New("boom")

	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		if err := s.links.DeleteByTask(ctx, task.ID); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.tasks.Get(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{a.ID}, got.TagIDs())
}

func (s *storeSuite) TestWithinTx_NestedCallsJoin() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		tag := domain.NewTag(domain.CreateTagInput{Name: "nested"}, s.tick())
		return s.store.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.tags.Create(ctx, tag); err != nil {
				return err
			}
			_, err := s.tags.Get(ctx, tag.ID)
			return err
		})
	})
	s.Require().NoError(err)

	tags, err := s.tags.List(s.ctx, domain.TagQuery{Name: "nested"})
	s.Require().NoError(err)
	s.Len(tags, 1)
}
