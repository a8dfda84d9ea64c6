package db_test

import (
	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

func (s *storeSuite) TestTagCreate_DuplicateNameConflicts() {
	s.createTag("urgent")

	dup := domain.NewTag(domain.CreateTagInput{Name: "urgent"}, s.tick())
	err := s.tags.Create(s.ctx, dup)

	s.ErrorIs(err, domain.ErrTagNameTaken)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *storeSuite) TestTagUpdate() {
	tag := s.createTag("old")
	other := s.createTag("taken")

	description := "renamed"
	tag.Apply(domain.UpdateTagInput{Name: domain.Some("new"), Description: domain.Some(&description)}, s.tick())
	s.Require().NoError(s.tags.Update(s.ctx, tag))

	got, err := s.tags.Get(s.ctx, tag.ID)
	s.Require().NoError(err)
	s.Equal("new", got.Name)
	s.Equal(&description, got.Description)

	other.Apply(domain.UpdateTagInput{Name: domain.Some("new")}, s.tick())
	s.ErrorIs(s.tags.Update(s.ctx, other), domain.ErrTagNameTaken)

	ghost := domain.NewTag(domain.CreateTagInput{Name: "ghost"}, s.tick())
	s.ErrorIs(s.tags.Update(s.ctx, ghost), domain.ErrTagNotFound)
}

func (s *storeSuite) TestTagDelete_RemovesAssociationsKeepsTasks() {
	tag := s.createTag("doomed")
	keep := s.createTag("keep")
	task := s.createTask(domain.CreateTaskInput{Title: "Task"}, tag, keep)

	s.Require().NoError(s.tags.Delete(s.ctx, tag.ID))

	got, err := s.tasks.Get(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{keep.ID}, got.TagIDs())

	_, err = s.tags.Get(s.ctx, tag.ID)
	s.ErrorIs(err, domain.ErrTagNotFound)
	s.ErrorIs(s.tags.Delete(s.ctx, tag.ID), domain.ErrTagNotFound)
}

func (s *storeSuite) TestTagExistingIDs() {
	a := s.createTag("a")
	b := s.createTag("b")
	missing := uuid.New()

	found, err := s.tags.ExistingIDs(s.ctx, []uuid.UUID{a.ID, missing, b.ID})
	s.Require().NoError(err)
	s.ElementsMatch([]uuid.UUID{a.ID, b.ID}, found)

	found, err = s.tags.ExistingIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(found)
}

func (s *storeSuite) TestTagExistingIDs_ManyIDs() {
	a := s.createTag("a")
	b := s.createTag("b")

	ids := []uuid.UUID{a.ID}
	for i := 0; i < 1200; i++ {
		ids = append(ids, uuid.New())
	}
	ids = append(ids, b.ID)

	found, err := s.tags.ExistingIDs(s.ctx, ids)
	s.Require().NoError(err)
	s.ElementsMatch([]uuid.UUID{a.ID, b.ID}, found)
}

func (s *storeSuite) TestTagList() {
	work := s.createTag("work")
	home := s.createTag("Home")
	description := "errands outside"
	errands := domain.NewTag(domain.CreateTagInput{Name: "errands", Description: &description, IsActive: domain.Some(false)}, s.tick())
	s.Require().NoError(s.tags.Create(s.ctx, errands))

	tags, err := s.tags.List(s.ctx, domain.TagQuery{})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{home.ID, errands.ID, work.ID}, tagIDs(tags))

	tags, err = s.tags.List(s.ctx, domain.TagQuery{Search: "OUTSIDE"})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{errands.ID}, tagIDs(tags))

	tags, err = s.tags.List(s.ctx, domain.TagQuery{Name: "hom"})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{home.ID}, tagIDs(tags))

	inactive := false
	tags, err = s.tags.List(s.ctx, domain.TagQuery{IsActive: &inactive})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{errands.ID}, tagIDs(tags))

	tags, err = s.tags.List(s.ctx, domain.TagQuery{Ordering: []domain.SortField{{Field: "created_at", Desc: true}}})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{errands.ID, home.ID, work.ID}, tagIDs(tags))
}

func tagIDs(tags []domain.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
