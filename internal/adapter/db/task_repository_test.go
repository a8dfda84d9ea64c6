package db_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

func (s *storeSuite) TestTaskRoundTrip() {
	description := "numbers for Q1"
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	tag := s.createTag("work")

	created := s.createTask(domain.CreateTaskInput{
		Title:       "Write report",
		Description: &description,
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
	}, tag)

	got, err := s.tasks.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal("Write report", got.Title)
	s.Equal(&description, got.Description)
	s.Equal(domain.TaskStatusPending, got.Status)
	s.Equal(domain.PriorityHigh, got.Priority)
	s.Require().NotNil(got.DueDate)
	s.True(due.Equal(*got.DueDate))
	s.Nil(got.CompletedAt)
	s.True(got.IsActive)
	s.True(created.CreatedAt.Equal(got.CreatedAt))
	s.Require().Len(got.Tags, 1)
	s.Equal(tag.ID, got.Tags[0].ID)
	s.Equal("work", got.Tags[0].Name)
}

func (s *storeSuite) TestTaskGet_NotFound() {
	_, err := s.tasks.Get(s.ctx, uuid.New())
	s.ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *storeSuite) TestTaskUpdate_PersistsFields() {
	task := s.createTask(domain.CreateTaskInput{Title: "Task"})

	task.Complete(s.tick())
	s.Require().NoError(s.tasks.Update(s.ctx, task))

	got, err := s.tasks.Get(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusCompleted, got.Status)
	s.Require().NotNil(got.CompletedAt)
	s.True(task.CompletedAt.Equal(*got.CompletedAt))

	missing := domain.NewTask(domain.CreateTaskInput{Title: "ghost"}, s.tick())
	s.ErrorIs(s.tasks.Update(s.ctx, missing), domain.ErrTaskNotFound)
}

func (s *storeSuite) TestTaskDelete_CascadesAssociations() {
	tag := s.createTag("home")
	task := s.createTask(domain.CreateTaskInput{Title: "Task"}, tag)

	s.Require().NoError(s.tasks.Delete(s.ctx, task.ID))

	_, err := s.tasks.Get(s.ctx, task.ID)
	s.ErrorIs(err, domain.ErrTaskNotFound)
	links, err := s.links.ListByTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Empty(links)
	_, err = s.tags.Get(s.ctx, tag.ID)
	s.NoError(err)

	s.ErrorIs(s.tasks.Delete(s.ctx, task.ID), domain.ErrTaskNotFound)
}

func (s *storeSuite) TestTaskList_DefaultOrderingIsNewestFirst() {
	first := s.createTask(domain.CreateTaskInput{Title: "first"})
	second := s.createTask(domain.CreateTaskInput{Title: "second"})
	third := s.createTask(domain.CreateTaskInput{Title: "third"})

	tasks, err := s.tasks.List(s.ctx, domain.TaskQuery{})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{third.ID, second.ID, first.ID}, taskIDs(tasks))
}

func (s *storeSuite) TestTaskList_Filters() {
	urgent := s.createTag("urgent")
	low := s.createTask(domain.CreateTaskInput{Title: "Low chore", Priority: domain.PriorityLow})
	high := s.createTask(domain.CreateTaskInput{Title: "High chore", Priority: domain.PriorityHigh}, urgent)
	done := s.createTask(domain.CreateTaskInput{Title: "Done chore", Priority: domain.PriorityMedium, Status: domain.TaskStatusCompleted})
	inactive := s.createTask(domain.CreateTaskInput{Title: "Hidden", IsActive: domain.Some(false)})

	status := domain.TaskStatusCompleted
	tasks, err := s.tasks.List(s.ctx, domain.TaskQuery{Status: &status})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{done.ID}, taskIDs(tasks))

	minPriority := domain.PriorityMedium
	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{PriorityMin: &minPriority, Ordering: []domain.SortField{{Field: "priority", Desc: true}}})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{high.ID, done.ID}, taskIDs(tasks))

	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{TagID: &urgent.ID})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{high.ID}, taskIDs(tasks))

	active := false
	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{IsActive: &active})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{inactive.ID}, taskIDs(tasks))

	after := low.CreatedAt.Add(time.Second)
	before := done.CreatedAt
	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{CreatedAfter: &after, CreatedBefore: &before, Ordering: []domain.SortField{{Field: "created_at"}}})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{high.ID, done.ID}, taskIDs(tasks))
}

func (s *storeSuite) TestTaskList_SearchIsCaseInsensitiveAcrossFields() {
	description := "Buy MILK and eggs"
	groceries := s.createTask(domain.CreateTaskInput{Title: "Groceries", Description: &description})
	s.createTask(domain.CreateTaskInput{Title: "Laundry"})
	percent := s.createTask(domain.CreateTaskInput{Title: "Raise 5% budget"})

	tasks, err := s.tasks.List(s.ctx, domain.TaskQuery{Search: "milk"})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{groceries.ID}, taskIDs(tasks))

	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{Search: "groceries EGGS"})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{groceries.ID}, taskIDs(tasks))

	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{Search: "5%"})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{percent.ID}, taskIDs(tasks))

	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{Search: "%"})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{percent.ID}, taskIDs(tasks))
}

func (s *storeSuite) TestTaskList_DueDateOrderingAndRange() {
	early := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	lateTask := s.createTask(domain.CreateTaskInput{Title: "late", DueDate: &late})
	earlyTask := s.createTask(domain.CreateTaskInput{Title: "early", DueDate: &early})

	tasks, err := s.tasks.List(s.ctx, domain.TaskQuery{
		DueAfter: &early,
		Ordering: []domain.SortField{{Field: "due_date"}},
	})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{earlyTask.ID, lateTask.ID}, taskIDs(tasks))

	cutoff := early.Add(24 * time.Hour)
	tasks, err = s.tasks.List(s.ctx, domain.TaskQuery{DueBefore: &cutoff})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{earlyTask.ID}, taskIDs(tasks))
}

func (s *storeSuite) TestTaskList_EagerLoadsTagsPerTask() {
	home := s.createTag("home")
	work := s.createTag("work")
	both := s.createTask(domain.CreateTaskInput{Title: "both"}, work, home)
	none := s.createTask(domain.CreateTaskInput{Title: "none"})

	tasks, err := s.tasks.List(s.ctx, domain.TaskQuery{})
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)

	byID := map[uuid.UUID]domain.Task{}
	for _, task := range tasks {
		byID[task.ID] = task
	}
	s.Equal([]uuid.UUID{home.ID, work.ID}, byID[both.ID].TagIDs())
	s.NotNil(byID[none.ID].Tags)
	s.Empty(byID[none.ID].Tags)
}

func (s *storeSuite) TestTaskList_LoadsTagsAcrossIDBatches() {
	const total = 1201
	tag := s.createTag("bulk")

	created := make([]domain.Task, 0, total)
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		for i := 0; i < total; i++ {
			task := domain.NewTask(domain.CreateTaskInput{Title: fmt.Sprintf("task %04d", i)}, s.tick())
			if err := s.tasks.Create(ctx, task); err != nil {
				return err
			}
			created = append(created, task)
		}
		for _, task := range []domain.Task{created[0], created[total-1]} {
			if err := s.links.Create(ctx, domain.NewTaskTag(task.ID, tag.ID, s.clock)); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	tasks, err := s.tasks.List(s.ctx, domain.TaskQuery{})
	s.Require().NoError(err)
	s.Require().Len(tasks, total)

	// Newest first: the last created task opens the list, the first closes it.
	s.Equal(created[total-1].ID, tasks[0].ID)
	s.Equal([]uuid.UUID{tag.ID}, tasks[0].TagIDs())
	s.Equal(created[0].ID, tasks[total-1].ID)
	s.Equal([]uuid.UUID{tag.ID}, tasks[total-1].TagIDs())
	s.Empty(tasks[total/2].Tags)
}

func taskIDs(tasks []domain.Task) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
