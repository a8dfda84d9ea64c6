package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

type Task struct {
	Base
	Title       string
	Description *string
	Status      TaskStatus
	Priority    int
	DueDate     *time.Time
	CompletedAt *time.Time
	Tags        []Tag
}

// TagIDs returns the ids of the tags attached to the task, in tag order.
func (t Task) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    int
	DueDate     *time.Time
	IsActive    Optional[bool]
	TagIDs      []uuid.UUID
}

func (in CreateTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return NewValidationError("status", "invalid")
	}
	return nil
}

// NewTask builds a task from creation input. The status falls back to
// pending and completed_at always starts empty.
func NewTask(in CreateTaskInput, now time.Time) Task {
	task := Task{
		Base:        NewBase(now),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if task.Status == "" {
		task.Status = TaskStatusPending
	}
	task.IsActive = in.IsActive.Or(true)
	return task
}

// UpdateTaskInput is a partial update. Unset fields are left untouched.
// TagIDs set to an empty slice clears every tag.
type UpdateTaskInput struct {
	Title       Optional[string]
	Description Optional[*string]
	Status      Optional[TaskStatus]
	Priority    Optional[int]
	DueDate     Optional[*time.Time]
	IsActive    Optional[bool]
	TagIDs      Optional[[]uuid.UUID]
}

func (in UpdateTaskInput) Validate() error {
	if title, ok := in.Title.Get(); ok && strings.TrimSpace(title) == "" {
		return NewValidationError("title", "required")
	}
	if status, ok := in.Status.Get(); ok && !status.Valid() {
		return NewValidationError("status", "invalid")
	}
	return nil
}

// Apply writes the provided fields onto the task. Any status may replace
// any other, and completed_at is left alone even when status becomes
// completed: only Complete stamps it.
func (t *Task) Apply(in UpdateTaskInput, now time.Time) {
	if title, ok := in.Title.Get(); ok {
		t.Title = strings.TrimSpace(title)
	}
	if description, ok := in.Description.Get(); ok {
		t.Description = description
	}
	if status, ok := in.Status.Get(); ok {
		t.Status = status
	}
	if priority, ok := in.Priority.Get(); ok {
		t.Priority = priority
	}
	if dueDate, ok := in.DueDate.Get(); ok {
		t.DueDate = dueDate
	}
	if isActive, ok := in.IsActive.Get(); ok {
		t.IsActive = isActive
	}
	t.Touch(now)
}

// Complete marks the task completed at now. Calling it again refreshes
// completed_at.
func (t *Task) Complete(now time.Time) {
	t.Status = TaskStatusCompleted
	completedAt := now
	t.CompletedAt = &completedAt
	t.Touch(now)
}
