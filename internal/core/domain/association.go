package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskTag links one task to one tag. The (TaskID, TagID) pair is unique.
type TaskTag struct {
	Base
	TaskID uuid.UUID
	TagID  uuid.UUID
}

func NewTaskTag(taskID, tagID uuid.UUID, now time.Time) TaskTag {
	return TaskTag{
		Base:   NewBase(now),
		TaskID: taskID,
		TagID:  tagID,
	}
}

// UniqueIDs drops duplicates while keeping first-seen order.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
