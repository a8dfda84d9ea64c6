package mapper

import (
	"time"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: copyString(task.Description),
		Status:      string(task.Status),
		Priority:    task.Priority,
		Tags:        ToTagItems(task.Tags),
		TagList:     make([]string, 0, len(task.Tags)),
		IsActive:    task.IsActive,
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),
		DueDate:     formatTimePtr(task.DueDate),
		CompletedAt: formatTimePtr(task.CompletedAt),
	}

	for _, id := range task.TagIDs() {
		item.TagList = append(item.TagList, id.String())
	}

	return item
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := formatTime(*value)
	return &formatted
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
