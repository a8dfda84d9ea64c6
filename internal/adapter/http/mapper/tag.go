package mapper

import (
	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/core/domain"
)

func ToTagItems(tags []domain.Tag) []dto.TagItem {
	items := make([]dto.TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, ToTagItem(tag))
	}
	return items
}

func ToTagItem(tag domain.Tag) dto.TagItem {
	return dto.TagItem{
		ID:          tag.ID.String(),
		Name:        tag.Name,
		Description: copyString(tag.Description),
		IsActive:    tag.IsActive,
		CreatedAt:   formatTime(tag.CreatedAt),
		UpdatedAt:   formatTime(tag.UpdatedAt),
	}
}
