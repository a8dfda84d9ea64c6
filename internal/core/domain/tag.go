package domain

import (
	"strings"
	"time"
)

type Tag struct {
	Base
	Name        string
	Description *string
}

type CreateTagInput struct {
	Name        string
	Description *string
	IsActive    Optional[bool]
}

func (in CreateTagInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name", "required")
	}
	return nil
}

func NewTag(in CreateTagInput, now time.Time) Tag {
	tag := Tag{
		Base:        NewBase(now),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	tag.IsActive = in.IsActive.Or(true)
	return tag
}

type UpdateTagInput struct {
	Name        Optional[string]
	Description Optional[*string]
	IsActive    Optional[bool]
}

func (in UpdateTagInput) Validate() error {
	if name, ok := in.Name.Get(); ok && strings.TrimSpace(name) == "" {
		return NewValidationError("name", "required")
	}
	return nil
}

func (t *Tag) Apply(in UpdateTagInput, now time.Time) {
	if name, ok := in.Name.Get(); ok {
		t.Name = strings.TrimSpace(name)
	}
	if description, ok := in.Description.Get(); ok {
		t.Description = description
	}
	if isActive, ok := in.IsActive.Get(); ok {
		t.IsActive = isActive
	}
	t.Touch(now)
}
