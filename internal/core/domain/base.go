package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and lifecycle fields shared by every stored entity.
type Base struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
}

func NewBase(now time.Time) Base {
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}
}

// Touch marks the entity as modified at now.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now
}
