package ports

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

type TagRepository interface {
	List(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Tag, error)
	// ExistingIDs returns the subset of ids that belong to stored tags.
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, tag domain.Tag) error
	Update(ctx context.Context, tag domain.Tag) error
	// Delete removes the tag and every association referencing it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type TagService interface {
	ListTags(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (domain.Tag, error)
	CreateTag(ctx context.Context, in domain.CreateTagInput) (domain.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, in domain.UpdateTagInput) (domain.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}
