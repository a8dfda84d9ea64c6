package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
)

type TagService struct {
	tx            ports.Transactor
	tagRepository ports.TagRepository
	now           func() time.Time
}

func NewTagService(tx ports.Transactor, tagRepository ports.TagRepository, opts ...Option) *TagService {
	o := buildOptions(opts)
	return &TagService{tx: tx, tagRepository: tagRepository, now: o.now}
}

func (s *TagService) ListTags(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error) {
	if len(q.Ordering) == 0 {
		q.Ordering = domain.DefaultTagOrdering
	}
	return s.tagRepository.List(ctx, q)
}

func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (domain.Tag, error) {
	return s.tagRepository.Get(ctx, id)
}

func (s *TagService) CreateTag(ctx context.Context, in domain.CreateTagInput) (domain.Tag, error) {
	if err := in.Validate(); err != nil {
		return domain.Tag{}, err
	}

	tag := domain.NewTag(in, s.now())
	if err := s.tagRepository.Create(ctx, tag); err != nil {
		return domain.Tag{}, err
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id uuid.UUID, in domain.UpdateTagInput) (domain.Tag, error) {
	if err := in.Validate(); err != nil {
		return domain.Tag{}, err
	}

	var updated domain.Tag
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		tag, err := s.tagRepository.Get(ctx, id)
		if err != nil {
			return err
		}

		tag.Apply(in, s.now())
		if err := s.tagRepository.Update(ctx, tag); err != nil {
			return err
		}

		updated = tag
		return nil
	})
	if err != nil {
		return domain.Tag{}, err
	}
	return updated, nil
}

// DeleteTag removes the tag; tasks that carried it keep existing.
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return s.tagRepository.Delete(ctx, id)
}

var _ ports.TagService = (*TagService)(nil)
