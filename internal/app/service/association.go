package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/ports"
)

// AssociationManager keeps the tag set of a task in line with caller intent.
type AssociationManager struct {
	tx            ports.Transactor
	tagRepository ports.TagRepository
	links         ports.TaskTagRepository
	now           func() time.Time
}

func NewAssociationManager(
	tx ports.Transactor,
	tagRepository ports.TagRepository,
	links ports.TaskTagRepository,
	opts ...Option,
) *AssociationManager {
	o := buildOptions(opts)
	return &AssociationManager{
		tx:            tx,
		tagRepository: tagRepository,
		links:         links,
		now:           o.now,
	}
}

// Attach links every tag in tagIDs to the task, skipping tags that are
// already linked.
func (m *AssociationManager) Attach(ctx context.Context, taskID uuid.UUID, tagIDs []uuid.UUID) error {
	ids := domain.UniqueIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}

	return m.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := m.resolve(ctx, ids); err != nil {
			return err
		}

		existing, err := m.links.ListByTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("list task tags: %w", err)
		}
		linked := make(map[uuid.UUID]struct{}, len(existing))
		for _, link := range existing {
			linked[link.TagID] = struct{}{}
		}

		now := m.now()
		for _, id := range ids {
			if _, ok := linked[id]; ok {
				continue
			}
			if err := m.links.Create(ctx, domain.NewTaskTag(taskID, id, now)); err != nil {
				return fmt.Errorf("attach tag %s: %w", id, err)
			}
		}
		return nil
	})
}

// ReplaceAll makes tagIDs the exact tag set of the task. Either the whole
// new set is stored or the previous one is kept.
func (m *AssociationManager) ReplaceAll(ctx context.Context, taskID uuid.UUID, tagIDs []uuid.UUID) error {
	ids := domain.UniqueIDs(tagIDs)

	return m.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := m.resolve(ctx, ids); err != nil {
			return err
		}

		if err := m.links.DeleteByTask(ctx, taskID); err != nil {
			return fmt.Errorf("clear task tags: %w", err)
		}

		now := m.now()
		for _, id := range ids {
			if err := m.links.Create(ctx, domain.NewTaskTag(taskID, id, now)); err != nil {
				return fmt.Errorf("attach tag %s: %w", id, err)
			}
		}
		return nil
	})
}

func (m *AssociationManager) resolve(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := m.tagRepository.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}
	known := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &domain.ReferenceError{Field: "tag_ids", IDs: missing}
	}
	return nil
}
