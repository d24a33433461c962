package service

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/pillbox-tracker/records-api/internal/core/domain"
	"github.com/pillbox-tracker/records-api/internal/core/ports"
)

type PillboxService struct {
	repo     ports.PillboxRepository
	patients ports.PatientRepository
	replay   ports.BatchReplayStore
	audit    ports.AuditLog
	logger   zerolog.Logger
}

// NewPillboxService wires the pillbox use cases. replay may be nil, in which
// case idempotency keys are ignored.
func NewPillboxService(
	repo ports.PillboxRepository,
	patients ports.PatientRepository,
	replay ports.BatchReplayStore,
	audit ports.AuditLog,
	logger zerolog.Logger,
) *PillboxService {
	if audit == nil {
		audit = NopAuditLog
	}
	return &PillboxService{
		repo:     repo,
		patients: patients,
		replay:   replay,
		audit:    audit,
		logger:   logger,
	}
}

// CreatePillboxes returns a sequence that commits one unowned pillbox per
// step, in order. Records committed before a failure stay committed. The
// sequence is single-use: ranging over it a second time yields nothing.
func (s *PillboxService) CreatePillboxes(ctx context.Context, in ports.CreatePillboxesInput) iter.Seq2[*domain.Pillbox, error] {
	var consumed atomic.Bool
	return func(yield func(*domain.Pillbox, error) bool) {
		if consumed.Swap(true) {
			return
		}
		if in.Count < 0 {
			yield(nil, fmt.Errorf("create pillboxes: count must not be negative, got %d", in.Count))
			return
		}

		if replayed, ok := s.recall(ctx, in.IdempotencyKey); ok {
			s.logger.Info().Str("idempotency_key", in.IdempotencyKey).Int("count", len(replayed)).Msg("idempotent replay")
			if in.OnReplay != nil {
				in.OnReplay()
			}
			for _, id := range replayed {
				p, err := s.repo.FindByID(ctx, id)
				if err != nil {
					yield(nil, fmt.Errorf("replay pillboxes: %w", err))
					return
				}
				if !yield(p, nil) {
					return
				}
			}
			return
		}

		ids := make([]int64, 0, in.Count)
		for i := 0; i < in.Count; i++ {
			p, err := s.repo.Create(ctx)
			if err != nil {
				s.logger.Error().Err(err).Int("committed", len(ids)).Int("requested", in.Count).Msg("failed to create pillbox")
				yield(nil, fmt.Errorf("create pillboxes: %w", err))
				return
			}
			ids = append(ids, p.ID)
			audit(ctx, s.audit, s.logger, domain.RecordEvent{Entity: domain.EntityPillbox, RecordID: p.ID, Action: domain.ActionCreated})
			if !yield(p, nil) {
				return
			}
		}

		s.logger.Info().Int("count", len(ids)).Msg("pillboxes created")
		s.remember(ctx, in.IdempotencyKey, ids)
	}
}

func (s *PillboxService) recall(ctx context.Context, key string) ([]int64, bool) {
	if key == "" || s.replay == nil {
		return nil, false
	}
	ids, found, err := s.replay.Recall(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("replay lookup failed, creating anyway")
		return nil, false
	}
	return ids, found
}

func (s *PillboxService) remember(ctx context.Context, key string, ids []int64) {
	if key == "" || s.replay == nil {
		return
	}
	if err := s.replay.Remember(ctx, key, ids); err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store replay key")
	}
}

func (s *PillboxService) GetPillbox(ctx context.Context, id int64) (*domain.Pillbox, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pillbox: %w", err)
	}
	return p, nil
}

func (s *PillboxService) ListPillboxes(ctx context.Context) ([]*domain.Pillbox, error) {
	ps, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pillboxes: %w", err)
	}
	return ps, nil
}

// AssignOwner points an existing pillbox at an existing patient. Both
// references are verified first, so a failed call leaves the pillbox as it was.
func (s *PillboxService) AssignOwner(ctx context.Context, id, ownerID int64) (*domain.Pillbox, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("assign pillbox owner: %w", err)
	}
	if _, err := s.patients.FindByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("assign pillbox owner: %w", err)
	}

	updated, err := s.repo.AssignOwner(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("assign pillbox owner: %w", err)
	}

	s.logger.Info().Int64("pillbox_id", id).Int64("owner_id", ownerID).Msg("pillbox assigned")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{
		Entity:   domain.EntityPillbox,
		RecordID: id,
		Action:   domain.ActionAssigned,
		RefID:    ownerID,
	})
	return updated, nil
}

func (s *PillboxService) DeletePillbox(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete pillbox: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete pillbox: %w", err)
	}

	s.logger.Info().Int64("pillbox_id", id).Msg("pillbox deleted")
	audit(ctx, s.audit, s.logger, domain.RecordEvent{Entity: domain.EntityPillbox, RecordID: id, Action: domain.ActionDeleted})
	return nil
}
