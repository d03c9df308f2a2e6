package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists queued
// trail entries.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process writes one trail entry. The trail is best-effort relative to
// the catalog write that triggered it; callers log failures and move on.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.ActivityEntry{
		Action:     in.Action,
		EntityID:   in.EntityID,
		EntityName: in.EntityName,
		OccurredAt: in.OccurredAt,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("action", in.Action).
		Str("entity_id", in.EntityID).
		Msg("activity recorded")
	return nil
}
