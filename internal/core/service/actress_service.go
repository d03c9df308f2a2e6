package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

// ActressService implements the performer catalog: the same
// create/validate/persist/list pattern as houses.
type ActressService struct {
	repo     ports.ActressRepository
	activity ActivityRecorder
	logger   zerolog.Logger
}

func NewActressService(repo ports.ActressRepository, activity ActivityRecorder, logger zerolog.Logger) *ActressService {
	return &ActressService{repo: repo, activity: activity, logger: logger}
}

func (s *ActressService) List(ctx context.Context) ([]domain.Actress, error) {
	return s.repo.FindAll(ctx)
}

// Create validates and persists a catalog entry. The five profile
// fields are required under the same zero-is-absent policy as houses.
func (s *ActressService) Create(ctx context.Context, input ports.CreateActressInput) (*domain.Actress, error) {
	if input.FullName == "" || input.BirthDate.IsZero() || input.Nationality == "" ||
		input.ExperienceYears == 0 || input.MainGenre == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	actress := &domain.Actress{
		FullName:        input.FullName,
		BirthDate:       input.BirthDate,
		Nationality:     input.Nationality,
		ExperienceYears: input.ExperienceYears,
		MainGenre:       input.MainGenre,
		AwardsCount:     input.AwardsCount,
		Agency:          input.Agency,
		Languages:       input.Languages,
		SalaryPerMovie:  input.SalaryPerMovie,
		LastProject:     input.LastProject,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, actress)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create actress")
		return nil, err
	}

	s.logger.Info().Str("actress_id", created.ID).Str("full_name", created.FullName).Msg("actress created")

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Action:     domain.ActivityActressCreated,
			EntityID:   created.ID,
			EntityName: created.FullName,
			OccurredAt: now,
		})
	}
	return created, nil
}
