package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

// ActivityRecorder is the interface the catalog services use to hand a
// write off to the asynchronous trail.
type ActivityRecorder interface {
	Enqueue(input ports.ActivityInput)
}

// HouseService implements listing retrieval and creation.
type HouseService struct {
	repo     ports.HouseRepository
	activity ActivityRecorder
	logger   zerolog.Logger
}

func NewHouseService(repo ports.HouseRepository, activity ActivityRecorder, logger zerolog.Logger) *HouseService {
	return &HouseService{repo: repo, activity: activity, logger: logger}
}

// List returns listings newest-first. An empty or "all" status applies
// no filter, so soft-deleted listings come back too; that pass-through
// is the documented contract of the endpoint, not an oversight.
func (s *HouseService) List(ctx context.Context, status string) ([]domain.House, error) {
	if status == domain.StatusFilterAll {
		status = ""
	}
	return s.repo.Find(ctx, status)
}

// Create validates and persists a listing, assigning timestamps and
// defaults. Required fields are rejected when missing or zero: the
// original product treated numeric zero as absent, and that policy is
// kept as explicit behavior (see DESIGN.md).
func (s *HouseService) Create(ctx context.Context, input ports.CreateHouseInput) (*domain.House, error) {
	if input.Image == "" || input.Name == "" || input.Price == 0 ||
		input.Rooms == 0 || input.Year == 0 || input.Area == 0 {
		return nil, domain.ErrMissingFields
	}
	if err := validateHouseBounds(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	house := &domain.House{
		Image:     input.Image,
		Name:      input.Name,
		Category:  defaultString(input.Category, domain.DefaultCategory),
		Price:     input.Price,
		Currency:  defaultString(input.Currency, domain.DefaultCurrency),
		Rooms:     input.Rooms,
		Year:      input.Year,
		Area:      input.Area,
		AreaUnit:  defaultString(input.AreaUnit, domain.DefaultAreaUnit),
		Status:    domain.HouseStatus(defaultString(input.Status, string(domain.HouseStatusAll))),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, house)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create house")
		return nil, err
	}

	s.logger.Info().Str("house_id", created.ID).Str("name", created.Name).Msg("house created")

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Action:     domain.ActivityHouseCreated,
			EntityID:   created.ID,
			EntityName: created.Name,
			OccurredAt: now,
		})
	}
	return created, nil
}

func validateHouseBounds(input ports.CreateHouseInput) error {
	if len(input.Name) > domain.HouseNameMaxLen || len(input.Category) > domain.HouseCategoryMaxLen {
		return domain.ErrInvalidField
	}
	if input.Price < 0 || input.Rooms < 0 || input.Area < 0 {
		return domain.ErrInvalidField
	}
	if input.Year < domain.HouseYearMin || input.Year > domain.HouseYearMax {
		return domain.ErrInvalidField
	}
	switch input.Currency {
	case "", domain.CurrencyUSD, domain.CurrencyUZS, domain.CurrencyEUR:
	default:
		return domain.ErrInvalidField
	}
	switch input.AreaUnit {
	case "", domain.AreaUnitKv, domain.AreaUnitM2:
	default:
		return domain.ErrInvalidField
	}
	if input.Status != "" && !domain.ValidHouseStatus(domain.HouseStatus(input.Status)) {
		return domain.ErrInvalidField
	}
	return nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
