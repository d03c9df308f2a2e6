package ports

import (
	"context"
	"time"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// CreateActressInput carries the submitted profile attributes.
type CreateActressInput struct {
	FullName        string
	BirthDate       time.Time
	Nationality     string
	ExperienceYears int
	MainGenre       string
	AwardsCount     int
	Agency          string
	Languages       []string
	SalaryPerMovie  float64
	LastProject     string
}

type ActressService interface {
	List(ctx context.Context) ([]domain.Actress, error)
	Create(ctx context.Context, input CreateActressInput) (*domain.Actress, error)
}
