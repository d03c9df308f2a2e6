package ports

import (
	"context"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// CreateHouseInput carries the fields a client may submit for a new
// listing. Optional fields left zero receive documented defaults.
type CreateHouseInput struct {
	Image    string
	Name     string
	Category string
	Price    float64
	Currency string
	Rooms    int
	Year     int
	Area     float64
	AreaUnit string
	Status   string
}

type HouseService interface {
	List(ctx context.Context, status string) ([]domain.House, error)
	Create(ctx context.Context, input CreateHouseInput) (*domain.House, error)
}
