package ports

import (
	"context"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// HouseRepository persists listings and retrieves them newest-first.
// An empty status (or domain.StatusFilterAll) means no filter.
type HouseRepository interface {
	Create(ctx context.Context, house *domain.House) (*domain.House, error)
	Find(ctx context.Context, status string) ([]domain.House, error)
}
