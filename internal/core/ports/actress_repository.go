package ports

import (
	"context"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// ActressRepository persists catalog entries; FindAll returns them
// newest-first.
type ActressRepository interface {
	Create(ctx context.Context, actress *domain.Actress) (*domain.Actress, error)
	FindAll(ctx context.Context) ([]domain.Actress, error)
}
