package ports

import (
	"context"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// AuthRepository defines the interface for credential persistence.
// Callers pass logins already normalized; the implementation must
// reject duplicates with domain.ErrLoginTaken via a storage-level
// uniqueness guarantee.
type AuthRepository interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
