package ports

import (
	"context"

	"github.com/uybor/uybor-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
}

// PasswordHasher turns plaintext into a salted one-way hash and checks
// candidates against it. Implementations never log or return the
// plaintext.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenManager issues and verifies self-contained bearer tokens that
// carry the subject user id and an expiry.
type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
