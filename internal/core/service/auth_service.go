package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration and login over a credential
// store, a password hasher and a token manager.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenManager
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account for the normalized login. No partial
// writes happen on any failure path: the hash is computed before the
// single insert, and a duplicate insert is rejected by the store's
// unique index.
func (s *AuthService) Register(ctx context.Context, login, password string) (*domain.User, error) {
	login = domain.NormalizeLogin(login)
	if login == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	// Fast-path duplicate check; the unique index is the authority
	// under concurrent registrations.
	if _, err := s.repo.FindByLogin(ctx, login); err == nil {
		return nil, domain.ErrLoginTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("login", created.Login).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login checks the credentials and issues a bearer token. An unknown
// login and a wrong password both surface as ErrInvalidCredentials so
// the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	login = domain.NormalizeLogin(login)
	if login == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("login", user.Login).Msg("user logged in")
	return token, user, nil
}

// UserByID resolves the subject of a verified token.
func (s *AuthService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
