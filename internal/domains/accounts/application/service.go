package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
)

// Service handles account registration and principal resolution.
type Service struct {
	repo   ports.Repository
	hasher ports.PasswordHasher
}

func NewService(repo ports.Repository, hasher ports.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register creates a USER-role account for the given email. The email is
// normalized before the uniqueness check so differently-cased registrations
// collide.
func (s *Service) Register(ctx context.Context, email, rawPassword string) (*domain.Account, error) {
	username := domain.NormalizeUsername(email)
	if username == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrBlankUsername)
	}
	if strings.TrimSpace(rawPassword) == "" || len(rawPassword) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrShortPassword)
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, err
	}
	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Enabled:      true,
	}
	return s.repo.Save(ctx, account)
}

// Authenticate resolves the principal for the HTTP Basic middleware. The
// username is normalized before lookup; disabled accounts cannot log in.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.repo.GetByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !account.Enabled {
		return nil, ErrBadCredentials
	}
	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, ErrBadCredentials
	}
	return account, nil
}

var _ ports.Service = (*Service)(nil)
