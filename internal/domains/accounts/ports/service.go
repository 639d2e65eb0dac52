package ports

import (
	"context"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/domain"
)

// Service exposes account use cases to adapters.
type Service interface {
	Register(ctx context.Context, email, rawPassword string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
}
