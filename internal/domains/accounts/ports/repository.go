package ports

import (
	"context"
	"errors"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/domain"
)

var ErrNotFound = errors.New("account not found")

// Repository persists login accounts keyed by their normalized username.
type Repository interface {
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Count(ctx context.Context) (int64, error)
}
