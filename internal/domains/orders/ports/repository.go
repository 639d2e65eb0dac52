package ports

import (
	"context"
	"errors"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders and exposes the owner-scoped listing the policy
// engine filters by.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Order, error)
	ListByCreatedBy(ctx context.Context, username string) ([]*domain.Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
