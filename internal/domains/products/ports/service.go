package ports

import (
	"context"

	"github.com/ordertrack/order-tracking-api/internal/domains/products/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
