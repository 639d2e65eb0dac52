package ports

import (
	"context"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
)

// Tracking is the public read-only view of an order.
type Tracking struct {
	OrderID           string
	CustomerName      string
	Status            string
	EstimatedDelivery string
}

// Service exposes order use cases to adapters.
type Service interface {
	Create(ctx context.Context, order *domain.Order, owner string) (*domain.Order, error)
	ListFor(ctx context.Context, username string, isAdmin bool) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetFor(ctx context.Context, id int64, username string, isAdmin bool) (*domain.Order, error)
	Update(ctx context.Context, id int64, patch *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Cancel(ctx context.Context, id int64, username string, isAdmin bool) (*domain.Order, error)
	Track(ctx context.Context, rawID string) (*Tracking, error)
}
