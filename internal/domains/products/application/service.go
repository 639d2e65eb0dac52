package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ordertrack/order-tracking-api/internal/domains/products/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/products/ports"
)

// Service validates and normalizes products before they reach the store.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create stores a validated product. Name, description, and image URL are
// trimmed; a missing creation timestamp defaults to now; any caller-supplied
// id is discarded.
func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := validate(product); err != nil {
		return nil, err
	}
	clone := *product
	clone.ID = 0
	clone.Name = strings.TrimSpace(clone.Name)
	clone.Description = strings.TrimSpace(clone.Description)
	clone.ImageURL = strings.TrimSpace(clone.ImageURL)
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = s.now()
	}
	return s.repo.Save(ctx, &clone)
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func validate(product *domain.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrBlankName)
	}
	if strings.TrimSpace(product.Description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrBlankDescription)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrNegativePrice)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
