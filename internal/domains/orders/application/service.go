package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
)

// Service is the order policy engine: creation defaults, ownership-gated
// reads, full replacement updates, and the cancel transition guard.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create stores a new order owned by the given username. Any caller-supplied
// id is discarded, status defaults to pending, and the order date defaults to
// the current time.
func (s *Service) Create(ctx context.Context, order *domain.Order, owner string) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	clone.ID = 0
	clone.CreatedBy = owner
	if strings.TrimSpace(clone.Status) == "" {
		clone.Status = domain.StatusPending
	}
	if clone.OrderDate.IsZero() {
		clone.OrderDate = s.now()
	}
	return s.repo.Save(ctx, &clone)
}

// ListFor returns every order for admins and only the caller's own orders
// otherwise.
func (s *Service) ListFor(ctx context.Context, username string, isAdmin bool) ([]*domain.Order, error) {
	if isAdmin {
		return s.repo.List(ctx)
	}
	return s.repo.ListByCreatedBy(ctx, username)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// GetFor loads an order and enforces ownership for non-admin callers.
func (s *Service) GetFor(ctx context.Context, id int64, username string, isAdmin bool) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !order.OwnedBy(username) {
		return nil, fmt.Errorf("%w: order %d is not owned by %q", ErrForbidden, id, username)
	}
	return order, nil
}

// Update replaces every mutable field of the order identified by id.
// ID and CreatedBy are never altered. Ownership is intentionally not checked
// here: the HTTP boundary restricts full updates to admins.
func (s *Service) Update(ctx context.Context, id int64, patch *domain.Order) (*domain.Order, error) {
	if patch == nil {
		return nil, errors.New("order is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.CustomerName = patch.CustomerName
	existing.ProductName = patch.ProductName
	existing.Quantity = patch.Quantity
	existing.Price = patch.Price
	existing.Status = patch.Status
	existing.OrderDate = patch.OrderDate
	return s.repo.Save(ctx, existing)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ports.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// UpdateStatus overwrites the status unconditionally. The only check is that
// the new value is non-blank; arbitrary status strings are accepted.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrBlankStatus)
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	return s.repo.Save(ctx, order)
}

// Cancel applies the guarded any-state-to-cancelled transition. Cancelling an
// already-cancelled order always conflicts; non-admins may additionally only
// cancel orders that are still pending.
func (s *Service) Cancel(ctx context.Context, id int64, username string, isAdmin bool) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !order.OwnedBy(username) {
		return nil, fmt.Errorf("%w: order %d is not owned by %q", ErrForbidden, id, username)
	}
	if order.Cancelled() {
		return nil, fmt.Errorf("%w: %w", ErrConflict, domain.ErrAlreadyCancelled)
	}
	if !isAdmin && !order.Cancellable() {
		return nil, fmt.Errorf("%w: %w", ErrConflict, domain.ErrNotCancellable)
	}
	order.Status = domain.StatusCancelled
	return s.repo.Save(ctx, order)
}

var _ ports.Service = (*Service)(nil)
