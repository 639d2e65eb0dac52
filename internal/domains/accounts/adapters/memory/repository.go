package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory account persistence adapter keyed by the
// normalized username.
type Repository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{accounts: map[string]*domain.Account{}}
}

func (r *Repository) Save(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, errors.New("account is nil")
	}
	clone := *account
	clone.Username = domain.NormalizeUsername(clone.Username)
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.accounts[clone.Username] = &clone
	return &clone, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[domain.NormalizeUsername(username)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		clone := *account
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.accounts)), nil
}
