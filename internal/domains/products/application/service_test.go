package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ordertrack/order-tracking-api/internal/domains/products/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/products/ports"
)

type fakeProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*domain.Product{}}
}

func (f *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	clone := *product
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.products[clone.ID] = &clone
	return &clone, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	var list []*domain.Product
	for _, p := range f.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}

func TestCreate_TrimsAndDefaults(t *testing.T) {
	svc := NewService(newFakeProductRepo())
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	saved, err := svc.Create(context.Background(), &domain.Product{
		ID:          42,
		Name:        "  Wireless Earbuds  ",
		Description: " Noise-cancelling earbuds. ",
		Price:       59.99,
		Featured:    true,
		ImageURL:    " https://example.com/earbuds.jpg ",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), saved.ID, "caller-supplied id must be discarded")
	require.Equal(t, "Wireless Earbuds", saved.Name)
	require.Equal(t, "Noise-cancelling earbuds.", saved.Description)
	require.Equal(t, "https://example.com/earbuds.jpg", saved.ImageURL)
	require.Equal(t, now, saved.CreatedAt)
	require.True(t, saved.Featured)
}

func TestCreate_KeepsExplicitCreatedAt(t *testing.T) {
	svc := NewService(newFakeProductRepo())
	createdAt := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	saved, err := svc.Create(context.Background(), &domain.Product{
		Name:        "Hub",
		Description: "USB-C hub",
		Price:       39.75,
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
	require.Equal(t, createdAt, saved.CreatedAt)
}

func TestCreate_Validation(t *testing.T) {
	cases := []struct {
		name    string
		product domain.Product
		wantErr error
	}{
		{name: "blank name", product: domain.Product{Name: "  ", Description: "d", Price: 1}, wantErr: domain.ErrBlankName},
		{name: "blank description", product: domain.Product{Name: "n", Description: "", Price: 1}, wantErr: domain.ErrBlankDescription},
		{name: "negative price", product: domain.Product{Name: "n", Description: "d", Price: -0.01}, wantErr: domain.ErrNegativePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(newFakeProductRepo())
			_, err := svc.Create(context.Background(), &tc.product)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreate_ZeroPriceAllowed(t *testing.T) {
	svc := NewService(newFakeProductRepo())

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Sticker", Description: "Free sticker", Price: 0})
	require.NoError(t, err)
	require.Zero(t, saved.Price)
}

func TestList(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo)
	_, err := svc.Create(context.Background(), &domain.Product{Name: "A", Description: "a", Price: 1})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &domain.Product{Name: "B", Description: "b", Price: 2})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}
