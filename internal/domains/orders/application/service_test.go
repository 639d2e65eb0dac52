package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
	seq    []int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := *order
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
		f.seq = append(f.seq, clone.ID)
	}
	f.orders[clone.ID] = &clone
	return &clone, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, id := range f.seq {
		if o, ok := f.orders[id]; ok {
			clone := *o
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (f *fakeOrderRepo) ListByCreatedBy(ctx context.Context, username string) ([]*domain.Order, error) {
	all, _ := f.List(ctx)
	var list []*domain.Order
	for _, o := range all {
		if o.CreatedBy == username {
			list = append(list, o)
		}
	}
	return list, nil
}

func (f *fakeOrderRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.orders[id]
	return ok, nil
}

func newTestService(repo ports.Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func seedOrder(t *testing.T, svc *Service, owner, status string) *domain.Order {
	t.Helper()
	saved, err := svc.Create(context.Background(), &domain.Order{
		CustomerName: "Jane Doe",
		ProductName:  "Mouse",
		Quantity:     2,
		Price:        24.99,
		Status:       status,
	}, owner)
	require.NoError(t, err)
	return saved
}

func TestCreate_DefaultsStatusAndOwner(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())

	saved, err := svc.Create(context.Background(), &domain.Order{
		ID:           99,
		CustomerName: "Jane Doe",
		ProductName:  "Mouse",
		Quantity:     2,
		Price:        24.99,
		CreatedBy:    "someone-else",
	}, "jane")
	require.NoError(t, err)
	require.Equal(t, int64(1), saved.ID, "caller-supplied id must be discarded")
	require.Equal(t, domain.StatusPending, saved.Status)
	require.Equal(t, "jane", saved.CreatedBy)
	require.False(t, saved.OrderDate.IsZero())
}

func TestCreate_KeepsExplicitStatus(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())

	saved := seedOrder(t, svc, "jane", "Shipped")
	require.Equal(t, "Shipped", saved.Status)
}

func TestListFor_FiltersByOwnerUnlessAdmin(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	seedOrder(t, svc, "jane", "")
	seedOrder(t, svc, "john", "")
	seedOrder(t, svc, "jane", "Shipped")

	mine, err := svc.ListFor(context.Background(), "jane", false)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		require.Equal(t, "jane", o.CreatedBy)
	}

	all, err := svc.ListFor(context.Background(), "jane", true)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestGetFor_EnforcesOwnership(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	saved := seedOrder(t, svc, "jane", "")

	_, err := svc.GetFor(context.Background(), saved.ID, "john", false)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetFor(context.Background(), saved.ID, "jane", false)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)

	got, err = svc.GetFor(context.Background(), saved.ID, "john", true)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)

	_, err = svc.GetFor(context.Background(), 404, "jane", false)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdate_ReplacesFieldsButNotOwnership(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	saved := seedOrder(t, svc, "jane", "")

	updated, err := svc.Update(context.Background(), saved.ID, &domain.Order{
		ID:           777,
		CustomerName: "Jane D.",
		ProductName:  "Trackball",
		Quantity:     1,
		Price:        54.99,
		Status:       "Shipped",
		OrderDate:    time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		CreatedBy:    "mallory",
	})
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, "jane", updated.CreatedBy, "createdBy is immutable")
	require.Equal(t, "Trackball", updated.ProductName)
	require.Equal(t, "Shipped", updated.Status)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	_, err := svc.Update(context.Background(), 404, &domain.Order{})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	saved := seedOrder(t, svc, "jane", "")

	require.NoError(t, svc.Delete(context.Background(), saved.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), saved.ID), ports.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	saved := seedOrder(t, svc, "jane", "Delivered")

	_, err := svc.UpdateStatus(context.Background(), saved.ID, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	// Arbitrary values are accepted, regardless of the current status.
	updated, err := svc.UpdateStatus(context.Background(), saved.ID, "On Hold")
	require.NoError(t, err)
	require.Equal(t, "On Hold", updated.Status)

	_, err = svc.UpdateStatus(context.Background(), 404, "Shipped")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCancel_OwnerTransitions(t *testing.T) {
	cases := []struct {
		status  string
		wantErr error
	}{
		{status: "", wantErr: nil},
		{status: "Pending", wantErr: nil},
		{status: "pending", wantErr: nil},
		{status: "Shipped", wantErr: ErrConflict},
		{status: "Delivered", wantErr: ErrConflict},
		{status: "Cancelled", wantErr: ErrConflict},
		{status: "CANCELLED", wantErr: ErrConflict},
	}
	for _, tc := range cases {
		t.Run("status="+tc.status, func(t *testing.T) {
			repo := newFakeOrderRepo()
			svc := newTestService(repo)
			saved := seedOrder(t, svc, "jane", tc.status)

			got, err := svc.Cancel(context.Background(), saved.ID, "jane", false)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, domain.StatusCancelled, got.Status)
		})
	}
}

func TestCancel_AdminTransitions(t *testing.T) {
	for _, status := range []string{"Pending", "Shipped", "Delivered"} {
		t.Run("status="+status, func(t *testing.T) {
			svc := newTestService(newFakeOrderRepo())
			saved := seedOrder(t, svc, "jane", status)

			got, err := svc.Cancel(context.Background(), saved.ID, "admin", true)
			require.NoError(t, err)
			require.Equal(t, domain.StatusCancelled, got.Status)
		})
	}

	t.Run("already cancelled", func(t *testing.T) {
		svc := newTestService(newFakeOrderRepo())
		saved := seedOrder(t, svc, "jane", "Cancelled")

		_, err := svc.Cancel(context.Background(), saved.ID, "admin", true)
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestCancel_OwnershipAndNotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	saved := seedOrder(t, svc, "jane", "")

	_, err := svc.Cancel(context.Background(), saved.ID, "john", false)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Cancel(context.Background(), 404, "jane", false)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCancel_SecondCallConflicts(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())
	saved := seedOrder(t, svc, "jane", "")

	first, err := svc.Cancel(context.Background(), saved.ID, "jane", false)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, first.Status)

	_, err = svc.Cancel(context.Background(), saved.ID, "jane", false)
	require.ErrorIs(t, err, ErrConflict)
}
