package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
)

func TestTrack_AddsFiveDayEstimate(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo)

	orderDate := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	saved, err := svc.Create(context.Background(), &domain.Order{
		CustomerName: "Jane Doe",
		ProductName:  "Mouse",
		Quantity:     2,
		Price:        24.99,
		OrderDate:    orderDate,
	}, "jane")
	require.NoError(t, err)

	tracking, err := svc.Track(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "1", tracking.OrderID)
	require.Equal(t, "Jane Doe", tracking.CustomerName)
	require.Equal(t, domain.StatusPending, tracking.Status)
	require.Equal(t, "2024-03-15T14:30:00", tracking.EstimatedDelivery)
	_ = saved
}

func TestTrack_MissingOrderDate(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo)

	// A zero order date can only appear through a full update.
	saved, err := svc.Create(context.Background(), &domain.Order{CustomerName: "Jane Doe"}, "jane")
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), saved.ID, &domain.Order{CustomerName: "Jane Doe", Status: "Pending"})
	require.NoError(t, err)

	tracking, err := svc.Track(context.Background(), "1")
	require.NoError(t, err)
	require.Empty(t, tracking.EstimatedDelivery)
}

func TestTrack_NonNumericID(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())

	_, err := svc.Track(context.Background(), "abc")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTrack_NotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo())

	_, err := svc.Track(context.Background(), "42")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
