package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
)

// deliveryLeadTime is added to the order date to estimate delivery.
const deliveryLeadTime = 5 * 24 * time.Hour

// trackingTimeLayout renders the estimate as an ISO-8601 local date-time.
const trackingTimeLayout = "2006-01-02T15:04:05"

// Track projects an order onto its public tracking view. The raw id comes
// straight from the URL, so non-numeric input is a validation failure rather
// than a lookup miss.
func (s *Service) Track(ctx context.Context, rawID string) (*ports.Tracking, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: order id %q is not numeric", ErrInvalidInput, rawID)
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tracking := &ports.Tracking{
		OrderID:      strconv.FormatInt(order.ID, 10),
		CustomerName: order.CustomerName,
		Status:       order.Status,
	}
	if !order.OrderDate.IsZero() {
		tracking.EstimatedDelivery = order.OrderDate.Add(deliveryLeadTime).Format(trackingTimeLayout)
	}
	return tracking, nil
}
