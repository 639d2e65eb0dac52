package mapper

import (
	"time"

	ordersdomain "github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
	ordersports "github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
)

// Order is the transport-layer shape of an order.
type Order struct {
	ID           int64      `json:"id"`
	CustomerName string     `json:"customerName"`
	ProductName  string     `json:"productName"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
	Status       string     `json:"status,omitempty"`
	OrderDate    *time.Time `json:"orderDate,omitempty"`
	CreatedBy    string     `json:"createdBy,omitempty"`
}

// StatusPatch is the body of PATCH /api/orders/{id}/status.
type StatusPatch struct {
	Status string `json:"status"`
}

// Tracking is the public tracking projection returned by GET /track/{orderId}.
type Tracking struct {
	OrderID           string `json:"orderId"`
	CustomerName      string `json:"customerName"`
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
}

// ToDomainOrder converts a transport order into the domain model.
func ToDomainOrder(order Order) *ordersdomain.Order {
	result := &ordersdomain.Order{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		Price:        order.Price,
		Status:       order.Status,
		CreatedBy:    order.CreatedBy,
	}
	if order.OrderDate != nil {
		result.OrderDate = *order.OrderDate
	}
	return result
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	result := Order{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		Price:        order.Price,
		Status:       order.Status,
		CreatedBy:    order.CreatedBy,
	}
	if !order.OrderDate.IsZero() {
		orderDate := order.OrderDate
		result.OrderDate = &orderDate
	}
	return result
}

// FromDomainOrders converts a slice of domain orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}

// FromTracking converts the tracking projection.
func FromTracking(tracking *ordersports.Tracking) Tracking {
	if tracking == nil {
		return Tracking{}
	}
	return Tracking{
		OrderID:           tracking.OrderID,
		CustomerName:      tracking.CustomerName,
		Status:            tracking.Status,
		EstimatedDelivery: tracking.EstimatedDelivery,
	}
}
