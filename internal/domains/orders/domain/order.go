package domain

import (
	"errors"
	"strings"
	"time"
)

// Status values the policy engine reasons about. Status itself is free text:
// unknown values are stored as-is.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

var (
	ErrBlankStatus      = errors.New("status must not be blank")
	ErrAlreadyCancelled = errors.New("order is already cancelled")
	ErrNotCancellable   = errors.New("only pending orders can be cancelled")
)

// Order models a customer purchase tracked by the system. CreatedBy holds the
// username of the owning principal and is immutable after creation.
type Order struct {
	ID           int64
	CustomerName string
	ProductName  string
	Quantity     int
	Price        float64
	Status       string
	OrderDate    time.Time
	CreatedBy    string
}

// OwnedBy reports whether the order belongs to the given username.
func (o *Order) OwnedBy(username string) bool {
	return o.CreatedBy == username
}

// Cancelled matches the status case-insensitively.
func (o *Order) Cancelled() bool {
	return strings.EqualFold(o.Status, StatusCancelled)
}

// Cancellable reports whether a non-admin owner may still cancel the order.
// An empty status counts as pending.
func (o *Order) Cancellable() bool {
	return o.Status == "" || strings.EqualFold(o.Status, StatusPending)
}
