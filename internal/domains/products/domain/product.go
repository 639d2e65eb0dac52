package domain

import (
	"errors"
	"time"
)

var (
	ErrBlankName        = errors.New("product name is required")
	ErrBlankDescription = errors.New("product description is required")
	ErrNegativePrice    = errors.New("product price must be zero or positive")
)

// Product represents an item offered through the storefront. Featured defaults
// to true so new products show up on the landing page.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	Featured    bool
	ImageURL    string
}
