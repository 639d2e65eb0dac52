package mapper

import (
	"time"

	productsdomain "github.com/ordertrack/order-tracking-api/internal/domains/products/domain"
)

// Product is the transport-layer shape of a catalog product. Price and
// Featured are pointers so the handler can tell "absent" from zero values.
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       *float64   `json:"price"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// ToDomainProduct converts a transport product into the domain model.
// A missing featured flag defaults to true.
func ToDomainProduct(product Product) *productsdomain.Product {
	result := &productsdomain.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Featured:    true,
		ImageURL:    product.ImageURL,
	}
	if product.Price != nil {
		result.Price = *product.Price
	}
	if product.CreatedAt != nil {
		result.CreatedAt = *product.CreatedAt
	}
	if product.Featured != nil {
		result.Featured = *product.Featured
	}
	return result
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *productsdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	price := product.Price
	featured := product.Featured
	result := Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       &price,
		Featured:    &featured,
		ImageURL:    product.ImageURL,
	}
	if !product.CreatedAt.IsZero() {
		createdAt := product.CreatedAt
		result.CreatedAt = &createdAt
	}
	return result
}

// FromDomainProducts converts a slice of domain products.
func FromDomainProducts(products []*productsdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
