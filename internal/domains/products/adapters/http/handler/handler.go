// Package handler exposes the catalog use cases over JSON/HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ordertrack/order-tracking-api/internal/domains/products/adapters/http/mapper"
	"github.com/ordertrack/order-tracking-api/internal/domains/products/application"
	"github.com/ordertrack/order-tracking-api/internal/domains/products/ports"
	apperrors "github.com/ordertrack/order-tracking-api/internal/shared/errors"
)

// ProductHandler adapts gin requests to the catalog service.
type ProductHandler struct {
	service  ports.Service
	problems *apperrors.Responder
}

func NewProductHandler(service ports.Service) *ProductHandler {
	return &ProductHandler{
		service:  service,
		problems: apperrors.NewResponder(mapProductError),
	}
}

func mapProductError(err error) (apperrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return apperrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrInvalidInput):
		return apperrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apperrors.ProblemDetail{}, false
}

// Create handles POST /api/products (admin-only route).
func (h *ProductHandler) Create(c *gin.Context) {
	var body mapper.Product
	if err := c.ShouldBindJSON(&body); err != nil {
		h.problems.Respond(c, apperrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	if body.Price == nil {
		h.problems.Respond(c, apperrors.ErrValidation.WithDetail("product price is required"))
		return
	}
	created, err := h.service.Create(c.Request.Context(), mapper.ToDomainProduct(body))
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainProduct(created))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainProducts(products))
}
