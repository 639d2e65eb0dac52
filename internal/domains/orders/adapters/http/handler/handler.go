// Package handler exposes the order use cases over JSON/HTTP.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/http/mapper"
	"github.com/ordertrack/order-tracking-api/internal/domains/orders/application"
	"github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
	apperrors "github.com/ordertrack/order-tracking-api/internal/shared/errors"
	"github.com/ordertrack/order-tracking-api/internal/shared/principal"
)

// OrderHandler adapts gin requests to the order service.
type OrderHandler struct {
	service  ports.Service
	problems *apperrors.Responder
}

func NewOrderHandler(service ports.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		problems: apperrors.NewResponder(mapOrderError),
	}
}

func mapOrderError(err error) (apperrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return apperrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrForbidden):
		return apperrors.ErrForbidden.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrConflict):
		return apperrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrInvalidInput):
		return apperrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apperrors.ProblemDetail{}, false
}

// Create handles POST /api/orders. Admins may place an order on behalf of
// another user by supplying createdBy; everyone else owns what they create.
func (h *OrderHandler) Create(c *gin.Context) {
	caller, ok := principal.From(c)
	if !ok {
		h.problems.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	var body mapper.Order
	if err := c.ShouldBindJSON(&body); err != nil {
		h.problems.Respond(c, apperrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	owner := caller.Username
	if caller.Admin && strings.TrimSpace(body.CreatedBy) != "" {
		owner = body.CreatedBy
	}
	created, err := h.service.Create(c.Request.Context(), mapper.ToDomainOrder(body), owner)
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromDomainOrder(created))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	caller, ok := principal.From(c)
	if !ok {
		h.problems.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	orders, err := h.service.ListFor(c.Request.Context(), caller.Username, caller.Admin)
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrders(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	caller, ok := principal.From(c)
	if !ok {
		h.problems.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	order, err := h.service.GetFor(c.Request.Context(), id, caller.Username, caller.Admin)
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(order))
}

// Update handles PUT /api/orders/:id. The route is admin-only; the service
// itself performs no ownership check on full updates.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	var body mapper.Order
	if err := c.ShouldBindJSON(&body); err != nil {
		h.problems.Respond(c, apperrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, mapper.ToDomainOrder(body))
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(updated))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	var body mapper.StatusPatch
	if err := c.ShouldBindJSON(&body); err != nil {
		h.problems.Respond(c, apperrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	updated, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(updated))
}

// Cancel handles PATCH /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	caller, ok := principal.From(c)
	if !ok {
		h.problems.Respond(c, apperrors.ErrUnauthorized)
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	cancelled, err := h.service.Cancel(c.Request.Context(), id, caller.Username, caller.Admin)
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(cancelled))
}

// Track handles the public GET /track/:orderId. The raw id is forwarded
// verbatim so the service can reject non-numeric input.
func (h *OrderHandler) Track(c *gin.Context) {
	tracking, err := h.service.Track(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromTracking(tracking))
}

func (h *OrderHandler) orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.problems.Respond(c, apperrors.ErrBadRequest.WithDetail("order id must be numeric"))
		return 0, false
	}
	return id, true
}
