// Package handler exposes account registration over HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/application"
	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
	apperrors "github.com/ordertrack/order-tracking-api/internal/shared/errors"
)

// AccountHandler adapts gin requests to the account service.
type AccountHandler struct {
	service  ports.Service
	problems *apperrors.Responder
}

func NewAccountHandler(service ports.Service) *AccountHandler {
	return &AccountHandler{
		service:  service,
		problems: apperrors.NewResponder(mapAccountError),
	}
}

func mapAccountError(err error) (apperrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, application.ErrDuplicateAccount):
		return apperrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrInvalidInput):
		return apperrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apperrors.ProblemDetail{}, false
}

// registeredAccount is the view returned after a successful registration.
// The credential hash never leaves the service.
type registeredAccount struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
}

// Register handles the public POST /register with form-encoded email and
// password fields.
func (h *AccountHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	account, err := h.service.Register(c.Request.Context(), email, password)
	if err != nil {
		h.problems.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registeredAccount{
		ID:       account.ID,
		Username: account.Username,
		Role:     account.Role,
		Enabled:  account.Enabled,
	})
}
