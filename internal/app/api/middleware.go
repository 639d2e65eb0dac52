package api

import (
	"github.com/gin-gonic/gin"

	accountsports "github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
	apperrors "github.com/ordertrack/order-tracking-api/internal/shared/errors"
	"github.com/ordertrack/order-tracking-api/internal/shared/principal"
)

const basicRealm = `Basic realm="order-tracking"`

// BasicAuth authenticates the request against the account store and places
// the resolved principal on the context. The API is stateless: credentials
// travel with every request.
func BasicAuth(accounts accountsports.Service) gin.HandlerFunc {
	problems := apperrors.NewResponder()
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", basicRealm)
			problems.Respond(c, apperrors.ErrUnauthorized.WithDetail("credentials required"))
			c.Abort()
			return
		}
		account, err := accounts.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			c.Header("WWW-Authenticate", basicRealm)
			problems.Respond(c, apperrors.ErrUnauthorized.WithDetail("invalid credentials"))
			c.Abort()
			return
		}
		principal.Set(c, principal.Principal{Username: account.Username, Admin: account.IsAdmin()})
		c.Next()
	}
}

// RequireAdmin guards routes reserved for the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	problems := apperrors.NewResponder()
	return func(c *gin.Context) {
		caller, ok := principal.From(c)
		if !ok || !caller.Admin {
			problems.Respond(c, apperrors.ErrForbidden.WithDetail("admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
