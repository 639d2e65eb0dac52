// Package principal carries the authenticated caller through the request
// context. The core services never read ambient state; adapters resolve the
// principal once and pass username/admin explicitly.
package principal

import "github.com/gin-gonic/gin"

const contextKey = "ordertrack.principal"

// Principal identifies the authenticated actor performing a request.
type Principal struct {
	Username string
	Admin    bool
}

// Set stores the principal on the gin context.
func Set(c *gin.Context, p Principal) {
	c.Set(contextKey, p)
}

// From returns the principal resolved by the authentication middleware.
func From(c *gin.Context) (Principal, bool) {
	value, ok := c.Get(contextKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := value.(Principal)
	return p, ok
}
