package middleware

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/model"
)

const scopeKey = "dayflow.scope"

// defaultOwnerID scopes unauthenticated requests. The app is single-user by
// default; a reverse proxy can inject X-User-ID for multi-user deployments.
const defaultOwnerID = "default"

// Owner resolves the request's owner scope from the X-User-ID header and
// stores it on the gin context for handlers to pick up.
func (m Middleware) Owner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader("X-User-ID")
		if ownerID == "" {
			ownerID = defaultOwnerID
		}
		c.Set(scopeKey, model.Scope{OwnerID: ownerID})
		c.Next()
	}
}

// GetScope returns the owner scope placed on the context by Owner.
// It falls back to the default scope so handlers never see a zero OwnerID.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{OwnerID: defaultOwnerID}
}
