package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// principalKey is the key used to store the authenticated principal in the request context.
const principalKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the principal.
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c *gin.Context) *domain.Principal {
	p, _ := c.Request.Context().Value(principalKey).(*domain.Principal)
	return p
}

// GetUserIDFromContext retrieves the authenticated principal ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p := GetPrincipal(c)
	if p.IsAnonymous() {
		return "", false
	}
	return p.ID, true
}
