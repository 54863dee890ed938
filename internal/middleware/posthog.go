package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamp-org/kamp_backend/internal/utils"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// requestEvent is the single event name for request-level tracking. Domain
// events such as application_submitted are sent by the services.
const requestEvent = "api_request"

// PosthogMiddleware creates a Gin middleware handler that tracks API requests with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		principal := GetPrincipal(c)
		if principal.IsAnonymous() {
			return
		}

		route := c.FullPath()
		if route == "" {
			return
		}

		props := map[string]any{
			"route":       route,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"role":        string(principal.Role),
		}
		if principal.OrganizationID != "" {
			props["organization_id"] = principal.OrganizationID
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(principal.ID, requestEvent, props)
	}
}
