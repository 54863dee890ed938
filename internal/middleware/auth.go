package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/utils"
)

var errMissingBearer = errors.New("authorization header format must be Bearer {token}")

// AuthMiddleware creates a Gin middleware handler that requires a valid JWT.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		if GetPrincipal(c) != nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		principal, err := principalFromHeader(authHeader, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			switch {
			case errors.Is(err, errMissingBearer):
				msg = "Authorization header format must be Bearer {token}"
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "Token has expired"
			case errors.Is(err, jwt.ErrTokenNotValidYet):
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches a principal when a valid token is present.
// Missing or invalid tokens leave the request anonymous.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || GetPrincipal(c) != nil {
			c.Next()
			return
		}

		principal, err := principalFromHeader(authHeader, jwtSecret)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid optional token", slog.String("error", err.Error()))
			c.Next()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireAdmin rejects principals that are not platform administrators.
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetPrincipal(c).IsAdmin() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin role required")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

func principalFromHeader(authHeader, jwtSecret string) (*domain.Principal, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, errMissingBearer
	}

	claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("subject missing from token")
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return nil, errors.New("unknown role in token")
	}
	principal := &domain.Principal{ID: claims.Subject, Role: role}
	if role == domain.RoleOrgMember {
		if claims.OrganizationID == "" {
			return nil, errors.New("organization missing from member token")
		}
		principal.OrganizationID = claims.OrganizationID
		principal.MemberRole = domain.MemberRole(claims.MemberRole)
	}
	return principal, nil
}

func setPrincipal(c *gin.Context, principal *domain.Principal) {
	ctx := WithPrincipal(c.Request.Context(), principal)
	enrichedLogger := GetLoggerFromCtx(ctx).With(
		slog.String("user_id", principal.ID),
		slog.String("role", string(principal.Role)),
	)
	c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
}
