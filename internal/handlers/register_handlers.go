package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamp-org/kamp_backend/cmd/docs"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/middleware"
	"github.com/kamp-org/kamp_backend/internal/platform/config"
	"github.com/kamp-org/kamp_backend/internal/platform/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const fallbackLoginRate = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	registerAuthRoutes(r, services, loginRateLimit(cfg))

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

func loginRateLimit(cfg *config.Config) gin.HandlerFunc {
	l, err := middleware.NewLoginLimiter(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid login rate limit, using fallback",
			slog.String("rate", cfg.LoginRateLimit), slog.String("fallback", fallbackLoginRate))
		l, _ = middleware.NewLoginLimiter(fallbackLoginRate)
	}
	return middleware.RateLimit(l)
}

// setupAPIV1Routes configures the /api/v1 groups and delegates to specific entity route registrations.
// public accepts anonymous callers, authed requires a token and admin requires the Admin role.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1", middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	authed := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	admin := authed.Group("", middleware.RequireAdmin())

	registerProjectRoutes(public, authed, admin, services.Project)
	registerApplicationRoutes(authed, admin, services.Application)
	registerDonationRoutes(authed, services.Donation)
	registerMemberRoutes(authed, services.Member)
	registerUserRoutes(authed, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
