package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/middleware"
	"github.com/kamp-org/kamp_backend/internal/utils"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Analytics *utils.PosthogClientWrapper
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Track sends a product analytics event when analytics is configured.
func (s *BaseService) Track(principal *domain.Principal, event string, props map[string]any) {
	if principal.IsAnonymous() {
		return
	}
	s.Analytics.Enqueue(principal.ID, event, props)
}

// RequirePrincipal fails with an unauthorized error for anonymous callers.
func (s *BaseService) RequirePrincipal(principal *domain.Principal) error {
	if principal.IsAnonymous() {
		return apperrors.NewAppError(http.StatusUnauthorized, "authentication required", apperrors.ErrUnauthorized)
	}
	return nil
}

// RequireAdmin fails unless principal is a platform administrator.
func (s *BaseService) RequireAdmin(principal *domain.Principal) error {
	if err := s.RequirePrincipal(principal); err != nil {
		return err
	}
	if !principal.IsAdmin() {
		return apperrors.NewForbiddenError("admin access required")
	}
	return nil
}
