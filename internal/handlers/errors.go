package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError writes the status and body matching err.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var dupApp *domain.DuplicateApplicationError
	if errors.As(err, &dupApp) {
		c.JSON(http.StatusConflict, dto.DuplicateApplicationResponse{
			Error:       "You have already applied to this project",
			Application: dupApp.Existing,
		})
		return
	}
	var dupEmail *apperrors.DuplicateEmailError
	if errors.As(err, &dupEmail) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: dupEmail.Error()})
		return
	}

	status, fallback := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status, fallback = http.StatusBadRequest, "Invalid request"
	case errors.Is(err, apperrors.ErrInvalidTransition):
		status, fallback = http.StatusConflict, "Invalid status transition"
	case errors.Is(err, apperrors.ErrConflict):
		status, fallback = http.StatusConflict, "Resource was modified concurrently, please retry"
	case errors.Is(err, apperrors.ErrDuplicate):
		status, fallback = http.StatusConflict, "Resource already exists"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, fallback = http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, apperrors.ErrForbidden):
		status, fallback = http.StatusForbidden, "Access denied"
	case errors.Is(err, apperrors.ErrNotFound):
		status, fallback = http.StatusNotFound, "Resource not found"
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}

	msg := fallback
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: msg})
}

// bindJSON binds the request body and writes a 400 on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return false
	}
	return true
}
