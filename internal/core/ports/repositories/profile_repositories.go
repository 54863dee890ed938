package repositories

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// ProfileRepositoryFacade stores one profile per user.
type ProfileRepositoryFacade interface {
	// FindProfileByUserID returns apperrors.ErrNotFound when the user has no profile yet.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)

	// UpsertProfile inserts the profile or replaces the stored one for the same user.
	// created_at and setup_status of an existing row are kept.
	UpsertProfile(ctx context.Context, profile domain.Profile) error
}
