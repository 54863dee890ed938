package services

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetAccount retrieves a user with its profile, which may be nil.
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates an Organization or Individual account.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile changes the caller's own name or email and creates or
	// updates their profile.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.Account, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a verified Google identity to an Individual user.
	FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
