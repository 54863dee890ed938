package services

import (
	"context"
	"time"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// TokenSvcFacade issues signed session tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateMemberToken(ctx context.Context, member *domain.OrganizationMember) (string, time.Time, error)
}

// GoogleOAuthSvcFacade defines the interface for Google sign-in.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForIDToken exchanges an OAuth authorization code for the ID token Google issues with it.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns the identity it carries.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error)
}
