package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/platform/config"
	"github.com/kamp-org/kamp_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService signs session tokens for users and organization members.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, utils.Claims{Role: string(user.Type)}, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// GenerateMemberToken creates a JWT bound to the member, its organization and its role.
func (s *tokenService) GenerateMemberToken(ctx context.Context, member *domain.OrganizationMember) (string, time.Time, error) {
	claims := utils.Claims{
		Role:           string(domain.RoleOrgMember),
		OrganizationID: member.OrganizationID,
		MemberRole:     string(member.Role),
	}
	return utils.GenerateJWT(member.MemberID, claims, s.cfg.JWTSecret, s.cfg.MemberJWTExpiryDuration, s.cfg.JWTIssuer)
}

// idTokenValidator matches idtoken.Validate.
type idTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// googleOAuthService implements GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     idTokenValidator
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

// ExchangeCodeForIDToken exchanges an OAuth authorization code and returns the ID token issued with it.
func (s *googleOAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("google token response did not include an id_token")
	}
	return idToken, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the identity it carries.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := s.validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	return &domain.GoogleIdentity{
		Subject:       payload.Subject,
		Email:         email,
		Name:          name,
		EmailVerified: verified,
	}, nil
}
