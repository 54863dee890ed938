package services

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/dto"
)

// MemberScopeSvc resolves which organization a principal may manage
type MemberScopeSvc interface {
	// ResolveScope returns the organization ID principal manages, or apperrors.ErrForbidden.
	ResolveScope(ctx context.Context, principal *domain.Principal) (string, error)
}

// MemberManagementSvc defines member CRUD inside a resolved scope
type MemberManagementSvc interface {
	ListMembers(ctx context.Context, principal *domain.Principal) ([]domain.OrganizationMember, error)
	CreateMember(ctx context.Context, principal *domain.Principal, req dto.CreateMemberRequest) (*domain.OrganizationMember, error)
	UpdateMember(ctx context.Context, principal *domain.Principal, memberID string, req dto.UpdateMemberRequest) (*domain.OrganizationMember, error)
	DeleteMember(ctx context.Context, principal *domain.Principal, memberID string) error
}

// MemberAuthSvc authenticates organization members
type MemberAuthSvc interface {
	// AuthenticateMember verifies credentials. organizationID may be empty.
	AuthenticateMember(ctx context.Context, email, password, organizationID string) (*domain.OrganizationMember, error)
}

// MemberSvcFacade combines all member-related service interfaces
type MemberSvcFacade interface {
	MemberScopeSvc
	MemberManagementSvc
	MemberAuthSvc
}
