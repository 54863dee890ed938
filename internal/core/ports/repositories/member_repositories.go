package repositories

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// MemberReader defines read operations for organization members
type MemberReader interface {
	// FindMemberByID retrieves an active member of the organization.
	FindMemberByID(ctx context.Context, organizationID, memberID string) (*domain.OrganizationMember, error)

	// FindActiveMember retrieves an active member by ID alone.
	FindActiveMember(ctx context.Context, memberID string) (*domain.OrganizationMember, error)

	// ListActiveMembers returns active members of an organization, newest first.
	ListActiveMembers(ctx context.Context, organizationID string) ([]domain.OrganizationMember, error)

	// ListActiveMembersByEmail returns active members with the email, optionally
	// restricted to one organization when organizationID is not empty.
	ListActiveMembersByEmail(ctx context.Context, email, organizationID string) ([]domain.OrganizationMember, error)
}

// MemberWriter defines write operations for organization members
type MemberWriter interface {
	// SaveMember inserts a member. A taken (organization, email) pair yields
	// *apperrors.DuplicateEmailError.
	SaveMember(ctx context.Context, member domain.OrganizationMember) error

	// UpdateMember persists name, email, password hash, role and permissions together.
	UpdateMember(ctx context.Context, member domain.OrganizationMember) error

	// DeactivateMember soft deletes a member.
	DeactivateMember(ctx context.Context, organizationID, memberID string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
