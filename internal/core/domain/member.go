package domain

import (
	"fmt"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
)

// MemberRole is a role inside an organization.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
	MemberRoleViewer MemberRole = "viewer"
)

func (r MemberRole) IsValid() bool {
	_, ok := capabilityTable[r]
	return ok
}

// Permissions is the capability set derived from a MemberRole.
type Permissions struct {
	CanViewDashboard  bool `json:"canViewDashboard"`
	CanViewProjects   bool `json:"canViewProjects"`
	CanViewMyProjects bool `json:"canViewMyProjects"`
	CanManageMembers  bool `json:"canManageMembers"`
}

var capabilityTable = map[MemberRole]Permissions{
	MemberRoleAdmin:  {CanViewDashboard: true, CanViewProjects: true, CanViewMyProjects: true, CanManageMembers: true},
	MemberRoleMember: {CanViewDashboard: true, CanViewProjects: true, CanViewMyProjects: true},
	MemberRoleViewer: {CanViewDashboard: true, CanViewProjects: true},
}

// DeriveCapabilities returns the fixed capability set for role.
func DeriveCapabilities(role MemberRole) (Permissions, error) {
	perms, ok := capabilityTable[role]
	if !ok {
		return Permissions{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown member role %q", role))
	}
	return perms, nil
}

// OrganizationMember is a login belonging to an organization account.
type OrganizationMember struct {
	MemberID       string      `json:"memberID"`
	OrganizationID string      `json:"organizationID"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	Role           MemberRole  `json:"role"`
	Permissions    Permissions `json:"permissions"`
	IsActive       bool        `json:"isActive"`
	Timestamps
}

// NewOrganizationMember builds an active member with permissions matching role.
// An empty role defaults to MemberRoleMember.
func NewOrganizationMember(id, organizationID, name, email, passwordHash string, role MemberRole) (*OrganizationMember, error) {
	m := &OrganizationMember{
		MemberID:       id,
		OrganizationID: organizationID,
		Name:           name,
		Email:          NormalizeEmail(email),
		PasswordHash:   passwordHash,
		IsActive:       true,
	}
	if role == "" {
		role = MemberRoleMember
	}
	if err := m.AssignRole(role); err != nil {
		return nil, err
	}
	return m, nil
}

// AssignRole sets the role and recomputes permissions from it.
func (m *OrganizationMember) AssignRole(role MemberRole) error {
	perms, err := DeriveCapabilities(role)
	if err != nil {
		return err
	}
	m.Role = role
	m.Permissions = perms
	return nil
}

// Principal builds the request principal for a logged in member.
func (m *OrganizationMember) Principal() *Principal {
	return &Principal{
		ID:             m.MemberID,
		Role:           RoleOrgMember,
		OrganizationID: m.OrganizationID,
		MemberRole:     m.Role,
	}
}
