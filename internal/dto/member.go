package dto

import (
	"time"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// CreateMemberRequest is the payload for adding a member to an organization.
type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,member_role"`
}

// UpdateMemberRequest changes any subset of a member's fields.
type UpdateMemberRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,member_role"`
}

// MemberResponse never carries the password hash.
type MemberResponse struct {
	MemberID       string             `json:"memberID"`
	OrganizationID string             `json:"organizationID"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           domain.MemberRole  `json:"role"`
	Permissions    domain.Permissions `json:"permissions"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func ToMemberResponse(m *domain.OrganizationMember) MemberResponse {
	return MemberResponse{
		MemberID:       m.MemberID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		Role:           m.Role,
		Permissions:    m.Permissions,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToMemberListResponse(members []domain.OrganizationMember) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return out
}
