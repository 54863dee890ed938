package mapping

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/models"
)

// ToModelMember converts a domain OrganizationMember to a model OrganizationMember
func ToModelMember(d domain.OrganizationMember) models.OrganizationMember {
	return models.OrganizationMember{
		MemberID:       d.MemberID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		Role:           string(d.Role),
		IsActive:       d.IsActive,
		Timestamps:     ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainMember converts a model OrganizationMember to a domain
// OrganizationMember. Permissions are derived from the stored role; an
// unrecognised role grants nothing.
func ToDomainMember(m models.OrganizationMember) domain.OrganizationMember {
	role := domain.MemberRole(m.Role)
	perms, _ := domain.DeriveCapabilities(role)
	return domain.OrganizationMember{
		MemberID:       m.MemberID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           role,
		Permissions:    perms,
		IsActive:       m.IsActive,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainMemberSlice converts a slice of model members
func ToDomainMemberSlice(ms []models.OrganizationMember) []domain.OrganizationMember {
	ds := make([]domain.OrganizationMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
