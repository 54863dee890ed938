package domain

// Role identifies the kind of actor behind a request.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleOrganization Role = "Organization"
	RoleIndividual   Role = "Individual"
	RoleOrgMember    Role = "OrgMember"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOrganization, RoleIndividual, RoleOrgMember:
		return true
	}
	return false
}

// Principal is the authenticated actor of a single request.
// A nil *Principal is an anonymous caller.
type Principal struct {
	ID   string
	Role Role
	// OrganizationID and MemberRole are only set for RoleOrgMember principals.
	OrganizationID string
	MemberRole     MemberRole
}

// IsAdmin reports whether the principal is a platform administrator.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsAnonymous reports whether there is no authenticated actor.
func (p *Principal) IsAnonymous() bool {
	return p == nil || p.ID == ""
}

// OwnerID is the identity that owns resources created by this principal.
// Organization members act on behalf of their organization.
func (p *Principal) OwnerID() string {
	if p == nil {
		return ""
	}
	if p.Role == RoleOrgMember {
		return p.OrganizationID
	}
	return p.ID
}
