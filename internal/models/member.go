package models

// OrganizationMember is a row of the organization_members table.
// Permissions are not stored; they follow from Role.
type OrganizationMember struct {
	MemberID       string `db:"member_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	PasswordHash   string `db:"password_hash"`
	Role           string `db:"role"`
	IsActive       bool   `db:"is_active"`
	Timestamps
}
