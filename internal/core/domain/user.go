package domain

import "strings"

// User is an account known to the identity provider.
type User struct {
	UserID        string  `json:"userID"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PasswordHash  string  `json:"-"`
	Type          Role    `json:"type"`
	GoogleSubject *string `json:"-"`
	Timestamps
}

// Principal builds the request principal for this user.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.UserID, Role: u.Type}
}

// UserSummary is the subset of a user joined into other resources.
type UserSummary struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Type   Role   `json:"type"`
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}
