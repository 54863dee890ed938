package dto

// RegisterRequest is the payload for self registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Type     string `json:"type" binding:"required,user_type"`
}

// LoginRequest is the payload for email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries an ID token obtained by the browser.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ExchangeCodeRequest carries an authorization code from the Google consent screen.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// MemberLoginRequest is the payload for organization member login.
// OrganizationID is optional; without it every organization is searched.
type MemberLoginRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	OrganizationID string `json:"organizationId"`
}
