package dto

import (
	"time"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
// Profile fields sit next to name and email in the same JSON object.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
	ProfileUpdate
}

// ProfileUpdate lists the profile fields a user may set. Fields for the
// other account type are ignored.
type ProfileUpdate struct {
	Phone *string `json:"phone,omitempty"`

	Category           *string   `json:"category,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Website            *string   `json:"website,omitempty"`
	Address            *string   `json:"address,omitempty"`
	RegistrationNumber *string   `json:"registrationNumber,omitempty"`
	FoundingYear       *int      `json:"foundingYear,omitempty"`
	TeamSize           *string   `json:"teamSize,omitempty"`
	MissionStatement   *string   `json:"missionStatement,omitempty"`
	AreasOfOperation   *[]string `json:"areasOfOperation,omitempty"`
	PreviousProjects   *[]string `json:"previousProjects,omitempty"`
	Logo               *string   `json:"logo,omitempty"`

	Interest        *string   `json:"interest,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Occupation      *string   `json:"occupation,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	AreasOfInterest *[]string `json:"areasOfInterest,omitempty"`
	HowHeard        *string   `json:"howHeard,omitempty"`
	Image           *string   `json:"image,omitempty"`
}

type UserResponse struct {
	UserID    string      `json:"userID"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Type      domain.Role `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Type:      user.Type,
		CreatedAt: user.CreatedAt,
	}
}

// AccountResponse is a user with its profile. Profile is null for accounts
// that have not filled one in.
type AccountResponse struct {
	UserResponse
	Profile *domain.Profile `json:"profile"`
}

func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		UserResponse: ToUserResponse(&account.User),
		Profile:      account.Profile,
	}
}
