package domain

import (
	"fmt"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
)

// OrgCategory is the sector an organization works in.
type OrgCategory string

var orgCategories = []OrgCategory{
	"Health",
	"Education",
	"Water & Sanitation",
	"Agriculture",
	"Humanitarian Aid",
	"Gender & Development",
	"Environment",
	"Economic Development",
	"Other",
}

func (c OrgCategory) IsValid() bool {
	for _, known := range orgCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Interest is how an individual wants to take part.
type Interest string

const DefaultInterest Interest = "Donating"

var interests = []Interest{
	DefaultInterest,
	"Volunteering",
	"Advocacy",
	"Research",
	"Community Monitoring",
	"Other",
}

func (i Interest) IsValid() bool {
	for _, known := range interests {
		if i == known {
			return true
		}
	}
	return false
}

// SetupStatus tracks moderation of a profile. Only the initial state is
// assigned here; reviewing profiles is not part of this service.
type SetupStatus string

const SetupDetailsPending SetupStatus = "details_pending"

// Profile holds the details behind an Organization or Individual account.
// Fields that do not apply to the account's Type stay empty.
type Profile struct {
	UserID       string      `json:"userID"`
	Kind         Role        `json:"kind"`
	Phone        string      `json:"phone"`
	SetupStatus  SetupStatus `json:"setupStatus"`
	ActionReason string      `json:"actionReason"`

	Category           OrgCategory `json:"category,omitempty"`
	Description        string      `json:"description,omitempty"`
	Website            string      `json:"website,omitempty"`
	Address            string      `json:"address,omitempty"`
	RegistrationNumber string      `json:"registrationNumber,omitempty"`
	FoundingYear       *int        `json:"foundingYear,omitempty"`
	TeamSize           string      `json:"teamSize,omitempty"`
	MissionStatement   string      `json:"missionStatement,omitempty"`
	AreasOfOperation   []string    `json:"areasOfOperation,omitempty"`
	PreviousProjects   []string    `json:"previousProjects,omitempty"`
	Logo               string      `json:"logo,omitempty"`

	Interest        Interest `json:"interest,omitempty"`
	Location        string   `json:"location,omitempty"`
	Occupation      string   `json:"occupation,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	AreasOfInterest []string `json:"areasOfInterest,omitempty"`
	HowHeard        string   `json:"howHeard,omitempty"`
	Image           string   `json:"image,omitempty"`

	Timestamps
}

// HasProfile reports whether accounts of this role carry a Profile.
func (r Role) HasProfile() bool {
	return r == RoleOrganization || r == RoleIndividual
}

// NewProfile returns the empty profile for a user of the given type.
func NewProfile(userID string, kind Role) (*Profile, error) {
	if !kind.HasProfile() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("accounts of type %q have no profile", kind))
	}
	p := &Profile{UserID: userID, Kind: kind, SetupStatus: SetupDetailsPending}
	if kind == RoleIndividual {
		p.Interest = DefaultInterest
	}
	return p, nil
}

// Validate checks the enumerated fields for the profile's Kind.
func (p *Profile) Validate() error {
	switch p.Kind {
	case RoleOrganization:
		if p.Category != "" && !p.Category.IsValid() {
			return apperrors.NewValidationFailedError(fmt.Sprintf("unknown category %q", p.Category))
		}
		if p.FoundingYear != nil && *p.FoundingYear <= 0 {
			return apperrors.NewValidationFailedError("foundingYear must be positive")
		}
	case RoleIndividual:
		if !p.Interest.IsValid() {
			return apperrors.NewValidationFailedError(fmt.Sprintf("unknown interest %q", p.Interest))
		}
	default:
		return apperrors.NewValidationFailedError(fmt.Sprintf("accounts of type %q have no profile", p.Kind))
	}
	return nil
}

// Account is a user together with its profile, if one exists.
type Account struct {
	User    User
	Profile *Profile
}
