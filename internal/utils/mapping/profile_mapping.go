package mapping

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile.
// Nil slices become empty arrays so the NOT NULL columns accept them.
func ToModelProfile(d domain.Profile) models.Profile {
	var year *int32
	if d.FoundingYear != nil {
		y := int32(*d.FoundingYear)
		year = &y
	}
	return models.Profile{
		UserID:             d.UserID,
		Kind:               string(d.Kind),
		Phone:              d.Phone,
		SetupStatus:        string(d.SetupStatus),
		ActionReason:       d.ActionReason,
		Category:           string(d.Category),
		Description:        d.Description,
		Website:            d.Website,
		Address:            d.Address,
		RegistrationNumber: d.RegistrationNumber,
		FoundingYear:       year,
		TeamSize:           d.TeamSize,
		MissionStatement:   d.MissionStatement,
		AreasOfOperation:   nonNilStrings(d.AreasOfOperation),
		PreviousProjects:   nonNilStrings(d.PreviousProjects),
		Logo:               d.Logo,
		Interest:           string(d.Interest),
		Location:           d.Location,
		Occupation:         d.Occupation,
		Bio:                d.Bio,
		AreasOfInterest:    nonNilStrings(d.AreasOfInterest),
		HowHeard:           d.HowHeard,
		Image:              d.Image,
		Timestamps:         ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainProfile converts a model Profile to a domain Profile.
func ToDomainProfile(m models.Profile) domain.Profile {
	var year *int
	if m.FoundingYear != nil {
		y := int(*m.FoundingYear)
		year = &y
	}
	return domain.Profile{
		UserID:             m.UserID,
		Kind:               domain.Role(m.Kind),
		Phone:              m.Phone,
		SetupStatus:        domain.SetupStatus(m.SetupStatus),
		ActionReason:       m.ActionReason,
		Category:           domain.OrgCategory(m.Category),
		Description:        m.Description,
		Website:            m.Website,
		Address:            m.Address,
		RegistrationNumber: m.RegistrationNumber,
		FoundingYear:       year,
		TeamSize:           m.TeamSize,
		MissionStatement:   m.MissionStatement,
		AreasOfOperation:   m.AreasOfOperation,
		PreviousProjects:   m.PreviousProjects,
		Logo:               m.Logo,
		Interest:           domain.Interest(m.Interest),
		Location:           m.Location,
		Occupation:         m.Occupation,
		Bio:                m.Bio,
		AreasOfInterest:    m.AreasOfInterest,
		HowHeard:           m.HowHeard,
		Image:              m.Image,
		Timestamps:         ToDomainTimestamps(m.Timestamps),
	}
}
