package domain

import (
	"errors"
	"testing"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	org, err := NewProfile("org-1", RoleOrganization)
	require.NoError(t, err)
	assert.Equal(t, SetupDetailsPending, org.SetupStatus)
	assert.Empty(t, org.Interest)

	ind, err := NewProfile("u1", RoleIndividual)
	require.NoError(t, err)
	assert.Equal(t, DefaultInterest, ind.Interest)

	_, err = NewProfile("admin-1", RoleAdmin)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestProfileValidate(t *testing.T) {
	year := -1
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{name: "org without category", profile: Profile{Kind: RoleOrganization}},
		{name: "org known category", profile: Profile{Kind: RoleOrganization, Category: "Gender & Development"}},
		{name: "org unknown category", profile: Profile{Kind: RoleOrganization, Category: "Space"}, wantErr: true},
		{name: "org negative founding year", profile: Profile{Kind: RoleOrganization, FoundingYear: &year}, wantErr: true},
		{name: "individual known interest", profile: Profile{Kind: RoleIndividual, Interest: "Community Monitoring"}},
		{name: "individual empty interest", profile: Profile{Kind: RoleIndividual}, wantErr: true},
		{name: "member has no profile", profile: Profile{Kind: RoleOrgMember}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
