package domain

import (
	"errors"
	"testing"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplicationStatus(t *testing.T) {
	st, err := ParseApplicationStatus("reviewed")
	require.NoError(t, err)
	assert.Equal(t, StatusReviewed, st)

	_, err = ParseApplicationStatus("archived")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = ParseApplicationStatus("")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestApplicationStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusReviewed, true},
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusReviewed, StatusAccepted, true},
		{StatusReviewed, StatusRejected, true},
		{StatusReviewed, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusPending, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusReviewed, false},
		{StatusRejected, StatusRejected, true},
		{StatusPending, StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestApplicationStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.IsUnresponded())
	assert.True(t, StatusReviewed.IsUnresponded())
	assert.False(t, StatusAccepted.IsUnresponded())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusReviewed.IsTerminal())
	assert.Equal(t, []ApplicationStatus{StatusPending, StatusReviewed}, UnrespondedStatuses())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ApplicantSupporter.IsValid())
	assert.False(t, ApplicantType("sponsor").IsValid())
	assert.True(t, InvolvementResourceProvision.IsValid())
	assert.False(t, InvolvementType("Marketing").IsValid())
}

func TestDuplicateApplicationError(t *testing.T) {
	existing := Application{ApplicationID: "a1", ProjectID: "p1", Status: StatusReviewed}
	var err error = &DuplicateApplicationError{Existing: existing}

	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	var dup *DuplicateApplicationError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, existing, dup.Existing)
}

func TestApplicationViewProjectDeleted(t *testing.T) {
	assert.True(t, ApplicationView{}.ProjectDeleted())
	assert.False(t, ApplicationView{Project: &ProjectSummary{ProjectID: "p1"}}.ProjectDeleted())
}
