package domain

import (
	"fmt"
	"strings"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
)

type ApplicantType string

const (
	ApplicantOrganization ApplicantType = "organization"
	ApplicantSupporter    ApplicantType = "supporter"
)

func (t ApplicantType) IsValid() bool {
	return t == ApplicantOrganization || t == ApplicantSupporter
}

type InvolvementType string

const (
	InvolvementTechnicalSupport  InvolvementType = "Technical Support"
	InvolvementFunding           InvolvementType = "Funding"
	InvolvementResourceProvision InvolvementType = "Resource Provision"
	InvolvementOperations        InvolvementType = "Operations"
	InvolvementVolunteering      InvolvementType = "Volunteering"
	InvolvementOther             InvolvementType = "Other"
)

func (t InvolvementType) IsValid() bool {
	switch t {
	case InvolvementTechnicalSupport, InvolvementFunding, InvolvementResourceProvision,
		InvolvementOperations, InvolvementVolunteering, InvolvementOther:
		return true
	}
	return false
}

// ApplicationStatus is a state of the application lifecycle.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every lifecycle state in order.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

// ParseApplicationStatus accepts only the four lifecycle states.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.TrimSpace(s))
	for _, known := range ApplicationStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", apperrors.NewValidationFailedError(fmt.Sprintf("unknown application status %q", s))
}

// UnrespondedStatuses returns the states for which IsUnresponded holds.
func UnrespondedStatuses() []ApplicationStatus {
	var out []ApplicationStatus
	for _, st := range ApplicationStatuses {
		if st.IsUnresponded() {
			out = append(out, st)
		}
	}
	return out
}

// IsTerminal reports whether no further transition is defined.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// IsUnresponded reports whether an admin still has to decide.
func (s ApplicationStatus) IsUnresponded() bool {
	return s == StatusPending || s == StatusReviewed
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:  {StatusReviewed, StatusAccepted, StatusRejected},
	StatusReviewed: {StatusAccepted, StatusRejected},
}

// CanTransitionTo reports whether s may move to next. Staying in the same
// state is always allowed and treated as a no-op by callers.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is a request by a principal to support or partner on a project.
type Application struct {
	ApplicationID   string            `json:"applicationID"`
	ProjectID       string            `json:"projectID"`
	UserID          string            `json:"userID"`
	ApplicantType   ApplicantType     `json:"applicantType"`
	InvolvementType InvolvementType   `json:"involvementType"`
	Message         string            `json:"message"`
	Status          ApplicationStatus `json:"status"`
	RejectionReason string            `json:"rejectionReason"`
	Timestamps
}

// ApplicationView is an application joined with its project and applicant.
// Project is nil when the referenced project no longer exists.
type ApplicationView struct {
	Application
	Project   *ProjectSummary `json:"project"`
	Applicant *UserSummary    `json:"applicant,omitempty"`
}

// ProjectDeleted reports whether the joined project is missing.
func (v ApplicationView) ProjectDeleted() bool {
	return v.Project == nil
}

// ApplicationCounts holds unresponded application counts by applicant type.
type ApplicationCounts struct {
	Organizations int `json:"organizations"`
	Supporters    int `json:"supporters"`
}

// DuplicateApplicationError is returned when the applicant already applied.
// Existing is the stored application, unchanged.
type DuplicateApplicationError struct {
	Existing Application
}

func (e *DuplicateApplicationError) Error() string {
	return "application already submitted for project " + e.Existing.ProjectID
}

func (e *DuplicateApplicationError) Unwrap() error {
	return apperrors.ErrDuplicate
}
