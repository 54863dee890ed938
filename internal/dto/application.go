package dto

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// SubmitApplicationRequest is the payload for applying to a project.
type SubmitApplicationRequest struct {
	ProjectID       string `json:"projectId" binding:"required"`
	InvolvementType string `json:"involvementType" binding:"omitempty,involvement_type"`
	Message         string `json:"message" binding:"required"`
	ApplicantType   string `json:"applicantType" binding:"omitempty,applicant_type"`
}

// UpdateApplicationStatusRequest is the payload for an admin status change.
// The status enum is checked by the service so unknown values map to a validation error.
type UpdateApplicationStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	RejectionReason *string `json:"rejectionReason"`
}

// ApplicationResponse is an application with optional joined data.
// ProjectDeleted is true when the referenced project no longer exists.
type ApplicationResponse struct {
	domain.Application
	Project        *domain.ProjectSummary `json:"project"`
	ProjectDeleted bool                   `json:"projectDeleted"`
	Applicant      *domain.UserSummary    `json:"applicant,omitempty"`
}

func ToApplicationResponse(v domain.ApplicationView) ApplicationResponse {
	return ApplicationResponse{
		Application:    v.Application,
		Project:        v.Project,
		ProjectDeleted: v.ProjectDeleted(),
		Applicant:      v.Applicant,
	}
}

func ToApplicationListResponse(views []domain.ApplicationView) []ApplicationResponse {
	out := make([]ApplicationResponse, len(views))
	for i, v := range views {
		out[i] = ToApplicationResponse(v)
	}
	return out
}

// SubmitApplicationResponse wraps a created or already existing application.
type SubmitApplicationResponse struct {
	Application domain.Application `json:"application"`
}

// DuplicateApplicationResponse is returned with 409 when the caller already applied.
type DuplicateApplicationResponse struct {
	Error       string             `json:"error"`
	Application domain.Application `json:"application"`
}

// CheckAppliedResponse reports whether the caller applied to a project.
type CheckAppliedResponse struct {
	Applied     bool                `json:"applied"`
	Application *domain.Application `json:"application"`
}
