package services

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/dto"
)

// ApplicantSvc defines the operations available to applicants
type ApplicantSvc interface {
	// Submit creates a pending application. A repeated submission returns
	// *domain.DuplicateApplicationError carrying the stored application.
	Submit(ctx context.Context, principal *domain.Principal, req dto.SubmitApplicationRequest) (*domain.Application, error)

	// MyApplications returns the principal's applications joined with their projects.
	MyApplications(ctx context.Context, principal *domain.Principal) ([]domain.ApplicationView, error)

	// CheckApplied returns the principal's application for a project, or nil.
	CheckApplied(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Application, error)
}

// ApplicationReviewSvc defines the admin side of the lifecycle
type ApplicationReviewSvc interface {
	UpdateStatus(ctx context.Context, actorIsAdmin bool, applicationID string, req dto.UpdateApplicationStatusRequest) (*domain.ApplicationView, error)
	CountsByProject(ctx context.Context, principal *domain.Principal, projectID string) (domain.ApplicationCounts, error)
	ListAll(ctx context.Context, principal *domain.Principal) ([]domain.ApplicationView, error)
	ListForProject(ctx context.Context, principal *domain.Principal, projectID string) ([]domain.ApplicationView, error)
	ListForUser(ctx context.Context, principal *domain.Principal, userID string) ([]domain.ApplicationView, error)
}

// ApplicationSvcFacade combines all application-related service interfaces
type ApplicationSvcFacade interface {
	ApplicantSvc
	ApplicationReviewSvc
}
