package repositories

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// ApplicationReader defines read operations for application data
type ApplicationReader interface {
	// FindApplicationByID retrieves an application joined with its project and applicant.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.ApplicationView, error)

	// FindApplicationByProjectAndUser retrieves the single application of a user for a project.
	FindApplicationByProjectAndUser(ctx context.Context, projectID, userID string) (*domain.Application, error)

	// ListApplicationsByUser returns a user's applications newest first. Applications
	// whose project no longer exists carry a nil Project.
	ListApplicationsByUser(ctx context.Context, userID string) ([]domain.ApplicationView, error)

	// ListApplicationsByProject returns the applications for a project joined with applicants.
	ListApplicationsByProject(ctx context.Context, projectID string) ([]domain.ApplicationView, error)

	// ListApplications returns every application joined with project and applicant.
	ListApplications(ctx context.Context) ([]domain.ApplicationView, error)

	// CountUnrespondedByProject counts pending and reviewed applications by applicant type.
	CountUnrespondedByProject(ctx context.Context, projectID string) (domain.ApplicationCounts, error)
}

// ApplicationWriter defines write operations for application data
type ApplicationWriter interface {
	// SaveApplication inserts a new application. A second application for the
	// same (project, user) pair yields apperrors.ErrDuplicate.
	SaveApplication(ctx context.Context, application domain.Application) error

	// UpdateApplicationStatus moves an application from `from` to `to` only if it
	// is still in `from`. It returns apperrors.ErrConflict when the row changed.
	// A nil rejectionReason leaves the stored reason untouched.
	UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus, rejectionReason *string) error
}

// ApplicationRepositoryFacade combines all application-related repository interfaces
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
}
