package repositories

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project regardless of its approval state.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects returns projects matching the visibility filter, newest first,
	// with the creator summary joined.
	ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)

	// ListProjectsByCreator returns every project owned by creatorID, newest first.
	ListProjectsByCreator(ctx context.Context, creatorID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateApprovalStatus sets the approval status of a project.
	UpdateApprovalStatus(ctx context.Context, projectID string, status domain.ApprovalStatus) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
