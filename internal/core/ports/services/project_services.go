package services

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/dto"
)

// ProjectReaderSvc defines visibility-filtered reads
type ProjectReaderSvc interface {
	// ListProjects returns the projects principal may see, newest first. principal may be nil.
	ListProjects(ctx context.Context, principal *domain.Principal) ([]domain.Project, error)

	// GetProject returns a project, apperrors.ErrNotFound when missing and
	// apperrors.ErrForbidden when present but not visible.
	GetProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error)

	// ListMyProjects returns projects owned by principal in any approval state.
	ListMyProjects(ctx context.Context, principal *domain.Principal) ([]domain.Project, error)
}

// ProjectWriterSvc defines project creation and moderation
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, principal *domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error)
	ApproveProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error)
	RejectProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error)
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
