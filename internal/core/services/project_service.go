package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/platform/metrics"
	"github.com/kamp-org/kamp_backend/internal/utils"
)

const defaultProjectStatus = "Planned"

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// ProjectServiceOption configures a projectService
type ProjectServiceOption func(*projectService)

// WithProjectAnalytics sends project events to product analytics.
func WithProjectAnalytics(client *utils.PosthogClientWrapper) ProjectServiceOption {
	return func(s *projectService) {
		s.Analytics = client
	}
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, opts ...ProjectServiceOption) portssvc.ProjectSvcFacade {
	s := &projectService{projectRepo: projectRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// requireOwnProjects rejects organization members whose role cannot manage the organization's projects.
func requireOwnProjects(principal *domain.Principal) error {
	if principal.Role != domain.RoleOrgMember {
		return nil
	}
	perms, err := domain.DeriveCapabilities(principal.MemberRole)
	if err != nil || !perms.CanViewMyProjects {
		return apperrors.NewForbiddenError("your member role cannot manage organization projects")
	}
	return nil
}

func (s *projectService) CreateProject(ctx context.Context, principal *domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := requireOwnProjects(principal); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return nil, apperrors.NewValidationFailedError("project name is required")
	case !req.ComplianceAgreed:
		return nil, apperrors.NewValidationFailedError("compliance agreement is required")
	case req.Goal.IsNegative():
		return nil, apperrors.NewValidationFailedError("goal cannot be negative")
	case req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate):
		return nil, apperrors.NewValidationFailedError("end date must not be before start date")
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultProjectStatus
	}
	imageType := domain.ImageType(req.ImageType)
	if imageType == "" && req.Image != "" {
		imageType = domain.ImageTypeLink
	}

	project := domain.Project{
		ProjectID:              uuid.NewString(),
		CreatorID:              principal.OwnerID(),
		ApprovalStatus:         domain.InitialApprovalStatus(principal),
		Name:                   name,
		NGOs:                   req.NGOs,
		Categories:             req.Categories,
		Districts:              req.Districts,
		TargetAudience:         req.TargetAudience,
		Status:                 status,
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		Goal:                   req.Goal,
		BudgetBreakdown:        req.BudgetBreakdown,
		NGORoles:               req.NGORoles,
		Description:            req.Description,
		Milestones:             req.Milestones,
		ImpactGoals:            req.ImpactGoals,
		IsPublic:               boolOrTrue(req.IsPublic),
		IsOpenForDonations:     boolOrTrue(req.IsOpenForDonations),
		IsOpenForOrganizations: boolOrTrue(req.IsOpenForOrganizations),
		ComplianceAgreed:       req.ComplianceAgreed,
		Image:                  req.Image,
		ImageType:              imageType,
	}
	project.Touch(time.Now())

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("creator_id", project.CreatorID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("creator_id", project.CreatorID),
		slog.String("approval_status", string(project.ApprovalStatus)))
	s.Track(principal, "project_created", map[string]any{
		"project_id":      project.ProjectID,
		"approval_status": string(project.ApprovalStatus),
	})
	return &project, nil
}

func (s *projectService) ListProjects(ctx context.Context, principal *domain.Principal) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx, domain.ProjectVisibility(principal))
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, err
	}

	if !domain.CanViewProject(principal, *project) {
		s.LogDebug(ctx, "Project hidden from principal", slog.String("project_id", projectID))
		return nil, apperrors.NewForbiddenError("you do not have access to this project")
	}
	return project, nil
}

func (s *projectService) ListMyProjects(ctx context.Context, principal *domain.Principal) ([]domain.Project, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := requireOwnProjects(principal); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListProjectsByCreator(ctx, principal.OwnerID())
	if err != nil {
		s.LogError(ctx, err, "Failed to list own projects", slog.String("owner_id", principal.OwnerID()))
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) ApproveProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	return s.moderate(ctx, principal, projectID, domain.ApprovalApproved)
}

func (s *projectService) RejectProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	return s.moderate(ctx, principal, projectID, domain.ApprovalRejected)
}

func (s *projectService) moderate(ctx context.Context, principal *domain.Principal, projectID string, status domain.ApprovalStatus) (*domain.Project, error) {
	if err := s.RequireAdmin(principal); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.UpdateApprovalStatus(ctx, projectID, status); err != nil {
		s.LogError(ctx, err, "Failed to update project approval status",
			slog.String("project_id", projectID),
			slog.String("status", string(status)))
		return nil, err
	}
	project.ApprovalStatus = status

	metrics.RecordProjectModeration(string(status))
	s.LogInfo(ctx, "Project moderated",
		slog.String("project_id", projectID),
		slog.String("status", string(status)))
	return project, nil
}

func boolOrTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
