package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
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

// applicationService implements the application lifecycle
type applicationService struct {
	BaseService
	applicationRepo portsrepo.ApplicationRepositoryFacade
	projectRepo     portsrepo.ProjectReader
	now             func() time.Time
}

// ApplicationServiceOption configures an applicationService
type ApplicationServiceOption func(*applicationService)

// WithApplicationAnalytics sends lifecycle events to product analytics.
func WithApplicationAnalytics(client *utils.PosthogClientWrapper) ApplicationServiceOption {
	return func(s *applicationService) {
		s.Analytics = client
	}
}

// WithApplicationClock overrides the time source.
func WithApplicationClock(now func() time.Time) ApplicationServiceOption {
	return func(s *applicationService) {
		s.now = now
	}
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo portsrepo.ApplicationRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	opts ...ApplicationServiceOption,
) portssvc.ApplicationSvcFacade {
	s := &applicationService{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ApplicationSvcFacade = (*applicationService)(nil)

func (s *applicationService) Submit(ctx context.Context, principal *domain.Principal, req dto.SubmitApplicationRequest) (*domain.Application, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := requireOwnProjects(principal); err != nil {
		return nil, err
	}

	projectID := strings.TrimSpace(req.ProjectID)
	message := strings.TrimSpace(req.Message)
	if projectID == "" {
		return nil, apperrors.NewValidationFailedError("projectId is required")
	}
	if message == "" {
		return nil, apperrors.NewValidationFailedError("message is required")
	}

	applicantType := domain.ApplicantType(req.ApplicantType)
	if applicantType == "" {
		applicantType = domain.ApplicantSupporter
	}
	if !applicantType.IsValid() {
		return nil, apperrors.NewValidationFailedError("applicantType must be organization or supporter")
	}
	involvement := domain.InvolvementType(req.InvolvementType)
	if involvement == "" {
		involvement = domain.InvolvementOther
	}
	if !involvement.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown involvementType")
	}

	// An existing application wins over later changes to the project itself.
	applicantID := principal.OwnerID()
	existing, err := s.applicationRepo.FindApplicationByProjectAndUser(ctx, projectID, applicantID)
	switch {
	case err == nil:
		return nil, s.duplicate(ctx, applicantType, *existing)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check for existing application", slog.String("project_id", projectID))
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load project for application", slog.String("project_id", projectID))
		}
		return nil, err
	}
	if !domain.CanViewProject(principal, *project) {
		return nil, apperrors.NewForbiddenError("you do not have access to this project")
	}
	if project.CreatorID == applicantID {
		return nil, apperrors.NewValidationFailedError("you cannot apply to your own project")
	}

	application := domain.Application{
		ApplicationID:   uuid.NewString(),
		ProjectID:       projectID,
		UserID:          applicantID,
		ApplicantType:   applicantType,
		InvolvementType: involvement,
		Message:         message,
		Status:          domain.StatusPending,
	}
	application.Touch(s.now())

	// The unique index on (project_id, user_id) still decides races between the lookup and the insert.
	if err := s.applicationRepo.SaveApplication(ctx, application); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save application", slog.String("project_id", projectID))
			return nil, err
		}
		winner, findErr := s.applicationRepo.FindApplicationByProjectAndUser(ctx, projectID, applicantID)
		if findErr != nil {
			s.LogError(ctx, findErr, "Failed to load existing application after conflict", slog.String("project_id", projectID))
			return nil, findErr
		}
		return nil, s.duplicate(ctx, applicantType, *winner)
	}

	metrics.RecordApplicationSubmitted(string(applicantType), "created")
	s.LogInfo(ctx, "Application submitted",
		slog.String("application_id", application.ApplicationID),
		slog.String("project_id", projectID))
	s.Track(principal, "application_submitted", map[string]any{
		"project_id":       projectID,
		"applicant_type":   string(applicantType),
		"involvement_type": string(involvement),
	})
	return &application, nil
}

func (s *applicationService) duplicate(ctx context.Context, applicantType domain.ApplicantType, existing domain.Application) error {
	metrics.RecordApplicationSubmitted(string(applicantType), "duplicate")
	s.LogInfo(ctx, "Duplicate application submission",
		slog.String("project_id", existing.ProjectID),
		slog.String("application_id", existing.ApplicationID))
	return &domain.DuplicateApplicationError{Existing: existing}
}

func (s *applicationService) UpdateStatus(ctx context.Context, actorIsAdmin bool, applicationID string, req dto.UpdateApplicationStatusRequest) (*domain.ApplicationView, error) {
	if !actorIsAdmin {
		return nil, apperrors.NewForbiddenError("only administrators can update application status")
	}

	next, err := domain.ParseApplicationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load application", slog.String("application_id", applicationID))
		}
		return nil, err
	}

	from := current.Status
	if from == next {
		s.LogDebug(ctx, "Application already in requested status", slog.String("application_id", applicationID))
		return current, nil
	}
	if !from.CanTransitionTo(next) {
		return nil, apperrors.NewAppError(http.StatusConflict,
			"cannot change status from "+string(from)+" to "+string(next),
			apperrors.ErrInvalidTransition)
	}

	var reason *string
	if next == domain.StatusRejected {
		r := ""
		if req.RejectionReason != nil {
			r = strings.TrimSpace(*req.RejectionReason)
		}
		reason = &r
	}

	if err := s.applicationRepo.UpdateApplicationStatus(ctx, applicationID, from, next, reason); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Application status changed concurrently", slog.String("application_id", applicationID))
			return nil, apperrors.NewAppError(http.StatusConflict, "application was updated by someone else, reload and retry", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "Failed to update application status", slog.String("application_id", applicationID))
		return nil, err
	}

	updated, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload application", slog.String("application_id", applicationID))
		return nil, err
	}

	metrics.RecordApplicationTransition(string(from), string(next))
	s.LogInfo(ctx, "Application status updated",
		slog.String("application_id", applicationID),
		slog.String("from", string(from)),
		slog.String("to", string(next)))
	// Attributed to the applicant, whose application changed.
	s.Analytics.Enqueue(updated.UserID, "application_status_changed", map[string]any{
		"application_id": applicationID,
		"from":           string(from),
		"to":             string(next),
	})
	return updated, nil
}

func (s *applicationService) CountsByProject(ctx context.Context, principal *domain.Principal, projectID string) (domain.ApplicationCounts, error) {
	if err := s.RequireAdmin(principal); err != nil {
		return domain.ApplicationCounts{}, err
	}
	counts, err := s.applicationRepo.CountUnrespondedByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count applications", slog.String("project_id", projectID))
		return domain.ApplicationCounts{}, err
	}
	return counts, nil
}

func (s *applicationService) MyApplications(ctx context.Context, principal *domain.Principal) ([]domain.ApplicationView, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	views, err := s.applicationRepo.ListApplicationsByUser(ctx, principal.OwnerID())
	if err != nil {
		s.LogError(ctx, err, "Failed to list own applications")
		return nil, err
	}
	return nonNilViews(views), nil
}

func (s *applicationService) CheckApplied(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Application, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	if strings.TrimSpace(projectID) == "" {
		return nil, apperrors.NewValidationFailedError("projectId is required")
	}

	application, err := s.applicationRepo.FindApplicationByProjectAndUser(ctx, projectID, principal.OwnerID())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to check application", slog.String("project_id", projectID))
		return nil, err
	}
	return application, nil
}

func (s *applicationService) ListAll(ctx context.Context, principal *domain.Principal) ([]domain.ApplicationView, error) {
	if err := s.RequireAdmin(principal); err != nil {
		return nil, err
	}
	views, err := s.applicationRepo.ListApplications(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list applications")
		return nil, err
	}
	return nonNilViews(views), nil
}

func (s *applicationService) ListForProject(ctx context.Context, principal *domain.Principal, projectID string) ([]domain.ApplicationView, error) {
	if err := s.RequireAdmin(principal); err != nil {
		return nil, err
	}
	views, err := s.applicationRepo.ListApplicationsByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list project applications", slog.String("project_id", projectID))
		return nil, err
	}
	return nonNilViews(views), nil
}

func (s *applicationService) ListForUser(ctx context.Context, principal *domain.Principal, userID string) ([]domain.ApplicationView, error) {
	if err := s.RequireAdmin(principal); err != nil {
		return nil, err
	}
	views, err := s.applicationRepo.ListApplicationsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user applications", slog.String("user_id", userID))
		return nil, err
	}
	return nonNilViews(views), nil
}

func nonNilViews(views []domain.ApplicationView) []domain.ApplicationView {
	if views == nil {
		return []domain.ApplicationView{}
	}
	return views
}
