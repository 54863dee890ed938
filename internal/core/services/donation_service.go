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

// donationService records donations and keeps project funding totals in step
type donationService struct {
	BaseService
	donationRepo portsrepo.DonationRepositoryWithTx
	projectRepo  portsrepo.ProjectReader
}

// DonationServiceOption configures a donationService
type DonationServiceOption func(*donationService)

// WithDonationAnalytics sends donation events to product analytics.
func WithDonationAnalytics(client *utils.PosthogClientWrapper) DonationServiceOption {
	return func(s *donationService) {
		s.Analytics = client
	}
}

// NewDonationService creates a new donation service
func NewDonationService(
	donationRepo portsrepo.DonationRepositoryWithTx,
	projectRepo portsrepo.ProjectReader,
	opts ...DonationServiceOption,
) portssvc.DonationSvcFacade {
	s := &donationService{donationRepo: donationRepo, projectRepo: projectRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

func (s *donationService) Donate(ctx context.Context, principal *domain.Principal, projectID string, req dto.CreateDonationRequest) (donation *domain.Donation, err error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	tx, err := s.donationRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin donation transaction")
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.donationRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back donation transaction")
			}
		}
	}()

	project, err := s.donationRepo.LockProject(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewProject(principal, *project) {
		return nil, apperrors.NewForbiddenError("you do not have access to this project")
	}
	if !project.AcceptsDonations() {
		return nil, apperrors.NewValidationFailedError("this project is not accepting donations")
	}

	d := domain.Donation{
		DonationID: uuid.NewString(),
		ProjectID:  projectID,
		DonorID:    principal.OwnerID(),
		Amount:     req.Amount,
		Message:    strings.TrimSpace(req.Message),
		Anonymous:  req.Anonymous,
	}
	d.Touch(time.Now())

	if err = s.donationRepo.InsertDonation(ctx, tx, d); err != nil {
		s.LogError(ctx, err, "Failed to insert donation", slog.String("project_id", projectID))
		return nil, err
	}
	if err = s.donationRepo.AddToProjectFunding(ctx, tx, projectID, d.Amount); err != nil {
		s.LogError(ctx, err, "Failed to update project funding", slog.String("project_id", projectID))
		return nil, err
	}
	if err = s.donationRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit donation", slog.String("project_id", projectID))
		return nil, err
	}

	amount, _ := d.Amount.Float64()
	metrics.RecordDonation(amount)
	s.LogInfo(ctx, "Donation recorded",
		slog.String("donation_id", d.DonationID),
		slog.String("project_id", projectID),
		slog.String("amount", d.Amount.String()))
	s.Track(principal, "donation_recorded", map[string]any{
		"project_id": projectID,
		"amount":     d.Amount.String(),
		"anonymous":  d.Anonymous,
	})
	return &d, nil
}

func (s *donationService) ListMyDonations(ctx context.Context, principal *domain.Principal) ([]domain.Donation, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}
	donations, err := s.donationRepo.ListDonationsByDonor(ctx, principal.OwnerID())
	if err != nil {
		s.LogError(ctx, err, "Failed to list own donations")
		return nil, err
	}
	if donations == nil {
		return []domain.Donation{}, nil
	}
	return donations, nil
}

// ListProjectDonations is limited to admins and the project owner. Owners
// do not see who made anonymous donations.
func (s *donationService) ListProjectDonations(ctx context.Context, principal *domain.Principal, projectID string) ([]domain.Donation, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load project", slog.String("project_id", projectID))
		}
		return nil, err
	}
	if !principal.IsAdmin() && project.CreatorID != principal.OwnerID() {
		return nil, apperrors.NewForbiddenError("only the project owner can view its donations")
	}

	donations, err := s.donationRepo.ListDonationsByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list project donations", slog.String("project_id", projectID))
		return nil, err
	}
	out := make([]domain.Donation, len(donations))
	for i, d := range donations {
		if principal.IsAdmin() {
			out[i] = d
		} else {
			out[i] = d.Redacted()
		}
	}
	return out, nil
}
