package services

import (
	"context"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/dto"
)

// DonationSvcFacade records and lists donations
type DonationSvcFacade interface {
	Donate(ctx context.Context, principal *domain.Principal, projectID string, req dto.CreateDonationRequest) (*domain.Donation, error)
	ListMyDonations(ctx context.Context, principal *domain.Principal) ([]domain.Donation, error)
	ListProjectDonations(ctx context.Context, principal *domain.Principal, projectID string) ([]domain.Donation, error)
}
