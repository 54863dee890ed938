package dto

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDonationRequest is the payload for donating to a project.
type CreateDonationRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Message   string          `json:"message" binding:"max=500"`
	Anonymous bool            `json:"anonymous"`
}

type DonationResponse struct {
	domain.Donation
}

func ToDonationListResponse(donations []domain.Donation) []DonationResponse {
	out := make([]DonationResponse, len(donations))
	for i, d := range donations {
		out[i] = DonationResponse{Donation: d}
	}
	return out
}
